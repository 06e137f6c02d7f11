package public

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/http/view"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

// postFormRequest 文章表单字段，下拉框与日期保留原始字符串以便回显
type postFormRequest struct {
	Title       string `form:"title"`
	Text        string `form:"text"`
	PubDate     string `form:"pub_date"`
	Category    string `form:"category"`
	Location    string `form:"location"`
	IsPublished string `form:"is_published"`
	ImageClear  string `form:"image_clear"`
}

type postFormData struct {
	Form       *view.Form
	Categories []models.Category
	Locations  []models.Location
	Post       *models.Post
	IsDelete   bool
	Action     string
}

type detailPageData struct {
	Post     *models.Post
	Comments []models.Comment
	Form     *view.Form
}

func postURL(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

// PostDetail GET /posts/:id/
func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	h.renderDetail(c, http.StatusOK, id, view.NewForm())
}

func (h *Handler) renderDetail(c *gin.Context, status int, id uint, form *view.Form) {
	post, err := h.PostService.Detail(id, currentUserID(c))
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	comments, err := h.CommentService.ListForPost(post.ID)
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	h.render(c, status, "detail", post.Title, detailPageData{Post: post, Comments: comments, Form: form})
}

// AddComment POST /posts/:id/comment/
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	text := c.PostForm("text")
	if _, err := h.CommentService.Create(id, currentUserID(c), text); err != nil {
		form := view.NewForm().Set("text", text)
		if h.applyValidation(c, form, err) {
			h.renderDetail(c, http.StatusOK, id, form)
			return
		}
		h.respondPageError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(id))
}

// CreatePostForm GET /posts/create/
func (h *Handler) CreatePostForm(c *gin.Context) {
	form := view.NewForm().
		Set("pub_date", formatPubDate(h.nowUTC(), h.loc)).
		Set("is_published", "on")
	h.renderPostForm(c, nil, form, "/posts/create/")
}

// CreatePost POST /posts/create/
func (h *Handler) CreatePost(c *gin.Context) {
	form, input, verr := h.bindPostForm(c)
	if verr.HasErrors() {
		h.rejectPostForm(c, nil, form, input, verr, "/posts/create/")
		return
	}
	if _, err := h.PostService.Create(currentUserID(c), input); err != nil {
		if h.applyValidation(c, form, err) {
			h.renderPostForm(c, nil, form, "/posts/create/")
			return
		}
		h.respondPageError(c, err)
		return
	}
	h.redirectToOwnProfile(c)
}

// EditPostForm GET /posts/:id/edit/
func (h *Handler) EditPostForm(c *gin.Context) {
	post, ok := h.ownedPostOrRedirect(c)
	if !ok {
		return
	}
	form := view.NewForm().
		Set("title", post.Title).
		Set("text", post.Text).
		Set("pub_date", formatPubDate(post.PubDate, h.loc)).
		Set("category", uintValue(derefID(post.CategoryID))).
		Set("location", uintValue(derefID(post.LocationID))).
		Set("is_published", checkbox(post.IsPublished))
	h.renderPostForm(c, post, form, editPostURL(post.ID))
}

// EditPost POST /posts/:id/edit/
func (h *Handler) EditPost(c *gin.Context) {
	post, ok := h.ownedPostOrRedirect(c)
	if !ok {
		return
	}
	form, input, verr := h.bindPostForm(c)
	if verr.HasErrors() {
		h.rejectPostForm(c, post, form, input, verr, editPostURL(post.ID))
		return
	}
	if _, err := h.PostService.Update(post.ID, currentUserID(c), input); err != nil {
		if h.applyValidation(c, form, err) {
			h.renderPostForm(c, post, form, editPostURL(post.ID))
			return
		}
		h.respondPageError(c, err)
		return
	}
	h.redirectToOwnProfile(c)
}

// DeletePostForm GET /posts/:id/delete/
func (h *Handler) DeletePostForm(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	post, err := h.PostService.GetOwned(id, currentUserID(c))
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	h.render(c, http.StatusOK, "post_form", h.t(c, "ui.title.post_delete"), postFormData{
		Form:     view.NewForm(),
		Post:     post,
		IsDelete: true,
	})
}

// DeletePost POST /posts/:id/delete/
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	if err := h.PostService.Delete(id, currentUserID(c)); err != nil {
		h.respondPageError(c, err)
		return
	}
	h.redirectToOwnProfile(c)
}

// ownedPostOrRedirect 编辑入口：非作者跳回详情页
func (h *Handler) ownedPostOrRedirect(c *gin.Context) (*models.Post, bool) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		h.NotFound(c)
		return nil, false
	}
	post, err := h.PostService.GetOwned(id, currentUserID(c))
	if errors.Is(err, service.ErrForbidden) {
		c.Redirect(http.StatusFound, postURL(id))
		return nil, false
	}
	if err != nil {
		h.respondPageError(c, err)
		return nil, false
	}
	return post, true
}

// bindPostForm 读取表单并完成格式层面的校验
func (h *Handler) bindPostForm(c *gin.Context) (*view.Form, service.PostInput, *service.ValidationError) {
	var req postFormRequest
	verr := &service.ValidationError{}
	if err := c.ShouldBind(&req); err != nil {
		handlershared.RequestLog(c).Warnw("post_form_bind_failed", "error", err)
	}
	form := view.NewForm().
		Set("title", req.Title).
		Set("text", req.Text).
		Set("pub_date", req.PubDate).
		Set("category", req.Category).
		Set("location", req.Location).
		Set("is_published", req.IsPublished).
		Set("image_clear", req.ImageClear)

	input := service.PostInput{
		Title:       req.Title,
		Text:        req.Text,
		IsPublished: isChecked(req.IsPublished),
		ClearImage:  isChecked(req.ImageClear),
	}
	if pubDate, ok := parsePubDate(req.PubDate, h.loc); ok {
		input.PubDate = pubDate
	} else {
		verr.Add("pub_date", "form.invalid_date")
	}
	if id, ok := parseChoice(req.Category); ok {
		input.CategoryID = id
	} else {
		verr.Add("category", "form.invalid_choice")
	}
	if id, ok := parseChoice(req.Location); ok {
		input.LocationID = id
	} else {
		verr.Add("location", "form.invalid_choice")
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}
	return form, input, verr
}

// rejectPostForm 格式错误时补齐业务校验后一并回显
func (h *Handler) rejectPostForm(c *gin.Context, post *models.Post, form *view.Form, input service.PostInput, verr *service.ValidationError, action string) {
	if err := h.PostService.Validate(input, verr); err != nil {
		h.respondPageError(c, err)
		return
	}
	h.applyValidation(c, form, verr)
	h.renderPostForm(c, post, form, action)
}

func (h *Handler) renderPostForm(c *gin.Context, post *models.Post, form *view.Form, action string) {
	categories, locations, err := h.PostService.FormOptions()
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	title := h.t(c, "ui.title.post_create")
	if post != nil {
		title = h.t(c, "ui.title.post_edit")
	}
	h.render(c, http.StatusOK, "post_form", title, postFormData{
		Form:       form,
		Categories: categories,
		Locations:  locations,
		Post:       post,
		Action:     action,
	})
}

func (h *Handler) redirectToOwnProfile(c *gin.Context) {
	user := handlershared.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, profileURL(user.Username))
}

func editPostURL(id uint) string {
	return postURL(id) + "edit/"
}

func derefID(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}
