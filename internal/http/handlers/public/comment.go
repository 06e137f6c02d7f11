package public

import (
	"net/http"

	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/http/view"
	"github.com/blogicum-next/internal/models"

	"github.com/gin-gonic/gin"
)

type commentFormData struct {
	Comment  *models.Comment
	Form     *view.Form
	IsDelete bool
}

// commentIDs 解析 /posts/:id/..._comment/:comment_id
func commentIDs(c *gin.Context) (uint, uint, bool) {
	postID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return 0, 0, false
	}
	commentID, ok := handlershared.ParseUintParam(c, "comment_id")
	if !ok {
		return 0, 0, false
	}
	return postID, commentID, true
}

// EditCommentForm GET /posts/:id/edit_comment/:comment_id
func (h *Handler) EditCommentForm(c *gin.Context) {
	postID, commentID, ok := commentIDs(c)
	if !ok {
		h.NotFound(c)
		return
	}
	comment, err := h.CommentService.GetOwned(postID, commentID, currentUserID(c))
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	h.renderCommentForm(c, comment, view.NewForm().Set("text", comment.Text), false)
}

// EditComment POST /posts/:id/edit_comment/:comment_id
func (h *Handler) EditComment(c *gin.Context) {
	postID, commentID, ok := commentIDs(c)
	if !ok {
		h.NotFound(c)
		return
	}
	text := c.PostForm("text")
	if _, err := h.CommentService.Update(postID, commentID, currentUserID(c), text); err != nil {
		form := view.NewForm().Set("text", text)
		if h.applyValidation(c, form, err) {
			comment, getErr := h.CommentService.GetOwned(postID, commentID, currentUserID(c))
			if getErr != nil {
				h.respondPageError(c, getErr)
				return
			}
			h.renderCommentForm(c, comment, form, false)
			return
		}
		h.respondPageError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(postID))
}

// DeleteCommentForm GET /posts/:id/delete_comment/:comment_id
func (h *Handler) DeleteCommentForm(c *gin.Context) {
	postID, commentID, ok := commentIDs(c)
	if !ok {
		h.NotFound(c)
		return
	}
	comment, err := h.CommentService.GetOwned(postID, commentID, currentUserID(c))
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	h.renderCommentForm(c, comment, view.NewForm(), true)
}

// DeleteComment POST /posts/:id/delete_comment/:comment_id
func (h *Handler) DeleteComment(c *gin.Context) {
	postID, commentID, ok := commentIDs(c)
	if !ok {
		h.NotFound(c)
		return
	}
	if err := h.CommentService.Delete(postID, commentID, currentUserID(c)); err != nil {
		h.respondPageError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(postID))
}

func (h *Handler) renderCommentForm(c *gin.Context, comment *models.Comment, form *view.Form, isDelete bool) {
	title := h.t(c, "ui.title.comment_edit")
	if isDelete {
		title = h.t(c, "ui.title.comment_delete")
	}
	h.render(c, http.StatusOK, "comment_form", title, commentFormData{
		Comment:  comment,
		Form:     form,
		IsDelete: isDelete,
	})
}
