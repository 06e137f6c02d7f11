package public

import (
	"net/http"

	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/http/view"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

type profileEditRequest struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Username  string `form:"username"`
	Email     string `form:"email"`
}

type profileEditData struct {
	Form   *view.Form
	Fields []view.Field
}

var profileFields = []view.Field{
	{Name: "first_name", LabelKey: "ui.field.first_name", Type: "text"},
	{Name: "last_name", LabelKey: "ui.field.last_name", Type: "text"},
	{Name: "username", LabelKey: "ui.field.username", Type: "text"},
	{Name: "email", LabelKey: "ui.field.email", Type: "email"},
}

// EditProfileForm GET /profile/edit/
func (h *Handler) EditProfileForm(c *gin.Context) {
	user := handlershared.CurrentUser(c)
	if user == nil {
		redirectToLogin(c)
		return
	}
	form := view.NewForm().
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("username", user.Username).
		Set("email", user.Email)
	h.renderProfileForm(c, form)
}

// EditProfile POST /profile/edit/
func (h *Handler) EditProfile(c *gin.Context) {
	var req profileEditRequest
	if err := c.ShouldBind(&req); err != nil {
		handlershared.RequestLog(c).Warnw("profile_form_bind_failed", "error", err)
	}
	user, err := h.UserAuthService.UpdateProfile(currentUserID(c), service.ProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	})
	if err != nil {
		form := view.NewForm().
			Set("first_name", req.FirstName).
			Set("last_name", req.LastName).
			Set("username", req.Username).
			Set("email", req.Email)
		if h.applyValidation(c, form, err) {
			h.renderProfileForm(c, form)
			return
		}
		h.respondPageError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(user.Username))
}

func (h *Handler) renderProfileForm(c *gin.Context, form *view.Form) {
	h.render(c, http.StatusOK, "profile_edit", h.t(c, "ui.title.profile_edit"), profileEditData{
		Form:   form,
		Fields: profileFields,
	})
}
