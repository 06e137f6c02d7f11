package public

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blogicum-next/internal/constants"
	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/http/view"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username        string `form:"username"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"password_confirm"`
	handlershared.CaptchaPayload
}

type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
	handlershared.CaptchaPayload
}

type passwordChangeRequest struct {
	OldPassword     string `form:"old_password"`
	NewPassword     string `form:"new_password"`
	PasswordConfirm string `form:"password_confirm"`
}

type authFormData struct {
	Form      *view.Form
	Action    string
	Next      string
	Fields    []view.Field
	Captcha   *service.CaptchaImageChallenge
	SubmitKey string
	FooterKey string
	FooterURL string
}

var (
	registerFields = []view.Field{
		{Name: "username", LabelKey: "ui.field.username", Type: "text"},
		{Name: "password", LabelKey: "ui.field.password", Type: "password"},
		{Name: "password_confirm", LabelKey: "ui.field.password_confirm", Type: "password"},
	}
	loginFields = []view.Field{
		{Name: "username", LabelKey: "ui.field.username", Type: "text"},
		{Name: "password", LabelKey: "ui.field.password", Type: "password"},
	}
	passwordChangeFields = []view.Field{
		{Name: "old_password", LabelKey: "ui.field.old_password", Type: "password"},
		{Name: "new_password", LabelKey: "ui.field.new_password", Type: "password"},
		{Name: "password_confirm", LabelKey: "ui.field.password_confirm", Type: "password"},
	}
)

// safeNext 只接受站内相对路径，防止开放重定向
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}

// RegistrationForm GET /auth/registration/
func (h *Handler) RegistrationForm(c *gin.Context) {
	h.renderRegistration(c, view.NewForm())
}

// Register POST /auth/registration/
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		handlershared.RequestLog(c).Warnw("register_form_bind_failed", "error", err)
	}
	form := view.NewForm().Set("username", req.Username)

	if ok := h.verifyCaptcha(c, form, constants.CaptchaSceneRegister, req.CaptchaPayload); !ok {
		if !c.IsAborted() {
			h.renderRegistration(c, form)
		}
		return
	}
	user, err := h.UserAuthService.Register(service.RegisterInput{
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		if h.applyValidation(c, form, err) {
			h.renderRegistration(c, form)
			return
		}
		h.respondPageError(c, err)
		return
	}
	handlershared.RequestLog(c).Infow("user_registered", "user_id", user.ID, "username", user.Username)
	c.Redirect(http.StatusFound, "/")
}

// LoginForm GET /auth/login/
func (h *Handler) LoginForm(c *gin.Context) {
	h.renderLogin(c, view.NewForm(), safeNext(c.Query(constants.NextQueryKey)))
}

// Login POST /auth/login/
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		handlershared.RequestLog(c).Warnw("login_form_bind_failed", "error", err)
	}
	next := safeNext(req.Next)
	if next == "" {
		next = safeNext(c.Query(constants.NextQueryKey))
	}
	form := view.NewForm().Set("username", req.Username)

	if ok := h.verifyCaptcha(c, form, constants.CaptchaSceneLogin, req.CaptchaPayload); !ok {
		if !c.IsAborted() {
			h.renderLogin(c, form, next)
		}
		return
	}
	user, token, expiresAt, err := h.UserAuthService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.setNonFieldError(c, form, "form.invalid_credentials")
		case errors.Is(err, service.ErrUserDisabled):
			h.setNonFieldError(c, form, "form.user_disabled")
		default:
			h.respondPageError(c, err)
			return
		}
		h.renderLogin(c, form, next)
		return
	}
	h.setSessionCookie(c, token, expiresAt)
	handlershared.RequestLog(c).Infow("user_logged_in", "user_id", user.ID)
	if next == "" {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

// Logout GET|POST /auth/logout/
func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// PasswordChangeForm GET /auth/password_change/
func (h *Handler) PasswordChangeForm(c *gin.Context) {
	h.renderPasswordChange(c, view.NewForm())
}

// PasswordChange POST /auth/password_change/
func (h *Handler) PasswordChange(c *gin.Context) {
	var req passwordChangeRequest
	if err := c.ShouldBind(&req); err != nil {
		handlershared.RequestLog(c).Warnw("password_change_form_bind_failed", "error", err)
	}
	user, err := h.UserAuthService.ChangePassword(currentUserID(c), service.PasswordChangeInput{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		form := view.NewForm()
		if h.applyValidation(c, form, err) {
			h.renderPasswordChange(c, form)
			return
		}
		h.respondPageError(c, err)
		return
	}
	// 旧会话已失效，为当前浏览器重新签发
	token, expiresAt, err := h.UserAuthService.GenerateUserJWT(user)
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	h.setSessionCookie(c, token, expiresAt)
	c.Redirect(http.StatusFound, profileURL(user.Username))
}

// verifyCaptcha 场景开启时校验验证码；配置异常直接渲染 500 并中止
func (h *Handler) verifyCaptcha(c *gin.Context, form *view.Form, scene string, payload handlershared.CaptchaPayload) bool {
	payload = payload.Normalize()
	err := h.CaptchaService.Verify(scene, payload.CaptchaID, payload.CaptchaCode)
	switch {
	case err == nil:
		return true
	case errors.Is(err, service.ErrCaptchaRequired):
		form.AddError("captcha", h.t(c, "form.captcha_required"))
	case errors.Is(err, service.ErrCaptchaInvalid):
		form.AddError("captcha", h.t(c, "form.captcha_invalid"))
	default:
		h.respondPageError(c, err)
	}
	return false
}

// captchaChallenge 场景开启时生成新的验证码图片
func (h *Handler) captchaChallenge(c *gin.Context, scene string) *service.CaptchaImageChallenge {
	if !h.CaptchaService.SceneEnabled(scene) {
		return nil
	}
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		handlershared.RequestLog(c).Errorw("captcha_generate_failed", "scene", scene, "error", err)
		return nil
	}
	return challenge
}

func (h *Handler) renderRegistration(c *gin.Context, form *view.Form) {
	h.render(c, http.StatusOK, "auth_form", h.t(c, "ui.title.registration"), authFormData{
		Form:      form,
		Action:    "/auth/registration/",
		Fields:    registerFields,
		Captcha:   h.captchaChallenge(c, constants.CaptchaSceneRegister),
		SubmitKey: "ui.auth.register_submit",
		FooterKey: "ui.auth.has_account",
		FooterURL: constants.LoginPath,
	})
}

func (h *Handler) renderLogin(c *gin.Context, form *view.Form, next string) {
	h.render(c, http.StatusOK, "auth_form", h.t(c, "ui.title.login"), authFormData{
		Form:      form,
		Action:    constants.LoginPath,
		Next:      next,
		Fields:    loginFields,
		Captcha:   h.captchaChallenge(c, constants.CaptchaSceneLogin),
		SubmitKey: "ui.auth.login_submit",
		FooterKey: "ui.auth.no_account",
		FooterURL: "/auth/registration/",
	})
}

func (h *Handler) renderPasswordChange(c *gin.Context, form *view.Form) {
	h.render(c, http.StatusOK, "auth_form", h.t(c, "ui.title.password_change"), authFormData{
		Form:      form,
		Action:    "/auth/password_change/",
		Fields:    passwordChangeFields,
		SubmitKey: "ui.auth.password_change_submit",
	})
}
