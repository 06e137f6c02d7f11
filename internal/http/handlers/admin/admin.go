package admin

import (
	"errors"
	"time"

	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			requestLog(c).Warnw("admin_login_failed", "username", req.Username)
			respondError(c, response.CodeUnauthorized, "error.login_failed", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	requestLog(c).Infow("admin_logged_in", "admin_id", admin.ID)
	response.Success(c, LoginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
			"is_super": admin.IsSuper,
		},
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateAdminPassword 修改管理员密码，成功后当前 Token 同样失效
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWeakPassword) {
			h.respondWeakPassword(c, "new_password", err)
			return
		}
		h.respondServiceError(c, err, "error.save_failed",
			mappedAdminError{target: service.ErrInvalidPassword, code: response.CodeBadRequest, key: "error.password_incorrect"},
			notFoundRule("error.admin_not_found"),
		)
		return
	}
	requestLog(c).Infow("admin_password_changed", "admin_id", id)
	response.Success(c, nil)
}

// respondWeakPassword 密码策略错误按字段返回
func (h *Handler) respondWeakPassword(c *gin.Context, field string, err error) {
	key, _, ok := service.PasswordPolicyKeyArgs(err)
	if !ok {
		key = "error.password_weak"
	}
	h.respondServiceError(c, service.NewValidationError(field, key), "error.password_weak")
}
