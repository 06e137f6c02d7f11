package admin

import (
	"strconv"

	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// UserStatusRequest 启用/停用用户
type UserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// GetAdminUsers 用户列表，keyword 匹配用户名/姓名/邮箱
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
	}
	if raw := c.Query("is_active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}
	users, total, err := h.UserAuthService.ListUsers(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, users, response.NewPagination(page, pageSize, total))
}

// GetAdminUser 用户详情
func (h *Handler) GetAdminUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetUserByID(id)
	if err != nil {
		h.respondServiceError(c, err, "error.fetch_failed", notFoundRule("error.user_not_found"))
		return
	}
	response.Success(c, user)
}

// UpdateUserStatus 启用/停用用户，停用后会话立即失效
func (h *Handler) UpdateUserStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UserStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}
	user, err := h.UserAuthService.SetActive(id, *req.IsActive)
	if err != nil {
		h.respondServiceError(c, err, "error.save_failed", notFoundRule("error.user_not_found"))
		return
	}
	logger.Infow("admin_user_status_changed", "admin_id", currentAdminID(c), "user_id", id, "is_active", user.IsActive)
	response.Success(c, user)
}

// DeleteUser 删除用户及其文章、评论
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.UserAuthService.DeleteUser(id); err != nil {
		h.respondServiceError(c, err, "error.delete_failed", notFoundRule("error.user_not_found"))
		return
	}
	logger.Infow("admin_user_deleted", "admin_id", currentAdminID(c), "user_id", id)
	response.Success(c, nil)
}
