package public

import (
	"errors"
	"net/http"

	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 业务错误到错误页的映射
type mappedHandlerError struct {
	target error
	status int
	key    string
}

var pageErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, status: http.StatusNotFound, key: "error.not_found"},
	{target: service.ErrForbidden, status: http.StatusForbidden, key: "error.forbidden"},
}

type errorPageData struct {
	Status     int
	MessageKey string
}

// RenderError 渲染错误页，路由层的 404/429/500 也复用
func (h *Handler) RenderError(c *gin.Context, status int, key string) {
	h.render(c, status, "error", h.t(c, "ui.title.error"), errorPageData{Status: status, MessageKey: key})
	c.Abort()
}

// NotFound 未匹配路由
func (h *Handler) NotFound(c *gin.Context) {
	h.RenderError(c, http.StatusNotFound, "error.not_found")
}

// respondPageError 按规则表渲染错误页；未登录跳转登录；其余记录日志并返回 500
func (h *Handler) respondPageError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUnauthenticated) {
		redirectToLogin(c)
		return
	}
	for _, rule := range pageErrorRules {
		if errors.Is(err, rule.target) {
			h.RenderError(c, rule.status, rule.key)
			return
		}
	}
	handlershared.RequestLog(c).Errorw("page_handler_error", "path", c.Request.URL.Path, "error", err)
	h.RenderError(c, http.StatusInternalServerError, "error.internal")
}
