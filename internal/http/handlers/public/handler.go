package public

import (
	"time"

	"github.com/blogicum-next/internal/provider"
)

// Handler 前台页面处理器（服务端渲染 HTML）
type Handler struct {
	*provider.Container
	loc *time.Location
	now func() time.Time
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c, loc: c.Config.Blog.Location(), now: time.Now}
}

func (h *Handler) nowUTC() time.Time {
	return h.now().UTC()
}
