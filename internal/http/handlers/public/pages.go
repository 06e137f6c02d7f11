package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type staticPageData struct {
	BodyKey string
}

// About GET /pages/about/
func (h *Handler) About(c *gin.Context) {
	h.render(c, http.StatusOK, "static_page", h.t(c, "ui.title.about"), staticPageData{BodyKey: "ui.page.about_body"})
}

// Rules GET /pages/rules/
func (h *Handler) Rules(c *gin.Context) {
	h.render(c, http.StatusOK, "static_page", h.t(c, "ui.title.rules"), staticPageData{BodyKey: "ui.page.rules_body"})
}
