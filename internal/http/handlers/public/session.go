package public

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// setSessionCookie 写入会话 Cookie（HttpOnly，SameSite=Lax）
func (h *Handler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Config.Blog.SessionCookieName(), token, maxAge, "/", "", h.Config.Blog.SecureCookie, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Config.Blog.SessionCookieName(), "", -1, "/", "", h.Config.Blog.SecureCookie, true)
}
