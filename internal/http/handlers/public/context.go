package public

import (
	"net/http"
	"net/url"

	"github.com/blogicum-next/internal/constants"
	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/http/view"
	"github.com/blogicum-next/internal/i18n"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint {
	return handlershared.CurrentUserID(c)
}

// page 组装页面公共上下文
func (h *Handler) page(c *gin.Context, title string, data interface{}) *view.Page {
	return &view.Page{
		Locale:      i18n.ResolveLocale(c),
		Locales:     i18n.SupportedLocales(),
		SiteName:    h.Config.Blog.SiteName,
		Title:       title,
		Path:        c.Request.URL.Path,
		CurrentUser: handlershared.CurrentUser(c),
		RequestID:   c.GetString(constants.ContextKeyRequestID),
		Data:        data,
	}
}

func (h *Handler) render(c *gin.Context, status int, name, title string, data interface{}) {
	c.HTML(status, name, h.page(c, title, data))
}

func (h *Handler) t(c *gin.Context, key string) string {
	return i18n.T(i18n.ResolveLocale(c), key)
}

// LoginRedirectURL 登录页地址，带回跳参数
func LoginRedirectURL(next string) string {
	if next == "" {
		return constants.LoginPath
	}
	return constants.LoginPath + "?" + url.Values{constants.NextQueryKey: {next}}.Encode()
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, LoginRedirectURL(c.Request.URL.RequestURI()))
	c.Abort()
}
