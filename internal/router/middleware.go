package router

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/blogicum-next/internal/authz"
	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/constants"
	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	publichandlers "github.com/blogicum-next/internal/http/handlers/public"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/i18n"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"
const adminIsSuperContextKey = "admin_is_super"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.L()
	}
	sugar := log.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if userID := handlershared.CurrentUserID(c); userID != 0 {
			fields = append(fields, "user_id", userID)
		}
		if c.GetBool(constants.ContextKeyRateLimitHit) {
			fields = append(fields, "rate_limited", true)
		}
		if len(c.Errors) > 0 {
			sugar.Errorw("request", append(fields, "errors", c.Errors.String())...)
			return
		}
		sugar.Infow("request", fields...)
	}
}

func getRequestID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyRequestID)
}

// RecoveryMiddleware panic 恢复，前台页面渲染 500 错误页
func RecoveryMiddleware(pages *publichandlers.Handler) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		handlershared.RequestLog(c).Errorw("request_panic_recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		if isAPIRequest(c) {
			handlershared.RespondError(c, response.CodeInternal, "error.internal", nil)
			c.Abort()
			return
		}
		pages.RenderError(c, http.StatusInternalServerError, "error.internal")
	})
}

// APIOnly 包装中间件，仅对 /api/ 前缀的请求生效
func APIOnly(mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAPIRequest(c) {
			c.Next()
			return
		}
		mw(c)
	}
}

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}

// LocaleMiddleware ?lang= 切换语言时写入 Cookie
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := strings.TrimSpace(c.Query(i18n.LocaleQueryKey)); raw != "" {
			locale := i18n.NormalizeLocale(raw)
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(i18n.LocaleCookieName, locale, int((365 * 24 * time.Hour).Seconds()), "/", "", false, false)
		}
		i18n.ResolveLocale(c)
		c.Next()
	}
}

// SessionMiddleware 从会话 Cookie 加载当前用户；无效会话按匿名处理并清除 Cookie
func SessionMiddleware(cfg config.BlogConfig, userAuth *service.UserAuthService) gin.HandlerFunc {
	cookieName := cfg.SessionCookieName()
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || strings.TrimSpace(token) == "" || userAuth == nil {
			c.Next()
			return
		}
		user, err := userAuth.Authenticate(token)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthenticated) &&
				!errors.Is(err, service.ErrTokenRevoked) &&
				!errors.Is(err, service.ErrUserDisabled) {
				handlershared.RequestLog(c).Errorw("session_authenticate_failed", "error", err)
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, "", -1, "/", "", cfg.SecureCookie, true)
			c.Next()
			return
		}
		c.Set(constants.ContextKeyUser, user)
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}

// RequireUserMiddleware 页面需要登录，匿名访问跳转登录页并带回跳地址
func RequireUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if handlershared.CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, publichandlers.LoginRedirectURL(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminJWTAuthMiddleware 管理端 Bearer Token 鉴权
func AdminJWTAuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService == nil {
			handlershared.RespondError(c, response.CodeUnauthorized, "error.token_invalid", nil)
			c.Abort()
			return
		}
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") || strings.TrimSpace(parts[1]) == "" {
			handlershared.RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
			c.Abort()
			return
		}

		admin, err := authService.Authenticate(strings.TrimSpace(parts[1]))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenRevoked):
				handlershared.RespondError(c, response.CodeUnauthorized, "error.token_revoked", nil)
			case errors.Is(err, service.ErrUnauthenticated):
				handlershared.RespondError(c, response.CodeUnauthorized, "error.token_invalid", nil)
			default:
				handlershared.RespondError(c, response.CodeInternal, "error.internal", err)
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminID, admin.ID)
		c.Set(constants.ContextKeyAdminName, admin.Username)
		c.Set(adminIsSuperContextKey, admin.IsSuper)
		c.Next()
	}
}

// AdminRBACMiddleware 管理端 RBAC 鉴权中间件
func AdminRBACMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authzService == nil {
			logger.Errorw("admin_rbac_service_unavailable")
			handlershared.RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
			c.Abort()
			return
		}

		if c.GetBool(adminIsSuperContextKey) {
			c.Next()
			return
		}

		var adminID uint
		switch value := c.Value(constants.ContextKeyAdminID).(type) {
		case uint:
			adminID = value
		case int:
			if value > 0 {
				adminID = uint(value)
			}
		}
		if adminID == 0 {
			handlershared.RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
			c.Abort()
			return
		}

		resource := c.FullPath()
		if strings.TrimSpace(resource) == "" {
			resource = c.Request.URL.Path
		}

		allowed, err := authzService.EnforceAdmin(adminID, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("admin_rbac_enforce_failed",
				"admin_id", adminID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			handlershared.RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
			c.Abort()
			return
		}
		if !allowed {
			logger.Warnw("admin_rbac_permission_denied",
				"admin_id", adminID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"resource", authz.NormalizeObject(resource),
			)
			handlershared.RespondError(c, response.CodeForbidden, "error.permission_denied", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
