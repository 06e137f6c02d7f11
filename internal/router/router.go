package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/blogicum-next/internal/authz"
	"github.com/blogicum-next/internal/cache"
	"github.com/blogicum-next/internal/config"
	adminhandlers "github.com/blogicum-next/internal/http/handlers/admin"
	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	publichandlers "github.com/blogicum-next/internal/http/handlers/public"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/http/view"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()
	renderer, err := view.NewRenderer(cfg.Blog.Location())
	if err != nil {
		logger.Errorw("template_parse_failed", "error", err)
		panic(fmt.Errorf("模板解析失败: %w", err))
	}
	r.HTMLRender = renderer

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "blogicum"
	}
	redisClient := cache.Client()
	renderTooMany := func(ctx *gin.Context, messageKey string) {
		publicHandler.RenderError(ctx, http.StatusTooManyRequests, messageKey)
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
		Reject:        renderTooMany,
	}
	registerRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:register", redisPrefix),
		WindowSeconds: cfg.Security.RegisterRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.RegisterRateLimit.MaxAttempts,
		MessageKey:    "error.register_too_many",
		Reject:        renderTooMany,
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(RecoveryMiddleware(publicHandler))
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(LocaleMiddleware())
	r.Use(APIOnly(CORSMiddleware(cfg.CORS)))

	// 上传的图片
	r.Static(c.UploadService.URLPrefix(), c.UploadService.RootDir())

	// 健康检查
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 前台页面
	site := r.Group("")
	site.Use(SessionMiddleware(cfg.Blog, c.UserAuthService))
	{
		site.GET("/", publicHandler.Index)
		site.GET("/category/:slug/", publicHandler.CategoryPosts)
		site.GET("/posts/:id/", publicHandler.PostDetail)
		site.GET("/profile/:username/", publicHandler.Profile)
		site.GET("/pages/about/", publicHandler.About)
		site.GET("/pages/rules/", publicHandler.Rules)

		auth := site.Group("/auth")
		{
			auth.GET("/login/", publicHandler.LoginForm)
			auth.POST("/login/", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndFormField("username")), publicHandler.Login)
			auth.GET("/registration/", publicHandler.RegistrationForm)
			auth.POST("/registration/", RateLimitMiddleware(redisClient, registerRule, KeyByIP), publicHandler.Register)
			auth.GET("/logout/", publicHandler.Logout)
			auth.POST("/logout/", publicHandler.Logout)
		}

		// 需要登录
		member := site.Group("")
		member.Use(RequireUserMiddleware())
		{
			member.POST("/posts/:id/", publicHandler.AddComment)
			member.POST("/posts/:id/comment/", publicHandler.AddComment)
			member.GET("/posts/create/", publicHandler.CreatePostForm)
			member.POST("/posts/create/", publicHandler.CreatePost)
			member.GET("/posts/:id/edit/", publicHandler.EditPostForm)
			member.POST("/posts/:id/edit/", publicHandler.EditPost)
			member.GET("/posts/:id/delete/", publicHandler.DeletePostForm)
			member.POST("/posts/:id/delete/", publicHandler.DeletePost)
			member.GET("/posts/:id/edit_comment/:comment_id", publicHandler.EditCommentForm)
			member.POST("/posts/:id/edit_comment/:comment_id", publicHandler.EditComment)
			member.GET("/posts/:id/delete_comment/:comment_id", publicHandler.DeleteCommentForm)
			member.POST("/posts/:id/delete_comment/:comment_id", publicHandler.DeleteComment)
			member.GET("/profile/edit/", publicHandler.EditProfileForm)
			member.POST("/profile/edit/", publicHandler.EditProfile)
			member.GET("/auth/password_change/", publicHandler.PasswordChangeForm)
			member.POST("/auth/password_change/", publicHandler.PasswordChange)
		}
	}

	// 管理员接口
	admin := r.Group("/api/v1/admin")
	{
		// 登录接口（无需鉴权）
		admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)

		// 需要鉴权的接口
		authorized := admin.Group("")
		authorized.Use(AdminJWTAuthMiddleware(c.AuthService), AdminRBACMiddleware(c.AuthzService))
		{
			authorized.PUT("/password", adminHandler.UpdateAdminPassword)

			// 分类管理
			authorized.GET("/categories", adminHandler.GetAdminCategories)
			authorized.GET("/categories/:id", adminHandler.GetAdminCategory)
			authorized.POST("/categories", adminHandler.CreateCategory)
			authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
			authorized.PATCH("/categories/:id/publish", adminHandler.PublishCategory)
			authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

			// 地点管理
			authorized.GET("/locations", adminHandler.GetAdminLocations)
			authorized.GET("/locations/:id", adminHandler.GetAdminLocation)
			authorized.POST("/locations", adminHandler.CreateLocation)
			authorized.PUT("/locations/:id", adminHandler.UpdateLocation)
			authorized.PATCH("/locations/:id/publish", adminHandler.PublishLocation)
			authorized.DELETE("/locations/:id", adminHandler.DeleteLocation)

			// 文章与评论
			authorized.GET("/posts", adminHandler.GetAdminPosts)
			authorized.GET("/posts/:id", adminHandler.GetAdminPost)
			authorized.PATCH("/posts/:id/publish", adminHandler.PublishPost)
			authorized.DELETE("/posts/:id", adminHandler.DeletePost)
			authorized.GET("/comments", adminHandler.GetAdminComments)
			authorized.DELETE("/comments/:id", adminHandler.DeleteComment)

			// 用户管理
			authorized.GET("/users", adminHandler.GetAdminUsers)
			authorized.GET("/users/:id", adminHandler.GetAdminUser)
			authorized.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)
			authorized.DELETE("/users/:id", adminHandler.DeleteUser)

			// 权限管理
			authorized.GET("/authz/me", adminHandler.GetAuthzMe)
			authorized.GET("/authz/roles", adminHandler.ListAuthzRoles)
			authorized.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
			authorized.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
			authorized.GET("/authz/admins", adminHandler.ListAuthzAdmins)
			authorized.POST("/authz/admins", adminHandler.CreateAuthzAdmin)
			authorized.GET("/authz/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
			authorized.PUT("/authz/admins/:id/roles", adminHandler.SetAuthzAdminRoles)
			authorized.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
				response.Success(ctx, buildAdminPermissionCatalog(r))
			})
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		if isAPIRequest(ctx) {
			handlershared.RespondError(ctx, response.CodeNotFound, "error.not_found", nil)
			return
		}
		publicHandler.NotFound(ctx)
	})

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == http.MethodOptions || method == http.MethodHead {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		if item.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	return segments[1]
}
