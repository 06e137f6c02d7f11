package constants

// 验证码场景
const (
	CaptchaSceneRegister = "register"
	CaptchaSceneLogin    = "login"
)

// gin 上下文键
const (
	ContextKeyRequestID    = "request_id"
	ContextKeyAdminID      = "admin_id"
	ContextKeyAdminName    = "username"
	ContextKeyUserID       = "user_id"
	ContextKeyUser         = "current_user"
	ContextKeyLocale       = "locale"
	ContextKeyRateLimitHit = "rate_limit_hit"
)

// 内置后台角色
const (
	RoleReadonlyAuditor = "readonly_auditor"
	RoleEditor          = "editor"
	RoleModerator       = "moderator"
)

// 认证跳转
const (
	LoginPath    = "/auth/login/"
	NextQueryKey = "next"
)

// 后台分页默认值
const (
	AdminDefaultPageSize = 20
	AdminMaxPageSize     = 100
)
