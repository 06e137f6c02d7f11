package app

import (
	"os"
	"strings"
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultShutdownTimeout = 10 * time.Second

	envDefaultAdminUsername = "BLOGICUM_DEFAULT_ADMIN_USERNAME"
	envDefaultAdminPassword = "BLOGICUM_DEFAULT_ADMIN_PASSWORD"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	DefaultAdmin    DefaultAdminOptions
}

// DefaultAdminOptions 首次启动时的后台账号
type DefaultAdminOptions struct {
	Username string
	Password string
	// Skip 为 true 时不创建也不提升任何账号
	Skip bool
}

// normalizeOptions 补齐默认参数，可重复调用
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 && opts.Config != nil && opts.Config.Server.ShutdownTimeoutSeconds > 0 {
		opts.ShutdownTimeout = time.Duration(opts.Config.Server.ShutdownTimeoutSeconds) * time.Second
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}

	admin := &opts.DefaultAdmin
	if strings.TrimSpace(admin.Username) == "" {
		admin.Username = strings.TrimSpace(os.Getenv(envDefaultAdminUsername))
	}
	if admin.Password == "" {
		admin.Password = os.Getenv(envDefaultAdminPassword)
	}
	// release 模式下不允许以内置默认密码建号
	if opts.Config != nil && opts.Config.Server.Mode == "release" && admin.Password == "" {
		admin.Skip = true
	}
	return opts
}
