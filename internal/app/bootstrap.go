package app

import (
	"errors"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/provider"
	"github.com/blogicum-next/internal/router"

	"go.uber.org/zap"
)

type defaultAdminSeeder interface {
	EnsureDefaultAdmin(username, password string) (*models.Admin, error)
}

// BuildRunner 基于已组装的容器构建服务运行器
func BuildRunner(cfg *config.Config, container *provider.Container) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if container == nil {
		return nil, errors.New("container is nil")
	}
	engine := router.SetupRouter(cfg, container)
	return NewRunner(NewHTTPService(listenAddr(cfg.Server), engine)), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	container := provider.NewContainer(opts.Config)
	seedDefaultAdmin(container.AuthService, opts.DefaultAdmin, opts.Logger)

	runner, err := BuildRunner(opts.Config, container)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start",
		"addr", listenAddr(opts.Config.Server),
		"site_name", opts.Config.Blog.SiteName,
		"shutdown_timeout", opts.ShutdownTimeout.String(),
	)
	return RunWithOptions(runner, opts)
}

// seedDefaultAdmin 初始化失败只告警，不阻止站点启动
func seedDefaultAdmin(seeder defaultAdminSeeder, opts DefaultAdminOptions, log *zap.SugaredLogger) {
	if opts.Skip {
		log.Warnw("default_admin_skipped", "reason", "password_not_configured")
		return
	}
	admin, err := seeder.EnsureDefaultAdmin(opts.Username, opts.Password)
	if err != nil {
		log.Warnw("default_admin_init_failed", "error", err)
		return
	}
	if admin == nil {
		return
	}
	log.Warnw("default_admin_created",
		"username", admin.Username,
		"default_password", opts.Password == "",
	)
}

func listenAddr(server config.ServerConfig) string {
	return server.Host + ":" + server.Port
}
