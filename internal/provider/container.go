package provider

import (
	"time"

	"github.com/blogicum-next/internal/authz"
	"github.com/blogicum-next/internal/cache"
	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
	"github.com/blogicum-next/internal/service"

	"github.com/mojocn/base64Captcha"
	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	AdminRepo    repository.AdminRepository
	UserRepo     repository.UserRepository
	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository
	LocationRepo repository.LocationRepository
	CommentRepo  repository.CommentRepository

	// Services
	AuthzService    *authz.Service
	AuthService     *service.AuthService
	UserAuthService *service.UserAuthService
	CaptchaService  *service.CaptchaService
	UploadService   *service.UploadService
	PostService     *service.PostService
	CommentService  *service.CommentService
	CategoryService *service.CategoryService
	LocationService *service.LocationService
}

// NewContainer 使用全局 models.DB 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	c, err := Build(cfg, models.DB)
	if err != nil {
		logger.Errorw("provider_init_failed", "error", err)
		panic(err)
	}
	return c
}

// Build 基于给定数据库组装全部仓储与服务，测试中直接调用
func Build(cfg *config.Config, db *gorm.DB) (*Container, error) {
	c := &Container{Config: cfg}
	c.initRepositories(db)
	if err := c.initServices(db); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.LocationRepo = repository.NewLocationRepository(db)
	c.CommentRepo = repository.NewCommentRepository(db)
}

func (c *Container) initServices(db *gorm.DB) error {
	authzService, err := authz.NewService(db)
	if err != nil {
		return err
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		return err
	}
	c.AuthzService = authzService

	// Redis 可用时验证码答案存入 Redis，多实例共享
	var captchaStore base64Captcha.Store
	if cache.Enabled() {
		ttl := time.Duration(c.Config.Captcha.Image.ExpireSeconds) * time.Second
		captchaStore = cache.NewCaptchaStore(cache.Client(), ttl)
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha, captchaStore)
	c.UploadService = service.NewUploadService(c.Config.Upload)
	c.PostService = service.NewPostService(c.PostRepo, c.CategoryRepo, c.LocationRepo, c.UserRepo, c.CommentRepo, c.UploadService)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.PostRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.LocationService = service.NewLocationService(c.LocationRepo)
	return nil
}
