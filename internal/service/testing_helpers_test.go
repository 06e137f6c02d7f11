package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type blogServices struct {
	db       *gorm.DB
	cfg      *config.Config
	posts    *PostService
	comments *CommentService
	users    *UserAuthService
	uploads  *UploadService
}

func newBlogServices(t *testing.T) *blogServices {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{
		UserJWT: config.JWTConfig{SecretKey: "test-user-secret-with-enough-length", ExpireHours: 24},
		JWT:     config.JWTConfig{SecretKey: "test-admin-secret-with-enough-length", ExpireHours: 24},
		Upload: config.UploadConfig{
			Dir:               t.TempDir(),
			URLPrefix:         "/media",
			MaxSize:           1 << 20,
			AllowedTypes:      []string{"image/png"},
			AllowedExtensions: []string{".png"},
			MaxWidth:          100,
			MaxHeight:         100,
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8, RequireNumber: true},
		},
	}

	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)
	uploads := NewUploadService(cfg.Upload)
	return &blogServices{
		db:  db,
		cfg: cfg,
		posts: NewPostService(
			postRepo,
			repository.NewCategoryRepository(db),
			repository.NewLocationRepository(db),
			userRepo,
			commentRepo,
			uploads,
		),
		comments: NewCommentService(commentRepo, postRepo),
		users:    NewUserAuthService(cfg, userRepo),
		uploads:  uploads,
	}
}

func (b *blogServices) mustUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x", IsActive: true}
	if err := b.db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func (b *blogServices) mustCategory(t *testing.T, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{Title: slug, Description: "d", Slug: slug, IsPublished: published}
	if err := b.db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func (b *blogServices) mustPost(t *testing.T, title string, author *models.User, category *models.Category, published bool, pubDate time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       title,
		Text:        "text",
		PubDate:     pubDate.UTC(),
		AuthorID:    author.ID,
		IsPublished: published,
	}
	if category != nil {
		post.CategoryID = &category.ID
	}
	if err := repository.NewPostRepository(b.db).Create(post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

func feedTitles(feed *Feed) []string {
	titles := make([]string, 0, len(feed.Posts))
	for _, p := range feed.Posts {
		titles = append(titles, p.Title)
	}
	return titles
}
