package main

import (
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/models"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "blogicum2024"

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("Failed to hash password: %v", err)
	}

	// 添加用户
	users := []models.User{
		{Username: "leo", FirstName: "Leo", LastName: "Tolstoy", Email: "leo@example.com"},
		{Username: "anna", FirstName: "Anna", LastName: "Karenina", Email: "anna@example.com"},
	}
	userIDs := map[string]uint{}
	for _, u := range users {
		var existing models.User
		if err := models.DB.Where("username = ?", u.Username).First(&existing).Error; err == nil {
			stdLog.Printf("User already exists: %s", u.Username)
			userIDs[u.Username] = existing.ID
			continue
		}
		u.PasswordHash = string(hash)
		u.IsActive = true
		if err := models.DB.Create(&u).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", u.Username, err)
			continue
		}
		stdLog.Printf("Created user: %s", u.Username)
		userIDs[u.Username] = u.ID
	}

	// 添加分类
	categories := []models.Category{
		{Title: "Travel", Description: "Notes from the road"},
		{Title: "Everyday Life", Description: "Small things worth writing down"},
		{Title: "Drafts Corner", Description: "Hidden until it is ready"},
	}
	categoryIDs := map[string]uint{}
	for i, cat := range categories {
		cat.Slug = slug.Make(cat.Title)
		cat.IsPublished = i != len(categories)-1
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err == nil {
			stdLog.Printf("Category already exists: %s", cat.Slug)
			categoryIDs[cat.Slug] = existing.ID
			continue
		}
		if err := models.DB.Create(&cat).Error; err != nil {
			stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			continue
		}
		stdLog.Printf("Created category: %s", cat.Slug)
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加地点
	locationIDs := map[string]uint{}
	for _, name := range []string{"Moscow", "Saint Petersburg"} {
		var existing models.Location
		if err := models.DB.Where("name = ?", name).First(&existing).Error; err == nil {
			locationIDs[name] = existing.ID
			continue
		}
		loc := models.Location{Name: name, IsPublished: true}
		if err := models.DB.Create(&loc).Error; err != nil {
			stdLog.Printf("Failed to create location %s: %v", name, err)
			continue
		}
		locationIDs[name] = loc.ID
	}

	var postCount int64
	if err := models.DB.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		stdLog.Fatalf("Failed to count posts: %v", err)
	}
	if postCount > 0 {
		stdLog.Printf("Posts already exist, skip seeding posts")
		return
	}

	// 添加文章，包含定时发布与未发布样例
	now := time.Now().UTC()
	posts := []models.Post{
		{
			Title:       "First snow in the city",
			Text:        "The **first snow** arrived overnight.\n\nStreets went quiet.",
			PubDate:     now.Add(-48 * time.Hour),
			AuthorID:    userIDs["leo"],
			CategoryID:  idPtr(categoryIDs["travel"]),
			LocationID:  idPtr(locationIDs["Moscow"]),
			IsPublished: true,
		},
		{
			Title:       "A walk along the river",
			Text:        "Bridges, wind and a thermos of tea.",
			PubDate:     now.Add(-24 * time.Hour),
			AuthorID:    userIDs["anna"],
			CategoryID:  idPtr(categoryIDs["everyday-life"]),
			LocationID:  idPtr(locationIDs["Saint Petersburg"]),
			IsPublished: true,
		},
		{
			Title:       "Scheduled for next week",
			Text:        "Only the author sees this one until its publication date.",
			PubDate:     now.Add(7 * 24 * time.Hour),
			AuthorID:    userIDs["leo"],
			CategoryID:  idPtr(categoryIDs["travel"]),
			IsPublished: true,
		},
		{
			Title:       "Unfinished thoughts",
			Text:        "Work in progress.",
			PubDate:     now.Add(-time.Hour),
			AuthorID:    userIDs["anna"],
			CategoryID:  idPtr(categoryIDs["drafts-corner"]),
			IsPublished: false,
		},
	}
	for i := range posts {
		if posts[i].AuthorID == 0 {
			continue
		}
		if err := models.DB.Create(&posts[i]).Error; err != nil {
			stdLog.Printf("Failed to create post %s: %v", posts[i].Title, err)
			continue
		}
		stdLog.Printf("Created post: %s", posts[i].Title)
	}

	if posts[0].ID != 0 && userIDs["anna"] != 0 {
		comment := models.Comment{Text: "Beautiful, I miss winter already.", PostID: posts[0].ID, AuthorID: userIDs["anna"]}
		if err := models.DB.Create(&comment).Error; err != nil {
			stdLog.Printf("Failed to create comment: %v", err)
		}
	}

	stdLog.Printf("Seed completed, demo password: %s", demoPassword)
}

func idPtr(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
