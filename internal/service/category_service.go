package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"

	"github.com/gosimple/slug"
)

const (
	categoryTitleMaxLength = 256
	categorySlugMaxLength  = 64
)

var categorySlugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Title       string
	Description string
	Slug        string // 为空时由标题生成
	IsPublished bool
}

// List 分类列表
func (s *CategoryService) List(filter repository.CategoryListFilter) ([]models.Category, int64, error) {
	return s.repo.List(filter)
}

// Get 获取分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	normalized, err := s.normalize(input, 0)
	if err != nil {
		return nil, err
	}
	category := models.Category{
		Title:       normalized.Title,
		Description: normalized.Description,
		Slug:        normalized.Slug,
		IsPublished: normalized.IsPublished,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	normalized, err := s.normalize(input, id)
	if err != nil {
		return nil, err
	}
	category.Title = normalized.Title
	category.Description = normalized.Description
	category.Slug = normalized.Slug
	category.IsPublished = normalized.IsPublished
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// SetPublished 切换发布状态
func (s *CategoryService) SetPublished(id uint, published bool) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePublished(id, published); err != nil {
		return nil, err
	}
	category.IsPublished = published
	return category, nil
}

// Delete 删除分类，文章保留
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *CategoryService) normalize(input CategoryInput, excludeID uint) (CategoryInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Slug = strings.TrimSpace(input.Slug)
	if input.Slug == "" && input.Title != "" {
		input.Slug = slug.Make(input.Title)
	}

	verr := &ValidationError{}
	switch {
	case input.Title == "":
		verr.Add("title", "form.required")
	case utf8.RuneCountInString(input.Title) > categoryTitleMaxLength:
		verr.Add("title", "form.too_long")
	}
	if input.Description == "" {
		verr.Add("description", "form.required")
	}
	switch {
	case input.Slug == "":
		verr.Add("slug", "form.required")
	case len(input.Slug) > categorySlugMaxLength:
		verr.Add("slug", "form.too_long")
	case !categorySlugPattern.MatchString(input.Slug):
		verr.Add("slug", "form.slug_invalid")
	}
	if err := verr.OrNil(); err != nil {
		return input, err
	}

	count, err := s.repo.CountBySlug(input.Slug, excludeID)
	if err != nil {
		return input, err
	}
	if count > 0 {
		return input, ErrSlugExists
	}
	return input, nil
}
