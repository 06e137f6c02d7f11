package repository

import (
	"errors"

	"github.com/blogicum-next/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	List(filter CategoryListFilter) ([]models.Category, int64, error)
	ListAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	UpdatePublished(id uint, published bool) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID uint) (int64, error)
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List 分类列表（后台）
func (r *GormCategoryRepository) List(filter CategoryListFilter) ([]models.Category, int64, error) {
	query := r.db.Model(&models.Category{})
	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	query = applyLikeSearch(query, filter.Search, "title", "slug")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.Category
	if err := applyPagination(query, filter.Page, filter.PageSize).Order("title ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// ListPublished 已发布分类，用于文章表单下拉框
func (r *GormCategoryRepository) ListAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("title ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID 根据 ID 获取分类
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlug 根据 slug 获取分类，不过滤发布状态
func (r *GormCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create 创建分类
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update 更新分类
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// UpdatePublished 切换发布状态
func (r *GormCategoryRepository) UpdatePublished(id uint, published bool) error {
	return r.db.Model(&models.Category{}).Where("id = ?", id).Update("is_published", published).Error
}

// Delete 删除分类，所属文章保留并置空分类
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}

// CountBySlug 统计 slug 数量
func (r *GormCategoryRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
