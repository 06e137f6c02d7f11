package repository

import (
	"errors"

	"github.com/blogicum-next/internal/models"

	"gorm.io/gorm"
)

// LocationRepository 地点数据访问接口
type LocationRepository interface {
	List(filter LocationListFilter) ([]models.Location, int64, error)
	ListAll() ([]models.Location, error)
	GetByID(id uint) (*models.Location, error)
	Create(location *models.Location) error
	Update(location *models.Location) error
	UpdatePublished(id uint, published bool) error
	Delete(id uint) error
}

// GormLocationRepository GORM 实现
type GormLocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository 创建地点仓库
func NewLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// List 地点列表（后台）
func (r *GormLocationRepository) List(filter LocationListFilter) ([]models.Location, int64, error) {
	query := r.db.Model(&models.Location{})
	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	query = applyLikeSearch(query, filter.Search, "name")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var locations []models.Location
	if err := applyPagination(query, filter.Page, filter.PageSize).Order("name ASC, id ASC").Find(&locations).Error; err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

// ListPublished 已发布地点
func (r *GormLocationRepository) ListAll() ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.Order("name ASC, id ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// GetByID 根据 ID 获取地点
func (r *GormLocationRepository) GetByID(id uint) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

// Create 创建地点
func (r *GormLocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// Update 更新地点
func (r *GormLocationRepository) Update(location *models.Location) error {
	return r.db.Save(location).Error
}

// UpdatePublished 切换发布状态
func (r *GormLocationRepository) UpdatePublished(id uint, published bool) error {
	return r.db.Model(&models.Location{}).Where("id = ?", id).Update("is_published", published).Error
}

// Delete 删除地点，引用它的文章置空地点
func (r *GormLocationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("location_id = ?", id).Update("location_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Location{}, id).Error
	})
}
