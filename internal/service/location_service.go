package service

import (
	"strings"
	"unicode/utf8"

	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
)

const locationNameMaxLength = 256

// LocationService 地点业务服务
type LocationService struct {
	repo repository.LocationRepository
}

// NewLocationService 创建地点服务
func NewLocationService(repo repository.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// LocationInput 创建/更新地点输入
type LocationInput struct {
	Name        string
	IsPublished bool
}

// List 地点列表
func (s *LocationService) List(filter repository.LocationListFilter) ([]models.Location, int64, error) {
	return s.repo.List(filter)
}

// Get 获取地点
func (s *LocationService) Get(id uint) (*models.Location, error) {
	location, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}
	return location, nil
}

// Create 创建地点
func (s *LocationService) Create(input LocationInput) (*models.Location, error) {
	name, err := normalizeLocationName(input.Name)
	if err != nil {
		return nil, err
	}
	location := models.Location{Name: name, IsPublished: input.IsPublished}
	if err := s.repo.Create(&location); err != nil {
		return nil, err
	}
	return &location, nil
}

// Update 更新地点
func (s *LocationService) Update(id uint, input LocationInput) (*models.Location, error) {
	location, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	name, err := normalizeLocationName(input.Name)
	if err != nil {
		return nil, err
	}
	location.Name = name
	location.IsPublished = input.IsPublished
	if err := s.repo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

// SetPublished 切换发布状态
func (s *LocationService) SetPublished(id uint, published bool) (*models.Location, error) {
	location, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePublished(id, published); err != nil {
		return nil, err
	}
	location.IsPublished = published
	return location, nil
}

// Delete 删除地点，引用它的文章置空地点
func (s *LocationService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func normalizeLocationName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		return "", NewValidationError("name", "form.required")
	case utf8.RuneCountInString(name) > locationNameMaxLength:
		return "", NewValidationError("name", "form.too_long")
	}
	return name, nil
}
