package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/blogicum-next/internal/models"

	"gorm.io/gorm"
)

// AdminRepository 后台账号数据访问接口
type AdminRepository interface {
	GetByUsername(username string) (*models.Admin, error)
	GetByID(id uint) (*models.Admin, error)
	List() ([]models.Admin, error)
	Count() (int64, error)
	Create(admin *models.Admin) error
	TouchLastLogin(id uint, at time.Time) error
	RotatePassword(id uint, hash string, invalidBefore time.Time) error
	PromoteSuper(username string) (bool, error)
}

// GormAdminRepository GORM 实现
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建后台账号仓库
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

func (r *GormAdminRepository) first(query *gorm.DB) (*models.Admin, error) {
	var admin models.Admin
	if err := query.First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByUsername 按用户名查找，不存在返回 nil
func (r *GormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil
	}
	return r.first(r.db.Where("username = ?", username))
}

// GetByID 按 ID 查找，不存在返回 nil
func (r *GormAdminRepository) GetByID(id uint) (*models.Admin, error) {
	if id == 0 {
		return nil, nil
	}
	return r.first(r.db.Where("id = ?", id))
}

// List 后台账号列表，不读取密码与令牌列
func (r *GormAdminRepository) List() ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	err := r.db.
		Select("id", "username", "is_super", "last_login_at", "created_at", "updated_at").
		Order("id ASC").
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// Count 后台账号总数，启动时判断是否需要初始化
func (r *GormAdminRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Admin{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Create 新建后台账号
func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// TouchLastLogin 只更新 last_login_at
func (r *GormAdminRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// RotatePassword 替换密码哈希并使此前签发的 Token 全部失效
func (r *GormAdminRepository) RotatePassword(id uint, hash string, invalidBefore time.Time) error {
	result := r.db.Model(&models.Admin{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash":        hash,
		"token_version":        gorm.Expr("token_version + 1"),
		"token_invalid_before": invalidBefore,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PromoteSuper 将指定账号设为超级管理员，返回账号是否存在
func (r *GormAdminRepository) PromoteSuper(username string) (bool, error) {
	result := r.db.Model(&models.Admin{}).Where("username = ?", strings.TrimSpace(username)).Update("is_super", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
