package repository

import (
	"errors"

	"github.com/blogicum-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const commentDefaultOrder = "comments.created_at ASC, comments.id ASC"

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	ListByPost(postID uint) ([]models.Comment, error)
	List(filter CommentListFilter) ([]models.Comment, int64, error)
	GetByID(id uint) (*models.Comment, error)
	Create(comment *models.Comment) error
	UpdateText(id uint, text string) error
	Delete(id uint) error
}

// GormCommentRepository GORM 实现
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓库
func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// ListByPost 文章下全部评论，按时间正序并预加载作者
func (r *GormCommentRepository) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Preload("Author").Where("post_id = ?", postID).Order(commentDefaultOrder).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// List 评论列表（后台）
func (r *GormCommentRepository) List(filter CommentListFilter) ([]models.Comment, int64, error) {
	query := r.db.Model(&models.Comment{})
	if filter.PostID != 0 {
		query = query.Where("post_id = ?", filter.PostID)
	}
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	if err := applyPagination(query, filter.Page, filter.PageSize).Preload("Author").Order(commentDefaultOrder).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// GetByID 根据 ID 获取评论
func (r *GormCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("Author").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// Create 创建评论
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Omit(clause.Associations).Create(comment).Error
}

// UpdateText 仅更新评论内容，创建时间保持不变
func (r *GormCommentRepository) UpdateText(id uint, text string) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", id).Update("text", text).Error
}

// Delete 删除评论
func (r *GormCommentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
