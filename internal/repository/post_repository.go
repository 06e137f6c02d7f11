package repository

import (
	"errors"
	"time"

	"github.com/blogicum-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	postDefaultOrder = "posts.pub_date DESC, posts.id DESC"

	visibilityCategoryJoin = "LEFT JOIN categories AS visibility_category ON visibility_category.id = posts.category_id"
	publicPostCondition    = "posts.is_published = ? AND visibility_category.id IS NOT NULL AND visibility_category.is_published = ? AND posts.pub_date <= ?"

	commentCountColumn = "(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"
)

// PostRepository 文章数据访问接口
type PostRepository interface {
	Find(q PostQuery) ([]models.Post, error)
	Count(q PostQuery) (int64, error)
	FindOne(q PostQuery) (*models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	UpdatePublished(id uint, published bool) error
	Delete(id uint) error
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Find 按组合参数查询文章，结果按发布时间倒序
func (r *GormPostRepository) Find(q PostQuery) ([]models.Post, error) {
	query := r.filtered(q)
	if q.WithCommentCount {
		query = query.Select("posts.*, " + commentCountColumn)
	} else {
		query = query.Select("posts.*")
	}
	if q.WithRelations {
		query = query.Preload("Author").Preload("Location").Preload("Category")
	}
	query = applyPagination(query.Order(postDefaultOrder), q.Page, q.PageSize)

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Count 统计满足组合参数的文章数量，忽略分页
func (r *GormPostRepository) Count(q PostQuery) (int64, error) {
	var total int64
	if err := r.filtered(q).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindOne 查询单篇文章，不存在或不可见时返回 nil
func (r *GormPostRepository) FindOne(q PostQuery) (*models.Post, error) {
	q.Page, q.PageSize = 1, 1
	posts, err := r.Find(q)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

// filtered 构建可见性与范围过滤，不含排序与字段选择
func (r *GormPostRepository) filtered(q PostQuery) *gorm.DB {
	query := applyPostVisibility(r.db.Model(&models.Post{}), q)
	if q.ID != 0 {
		query = query.Where("posts.id = ?", q.ID)
	}
	if q.AuthorID != 0 {
		query = query.Where("posts.author_id = ?", q.AuthorID)
	}
	if q.CategoryID != 0 {
		query = query.Where("posts.category_id = ?", q.CategoryID)
	}
	return applyLikeSearch(query, q.Search, "posts.title")
}

// applyPostVisibility 追加可见性条件；放宽模式下 ViewerID 为 0 等同于公开可见
func applyPostVisibility(query *gorm.DB, q PostQuery) *gorm.DB {
	if q.Visibility == VisibilityAll {
		return query
	}
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()
	query = query.Joins(visibilityCategoryJoin)
	if q.Visibility == VisibilityPublicOrAuthor && q.ViewerID != 0 {
		return query.Where("(("+publicPostCondition+") OR posts.author_id = ?)", true, true, now, q.ViewerID)
	}
	return query.Where("("+publicPostCondition+")", true, true, now)
}

// GetByID 根据主键获取文章，不做可见性过滤
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create 创建文章
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Omit(clause.Associations).Create(post).Error
}

// Update 更新文章
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Omit(clause.Associations).Save(post).Error
}

// UpdatePublished 切换发布状态
func (r *GormPostRepository) UpdatePublished(id uint, published bool) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).Update("is_published", published).Error
}

// Delete 删除文章及其评论
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
