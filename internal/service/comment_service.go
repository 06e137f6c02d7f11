package service

import (
	"strings"

	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
)

// CommentService 评论业务服务
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService 创建评论服务
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// ListForPost 文章下的评论，按创建时间正序
func (s *CommentService) ListForPost(postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}

// Create 发表评论；文章仅按主键确认存在，不再校验可见性
func (s *CommentService) Create(postID, authorID uint, text string) (*models.Comment, error) {
	if authorID == 0 {
		return nil, ErrUnauthenticated
	}
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if err := validateCommentText(text); err != nil {
		return nil, err
	}
	comment := &models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetOwned 获取属于该文章且由当前用户发表的评论
func (s *CommentService) GetOwned(postID, commentID, userID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.PostID != postID {
		return nil, ErrNotFound
	}
	if !IsAuthor(comment.AuthorID, userID) {
		return nil, ErrForbidden
	}
	return comment, nil
}

// Update 作者修改评论内容
func (s *CommentService) Update(postID, commentID, userID uint, text string) (*models.Comment, error) {
	comment, err := s.GetOwned(postID, commentID, userID)
	if err != nil {
		return nil, err
	}
	if err := validateCommentText(text); err != nil {
		return nil, err
	}
	if err := s.commentRepo.UpdateText(comment.ID, text); err != nil {
		return nil, err
	}
	comment.Text = text
	return comment, nil
}

// Delete 作者删除评论
func (s *CommentService) Delete(postID, commentID, userID uint) error {
	comment, err := s.GetOwned(postID, commentID, userID)
	if err != nil {
		return err
	}
	return s.commentRepo.Delete(comment.ID)
}

// AdminList 后台评论列表
func (s *CommentService) AdminList(filter repository.CommentListFilter) ([]models.Comment, int64, error) {
	return s.commentRepo.List(filter)
}

// AdminDelete 后台删除评论
func (s *CommentService) AdminDelete(id uint) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	return s.commentRepo.Delete(id)
}

func validateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("text", "form.required")
	}
	return nil
}
