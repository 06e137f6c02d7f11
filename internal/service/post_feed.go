package service

import (
	"strings"

	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
)

// Feed 分页后的文章列表
type Feed struct {
	Posts []models.Post
	Page  PageInfo
}

// GlobalFeed 首页：公开可见文章，带评论数
func (s *PostService) GlobalFeed(rawPage string) (*Feed, error) {
	return s.paginate(repository.PostQuery{
		WithRelations:    true,
		Visibility:       repository.VisibilityPublic,
		WithCommentCount: true,
	}, rawPage)
}

// CategoryFeed 分类页：分类必须存在且已发布，文章按公开可见过滤并带评论数
func (s *PostService) CategoryFeed(slug, rawPage string) (*models.Category, *Feed, error) {
	category, err := s.categoryRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, nil, err
	}
	if category == nil || !category.IsPublished {
		return nil, nil, ErrNotFound
	}
	feed, err := s.paginate(repository.PostQuery{
		WithRelations:    true,
		Visibility:       repository.VisibilityPublic,
		WithCommentCount: true,
		CategoryID:       category.ID,
	}, rawPage)
	if err != nil {
		return nil, nil, err
	}
	return category, feed, nil
}

// ProfileFeed 个人主页：本人可见全部历史，其他访问者仅见公开文章
func (s *PostService) ProfileFeed(username string, viewerID uint, rawPage string) (*models.User, *Feed, error) {
	profile, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, ErrNotFound
	}
	visibility := repository.VisibilityPublic
	if IsAuthor(profile.ID, viewerID) {
		visibility = repository.VisibilityAll
	}
	feed, err := s.paginate(repository.PostQuery{
		WithRelations: true,
		Visibility:    visibility,
		AuthorID:      profile.ID,
	}, rawPage)
	if err != nil {
		return nil, nil, err
	}
	return profile, feed, nil
}

// Detail 文章详情：作者可预览自己的任意文章，其余情况不可见一律视为不存在
func (s *PostService) Detail(id, viewerID uint) (*models.Post, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	post, err := s.postRepo.FindOne(repository.PostQuery{
		ID:            id,
		WithRelations: true,
		Visibility:    repository.VisibilityPublicOrAuthor,
		ViewerID:      viewerID,
		Now:           s.now(),
	})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// paginate 先统计总数再按解析后的页码取数据
func (s *PostService) paginate(q repository.PostQuery, rawPage string) (*Feed, error) {
	q.Now = s.now()
	total, err := s.postRepo.Count(q)
	if err != nil {
		return nil, err
	}
	page := ResolvePage(rawPage, total, PostsPerPage)
	q.Page, q.PageSize = page.Number, page.Size
	posts, err := s.postRepo.Find(q)
	if err != nil {
		return nil, err
	}
	return &Feed{Posts: posts, Page: page}, nil
}
