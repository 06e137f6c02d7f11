package service

import (
	"time"

	"github.com/blogicum-next/internal/models"
)

// IsPubliclyVisible 文章对所有人可见：已发布、分类存在且已发布、发布时间已到
func IsPubliclyVisible(post *models.Post, now time.Time) bool {
	if post == nil || !post.IsPublished {
		return false
	}
	if post.Category == nil || !post.Category.IsPublished {
		return false
	}
	return !post.PubDate.After(now)
}

// IsVisibleTo 在公开可见的基础上放宽给作者本人，viewerID 为 0 表示匿名
func IsVisibleTo(post *models.Post, viewerID uint, now time.Time) bool {
	if post == nil {
		return false
	}
	if IsPubliclyVisible(post, now) {
		return true
	}
	return IsAuthor(post.AuthorID, viewerID)
}

// IsAuthor 作者校验，匿名用户永远不是作者
func IsAuthor(authorID, userID uint) bool {
	return userID != 0 && authorID == userID
}
