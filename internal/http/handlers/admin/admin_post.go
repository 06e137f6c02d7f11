package admin

import (
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAdminPosts 获取文章列表 (Admin)，不做可见性过滤
func (h *Handler) GetAdminPosts(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	posts, total, err := h.PostService.AdminList(
		c.Query("search"),
		parseUintQuery(c, "author_id"),
		parseUintQuery(c, "category_id"),
		page,
		pageSize,
	)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, posts, response.NewPagination(page, pageSize, total))
}

// GetAdminPost 文章详情，附带评论
func (h *Handler) GetAdminPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	post, comments, err := h.PostService.AdminGet(id)
	if err != nil {
		h.respondServiceError(c, err, "error.fetch_failed", notFoundRule("error.post_not_found"))
		return
	}
	response.Success(c, gin.H{"post": post, "comments": comments})
}

// PublishPost 切换文章发布状态
func (h *Handler) PublishPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PublishRequest
	if !h.bindJSON(c, &req) {
		return
	}
	post, err := h.PostService.SetPublished(id, *req.IsPublished)
	if err != nil {
		h.respondServiceError(c, err, "error.save_failed", notFoundRule("error.post_not_found"))
		return
	}
	logger.Infow("admin_post_publish_changed", "admin_id", currentAdminID(c), "post_id", id, "is_published", post.IsPublished)
	response.Success(c, post)
}

// DeletePost 删除文章及其评论
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.PostService.AdminDelete(id); err != nil {
		h.respondServiceError(c, err, "error.delete_failed", notFoundRule("error.post_not_found"))
		return
	}
	response.Success(c, nil)
}

// GetAdminComments 评论列表，可按文章或作者过滤
func (h *Handler) GetAdminComments(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	comments, total, err := h.CommentService.AdminList(repository.CommentListFilter{
		Page:     page,
		PageSize: pageSize,
		PostID:   parseUintQuery(c, "post_id"),
		AuthorID: parseUintQuery(c, "author_id"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, comments, response.NewPagination(page, pageSize, total))
}

// DeleteComment 删除评论
func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CommentService.AdminDelete(id); err != nil {
		h.respondServiceError(c, err, "error.delete_failed", notFoundRule("error.comment_not_found"))
		return
	}
	logger.Infow("admin_comment_deleted", "admin_id", currentAdminID(c), "comment_id", id)
	response.Success(c, nil)
}
