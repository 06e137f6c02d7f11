package admin

import (
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/repository"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 分类请求
type CategoryRequest struct {
	Title       string `json:"title" binding:"required,max=256"`
	Description string `json:"description" binding:"required"`
	Slug        string `json:"slug" binding:"max=64"`
	IsPublished *bool  `json:"is_published"`
}

// LocationRequest 地点请求
type LocationRequest struct {
	Name        string `json:"name" binding:"required,max=256"`
	IsPublished *bool  `json:"is_published"`
}

// PublishRequest 发布开关
type PublishRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

var slugExistsRule = mappedAdminError{target: service.ErrSlugExists, code: response.CodeBadRequest, key: "error.slug_exists"}

// 未显式传入时默认发布
func publishedOrDefault(value *bool) bool {
	if value == nil {
		return true
	}
	return *value
}

// GetAdminCategories 获取分类列表 (Admin)
func (h *Handler) GetAdminCategories(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	categories, total, err := h.CategoryService.List(repository.CategoryListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, categories, response.NewPagination(page, pageSize, total))
}

// GetAdminCategory 获取分类详情 (Admin)
func (h *Handler) GetAdminCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	category, err := h.CategoryService.Get(id)
	if err != nil {
		h.respondServiceError(c, err, "error.fetch_failed", notFoundRule("error.category_not_found"))
		return
	}
	response.Success(c, category)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	category, err := h.CategoryService.Create(service.CategoryInput{
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		IsPublished: publishedOrDefault(req.IsPublished),
	})
	if err != nil {
		h.respondServiceError(c, err, "error.save_failed", slugExistsRule)
		return
	}
	logger.Infow("admin_category_created", "admin_id", currentAdminID(c), "category_id", category.ID, "slug", category.Slug)
	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	category, err := h.CategoryService.Update(id, service.CategoryInput{
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		IsPublished: publishedOrDefault(req.IsPublished),
	})
	if err != nil {
		h.respondServiceError(c, err, "error.save_failed", notFoundRule("error.category_not_found"), slugExistsRule)
		return
	}
	response.Success(c, category)
}

// PublishCategory 切换分类发布状态
func (h *Handler) PublishCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PublishRequest
	if !h.bindJSON(c, &req) {
		return
	}
	category, err := h.CategoryService.SetPublished(id, *req.IsPublished)
	if err != nil {
		h.respondServiceError(c, err, "error.save_failed", notFoundRule("error.category_not_found"))
		return
	}
	logger.Infow("admin_category_publish_changed", "admin_id", currentAdminID(c), "category_id", id, "is_published", category.IsPublished)
	response.Success(c, category)
}

// DeleteCategory 删除分类，其下文章保留
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		h.respondServiceError(c, err, "error.delete_failed", notFoundRule("error.category_not_found"))
		return
	}
	logger.Infow("admin_category_deleted", "admin_id", currentAdminID(c), "category_id", id)
	response.Success(c, nil)
}

// GetAdminLocations 获取地点列表 (Admin)
func (h *Handler) GetAdminLocations(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	locations, total, err := h.LocationService.List(repository.LocationListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, locations, response.NewPagination(page, pageSize, total))
}

// GetAdminLocation 获取地点详情 (Admin)
func (h *Handler) GetAdminLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	location, err := h.LocationService.Get(id)
	if err != nil {
		h.respondServiceError(c, err, "error.fetch_failed", notFoundRule("error.location_not_found"))
		return
	}
	response.Success(c, location)
}

// CreateLocation 创建地点
func (h *Handler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	location, err := h.LocationService.Create(service.LocationInput{
		Name:        req.Name,
		IsPublished: publishedOrDefault(req.IsPublished),
	})
	if err != nil {
		h.respondServiceError(c, err, "error.save_failed")
		return
	}
	logger.Infow("admin_location_created", "admin_id", currentAdminID(c), "location_id", location.ID)
	response.Success(c, location)
}

// UpdateLocation 更新地点
func (h *Handler) UpdateLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req LocationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	location, err := h.LocationService.Update(id, service.LocationInput{
		Name:        req.Name,
		IsPublished: publishedOrDefault(req.IsPublished),
	})
	if err != nil {
		h.respondServiceError(c, err, "error.save_failed", notFoundRule("error.location_not_found"))
		return
	}
	response.Success(c, location)
}

// PublishLocation 切换地点发布状态
func (h *Handler) PublishLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PublishRequest
	if !h.bindJSON(c, &req) {
		return
	}
	location, err := h.LocationService.SetPublished(id, *req.IsPublished)
	if err != nil {
		h.respondServiceError(c, err, "error.save_failed", notFoundRule("error.location_not_found"))
		return
	}
	response.Success(c, location)
}

// DeleteLocation 删除地点，文章的地点置空
func (h *Handler) DeleteLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.LocationService.Delete(id); err != nil {
		h.respondServiceError(c, err, "error.delete_failed", notFoundRule("error.location_not_found"))
		return
	}
	logger.Infow("admin_location_deleted", "admin_id", currentAdminID(c), "location_id", id)
	response.Success(c, nil)
}
