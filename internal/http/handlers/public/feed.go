package public

import (
	"net/http"

	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

type feedPageData struct {
	Posts    []models.Post
	Page     service.PageInfo
	Category *models.Category
	Profile  *models.User
}

// Index GET /
func (h *Handler) Index(c *gin.Context) {
	feed, err := h.PostService.GlobalFeed(c.Query("page"))
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	h.render(c, http.StatusOK, "index", "", feedPageData{Posts: feed.Posts, Page: feed.Page})
}

// CategoryPosts GET /category/:slug/
func (h *Handler) CategoryPosts(c *gin.Context) {
	category, feed, err := h.PostService.CategoryFeed(c.Param("slug"), c.Query("page"))
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	h.render(c, http.StatusOK, "category", category.Title, feedPageData{
		Posts:    feed.Posts,
		Page:     feed.Page,
		Category: category,
	})
}

// Profile GET /profile/:username/
func (h *Handler) Profile(c *gin.Context) {
	profile, feed, err := h.PostService.ProfileFeed(c.Param("username"), currentUserID(c), c.Query("page"))
	if err != nil {
		h.respondPageError(c, err)
		return
	}
	h.render(c, http.StatusOK, "profile", profile.Username, feedPageData{
		Posts:   feed.Posts,
		Page:    feed.Page,
		Profile: profile,
	})
}
