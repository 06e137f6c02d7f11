package service

import (
	"testing"
	"time"

	"github.com/blogicum-next/internal/models"
)

func TestVisibilityPredicate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	published := &models.Category{IsPublished: true}
	hidden := &models.Category{IsPublished: false}

	cases := []struct {
		name     string
		post     *models.Post
		viewerID uint
		public   bool
		visible  bool
	}{
		{name: "visible", post: &models.Post{AuthorID: 1, IsPublished: true, Category: published, PubDate: now.Add(-time.Minute)}, viewerID: 2, public: true, visible: true},
		{name: "exactly now", post: &models.Post{AuthorID: 1, IsPublished: true, Category: published, PubDate: now}, viewerID: 2, public: true, visible: true},
		{name: "future to stranger", post: &models.Post{AuthorID: 1, IsPublished: true, Category: published, PubDate: now.Add(time.Hour)}, viewerID: 2},
		{name: "future to author", post: &models.Post{AuthorID: 1, IsPublished: true, Category: published, PubDate: now.Add(time.Hour)}, viewerID: 1, visible: true},
		{name: "unpublished", post: &models.Post{AuthorID: 1, IsPublished: false, Category: published, PubDate: now}, viewerID: 2},
		{name: "hidden category", post: &models.Post{AuthorID: 1, IsPublished: true, Category: hidden, PubDate: now}, viewerID: 2},
		{name: "no category", post: &models.Post{AuthorID: 1, IsPublished: true, PubDate: now}, viewerID: 2},
		{name: "anonymous never author", post: &models.Post{AuthorID: 0, IsPublished: false}, viewerID: 0},
		{name: "nil post", post: nil, viewerID: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPubliclyVisible(tc.post, now); got != tc.public {
				t.Fatalf("IsPubliclyVisible=%v want %v", got, tc.public)
			}
			if got := IsVisibleTo(tc.post, tc.viewerID, now); got != tc.visible {
				t.Fatalf("IsVisibleTo=%v want %v", got, tc.visible)
			}
		})
	}
}
