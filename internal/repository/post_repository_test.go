package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/blogicum-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBlogRepositoryTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

type blogFixture struct {
	author    models.User
	reader    models.User
	published models.Category
	hidden    models.Category
}

func seedBlogFixture(t *testing.T, db *gorm.DB) blogFixture {
	t.Helper()
	f := blogFixture{
		author:    models.User{Username: "author", PasswordHash: "x", IsActive: true},
		reader:    models.User{Username: "reader", PasswordHash: "x", IsActive: true},
		published: models.Category{Title: "Travel", Description: "d", Slug: "travel", IsPublished: true},
		hidden:    models.Category{Title: "Drafts", Description: "d", Slug: "drafts", IsPublished: false},
	}
	for _, v := range []interface{}{&f.author, &f.reader, &f.published, &f.hidden} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	return f
}

func createTestPost(t *testing.T, repo *GormPostRepository, title string, authorID uint, categoryID *uint, published bool, pubDate time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       title,
		Text:        "body of " + title,
		PubDate:     pubDate.UTC(),
		AuthorID:    authorID,
		CategoryID:  categoryID,
		IsPublished: published,
	}
	if err := repo.Create(post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

func postTitles(posts []models.Post) []string {
	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	return titles
}

func TestPostRepositoryVisibilityModes(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	f := seedBlogFixture(t, db)
	repo := NewPostRepository(db)
	now := time.Now().UTC()

	createTestPost(t, repo, "visible", f.author.ID, &f.published.ID, true, now.Add(-2*time.Hour))
	createTestPost(t, repo, "future", f.author.ID, &f.published.ID, true, now.Add(24*time.Hour))
	createTestPost(t, repo, "unpublished", f.author.ID, &f.published.ID, false, now.Add(-3*time.Hour))
	createTestPost(t, repo, "hidden-category", f.author.ID, &f.hidden.ID, true, now.Add(-4*time.Hour))
	createTestPost(t, repo, "no-category", f.author.ID, nil, true, now.Add(-5*time.Hour))
	createTestPost(t, repo, "reader-visible", f.reader.ID, &f.published.ID, true, now.Add(-1*time.Hour))

	cases := []struct {
		name  string
		query PostQuery
		want  []string
	}{
		{
			name:  "public",
			query: PostQuery{Visibility: VisibilityPublic, Now: now},
			want:  []string{"reader-visible", "visible"},
		},
		{
			name:  "public or author",
			query: PostQuery{Visibility: VisibilityPublicOrAuthor, ViewerID: f.author.ID, Now: now},
			want:  []string{"future", "reader-visible", "visible", "unpublished", "hidden-category", "no-category"},
		},
		{
			name:  "public or anonymous viewer",
			query: PostQuery{Visibility: VisibilityPublicOrAuthor, Now: now},
			want:  []string{"reader-visible", "visible"},
		},
		{
			name:  "all scoped to author",
			query: PostQuery{Visibility: VisibilityAll, AuthorID: f.author.ID},
			want:  []string{"future", "visible", "unpublished", "hidden-category", "no-category"},
		},
		{
			name:  "public scoped to category",
			query: PostQuery{Visibility: VisibilityPublic, CategoryID: f.hidden.ID, Now: now},
			want:  []string{},
		},
		{
			name:  "search",
			query: PostQuery{Visibility: VisibilityAll, Search: "CATEGORY"},
			want:  []string{"hidden-category", "no-category"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			posts, err := repo.Find(tc.query)
			if err != nil {
				t.Fatalf("find failed: %v", err)
			}
			got := postTitles(posts)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Fatalf("unexpected posts: got=%v want=%v", got, tc.want)
			}
			total, err := repo.Count(tc.query)
			if err != nil {
				t.Fatalf("count failed: %v", err)
			}
			if total != int64(len(tc.want)) {
				t.Fatalf("count mismatch: got=%d want=%d", total, len(tc.want))
			}
		})
	}
}

func TestPostRepositoryFutureBecomesVisibleWhenTimeElapses(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	f := seedBlogFixture(t, db)
	repo := NewPostRepository(db)
	now := time.Now().UTC()
	post := createTestPost(t, repo, "scheduled", f.author.ID, &f.published.ID, true, now.Add(time.Hour))

	got, err := repo.FindOne(PostQuery{ID: post.ID, Visibility: VisibilityPublic, Now: now})
	if err != nil || got != nil {
		t.Fatalf("expected scheduled post hidden, got=%v err=%v", got, err)
	}
	got, err = repo.FindOne(PostQuery{ID: post.ID, Visibility: VisibilityPublic, Now: now.Add(2 * time.Hour)})
	if err != nil || got == nil {
		t.Fatalf("expected scheduled post visible later, got=%v err=%v", got, err)
	}
}

func TestPostRepositoryCommentCountAndRelations(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	f := seedBlogFixture(t, db)
	repo := NewPostRepository(db)
	now := time.Now().UTC()
	busy := createTestPost(t, repo, "busy", f.author.ID, &f.published.ID, true, now.Add(-time.Hour))
	createTestPost(t, repo, "quiet", f.author.ID, &f.published.ID, true, now.Add(-2*time.Hour))

	comments := NewCommentRepository(db)
	for i := 0; i < 3; i++ {
		if err := comments.Create(&models.Comment{Text: "c", PostID: busy.ID, AuthorID: f.reader.ID}); err != nil {
			t.Fatalf("create comment failed: %v", err)
		}
	}

	posts, err := repo.Find(PostQuery{Visibility: VisibilityPublic, WithCommentCount: true, WithRelations: true, Now: now})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Title != "busy" || posts[0].CommentCount != 3 || posts[1].CommentCount != 0 {
		t.Fatalf("unexpected comment counts: %+v", posts)
	}
	if posts[0].Author == nil || posts[0].Author.Username != "author" {
		t.Fatalf("expected author preloaded")
	}
	if posts[0].Category == nil || posts[0].Category.Slug != "travel" {
		t.Fatalf("expected category preloaded")
	}
	if posts[0].Location != nil {
		t.Fatalf("expected nil location")
	}

	plain, err := repo.Find(PostQuery{Visibility: VisibilityPublic, Now: now})
	if err != nil {
		t.Fatalf("find plain failed: %v", err)
	}
	if plain[0].CommentCount != 0 || plain[0].Author != nil {
		t.Fatalf("plain query should not annotate or preload")
	}
}

func TestPostRepositoryPaginationAndOrdering(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	f := seedBlogFixture(t, db)
	repo := NewPostRepository(db)
	base := time.Now().UTC().Add(-48 * time.Hour)
	for i := 0; i < 12; i++ {
		createTestPost(t, repo, fmt.Sprintf("p%02d", i), f.author.ID, &f.published.ID, true, base.Add(time.Duration(i)*time.Minute))
	}

	page2, err := repo.Find(PostQuery{Visibility: VisibilityAll, Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got := strings.Join(postTitles(page2), ","); got != "p01,p00" {
		t.Fatalf("unexpected second page: %s", got)
	}

	all, err := repo.Find(PostQuery{Visibility: VisibilityAll})
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	for i := 1; i < len(all); i++ {
		if all[i].PubDate.After(all[i-1].PubDate) {
			t.Fatalf("feed not ordered by pub_date desc at %d", i)
		}
	}
}

func TestPostRepositoryDeleteCascadesComments(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	f := seedBlogFixture(t, db)
	repo := NewPostRepository(db)
	post := createTestPost(t, repo, "doomed", f.author.ID, &f.published.ID, true, time.Now().Add(-time.Hour))
	comments := NewCommentRepository(db)
	if err := comments.Create(&models.Comment{Text: "bye", PostID: post.ID, AuthorID: f.reader.ID}); err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("count comments failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected comments removed, got %d", count)
	}
	got, err := repo.GetByID(post.ID)
	if err != nil || got != nil {
		t.Fatalf("expected post removed, got=%v err=%v", got, err)
	}
}

func TestCategoryDeleteNullsPostCategory(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	f := seedBlogFixture(t, db)
	repo := NewPostRepository(db)
	post := createTestPost(t, repo, "orphan", f.author.ID, &f.published.ID, true, time.Now().Add(-time.Hour))

	if err := NewCategoryRepository(db).Delete(f.published.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	got, err := repo.GetByID(post.ID)
	if err != nil || got == nil {
		t.Fatalf("post should survive category delete: %v", err)
	}
	if got.CategoryID != nil {
		t.Fatalf("expected category nulled, got %v", *got.CategoryID)
	}
}

func TestUserDeleteCascadesPostsAndComments(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	f := seedBlogFixture(t, db)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	own := createTestPost(t, posts, "own", f.author.ID, &f.published.ID, true, time.Now().Add(-time.Hour))
	other := createTestPost(t, posts, "other", f.reader.ID, &f.published.ID, true, time.Now().Add(-time.Hour))
	if err := comments.Create(&models.Comment{Text: "on own", PostID: own.ID, AuthorID: f.reader.ID}); err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if err := comments.Create(&models.Comment{Text: "by author", PostID: other.ID, AuthorID: f.author.ID}); err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	if err := NewUserRepository(db).Delete(f.author.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}
	remaining, err := posts.Find(PostQuery{Visibility: VisibilityAll})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got := strings.Join(postTitles(remaining), ","); got != "other" {
		t.Fatalf("unexpected remaining posts: %s", got)
	}
	var commentCount int64
	if err := db.Model(&models.Comment{}).Count(&commentCount).Error; err != nil {
		t.Fatalf("count comments failed: %v", err)
	}
	if commentCount != 0 {
		t.Fatalf("expected all related comments removed, got %d", commentCount)
	}
}

func TestCommentUpdateTextKeepsCreatedAt(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	f := seedBlogFixture(t, db)
	post := createTestPost(t, NewPostRepository(db), "p", f.author.ID, &f.published.ID, true, time.Now().Add(-time.Hour))
	repo := NewCommentRepository(db)
	comment := &models.Comment{Text: "first", PostID: post.ID, AuthorID: f.reader.ID}
	if err := repo.Create(comment); err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	before, err := repo.GetByID(comment.ID)
	if err != nil || before == nil {
		t.Fatalf("get comment failed: %v", err)
	}

	if err := repo.UpdateText(comment.ID, "edited"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	after, err := repo.GetByID(comment.ID)
	if err != nil || after == nil {
		t.Fatalf("get comment failed: %v", err)
	}
	if after.Text != "edited" {
		t.Fatalf("text not updated: %s", after.Text)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("created_at changed: %v -> %v", before.CreatedAt, after.CreatedAt)
	}
	if after.Author == nil || after.Author.ID != f.reader.ID {
		t.Fatalf("expected author preloaded")
	}
}
