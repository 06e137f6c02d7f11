package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/provider"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type blogSite struct {
	engine    *gin.Engine
	db        *gorm.DB
	container *provider.Container
	category  *models.Category
}

func newBlogSite(t *testing.T) *blogSite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{
		JWT:     config.JWTConfig{SecretKey: "router-test-admin-secret-0123456789", ExpireHours: 1},
		UserJWT: config.JWTConfig{SecretKey: "router-test-user-secret-01234567890", ExpireHours: 1},
		Upload: config.UploadConfig{
			Dir:               t.TempDir(),
			URLPrefix:         "/media",
			MaxSize:           1 << 20,
			AllowedTypes:      []string{"image/png"},
			AllowedExtensions: []string{".png"},
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8, RequireNumber: true},
		},
		Blog: config.BlogConfig{SiteName: "Blogicum", TimeZone: "UTC", SessionCookie: "blogicum_session"},
	}
	container, err := provider.Build(cfg, db)
	if err != nil {
		t.Fatalf("build container failed: %v", err)
	}
	category := &models.Category{Title: "Travel", Description: "Roads", Slug: "travel", IsPublished: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return &blogSite{engine: SetupRouter(cfg, container), db: db, container: container, category: category}
}

func (s *blogSite) mustUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	user, err := s.container.UserAuthService.Register(serviceRegisterInput(username, password))
	if err != nil {
		t.Fatalf("register %s failed: %v", username, err)
	}
	return user
}

func (s *blogSite) sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	token, _, err := s.container.UserAuthService.GenerateUserJWT(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	return &http.Cookie{Name: "blogicum_session", Value: token}
}

func (s *blogSite) mustPost(t *testing.T, title string, author *models.User, published bool, pubDate time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       title,
		Text:        "body",
		PubDate:     pubDate.UTC(),
		AuthorID:    author.ID,
		CategoryID:  &s.category.ID,
		IsPublished: published,
	}
	if err := s.db.Create(post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

func (s *blogSite) do(method, target string, body url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *blogSite) doMultipart(t *testing.T, target string, fields url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				t.Fatalf("write field failed: %v", err)
			}
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func serviceRegisterInput(username, password string) service.RegisterInput {
	return service.RegisterInput{Username: username, Password: password, PasswordConfirm: password}
}

func TestIndexHidesFutureAndUnpublishedPosts(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")
	now := time.Now()
	site.mustPost(t, "Visible story", author, true, now.Add(-time.Hour))
	site.mustPost(t, "Scheduled story", author, true, now.Add(time.Hour))
	site.mustPost(t, "Draft story", author, false, now.Add(-time.Hour))

	w := site.do(http.MethodGet, "/", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("index want 200 got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Visible story") {
		t.Fatalf("visible post missing from index")
	}
	if strings.Contains(body, "Scheduled story") || strings.Contains(body, "Draft story") {
		t.Fatalf("hidden posts leaked into index")
	}
}

func TestIndexOutOfRangePageStillRenders(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")
	site.mustPost(t, "Only story", author, true, time.Now().Add(-time.Hour))

	for _, page := range []string{"999", "abc", "-1"} {
		w := site.do(http.MethodGet, "/?page="+page, nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("page=%s want 200 got %d", page, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Only story") {
			t.Fatalf("page=%s should clamp to an existing page", page)
		}
	}
}

func TestPostDetailVisibility(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")
	reader := site.mustUser(t, "anna", "secret123")
	scheduled := site.mustPost(t, "Scheduled story", author, true, time.Now().Add(time.Hour))
	target := fmt.Sprintf("/posts/%d/", scheduled.ID)

	if w := site.do(http.MethodGet, target, nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("anonymous want 404 got %d", w.Code)
	}
	if w := site.do(http.MethodGet, target, nil, site.sessionCookie(t, reader)); w.Code != http.StatusNotFound {
		t.Fatalf("other user want 404 got %d", w.Code)
	}
	w := site.do(http.MethodGet, target, nil, site.sessionCookie(t, author))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Scheduled story") {
		t.Fatalf("author should see own scheduled post, got %d", w.Code)
	}
}

func TestCreatePostRequiresLogin(t *testing.T) {
	site := newBlogSite(t)

	w := site.do(http.MethodGet, "/posts/create/", nil, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("want 302 got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/auth/login/?next=%2Fposts%2Fcreate%2F" {
		t.Fatalf("unexpected redirect: %s", got)
	}
}

func TestCreatePostRedirectsToProfile(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")

	form := url.Values{
		"title":        {"Fresh story"},
		"text":         {"Hello **world**"},
		"pub_date":     {time.Now().UTC().Add(-time.Minute).Format("2006-01-02T15:04")},
		"category":     {fmt.Sprint(site.category.ID)},
		"is_published": {"on"},
	}
	w := site.doMultipart(t, "/posts/create/", form, site.sessionCookie(t, author))
	if w.Code != http.StatusFound {
		t.Fatalf("want 302 got %d body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != "/profile/leo/" {
		t.Fatalf("unexpected redirect: %s", got)
	}
	var count int64
	site.db.Model(&models.Post{}).Where("author_id = ?", author.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected one post, got %d", count)
	}
}

func TestCreatePostValidationRerendersForm(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")

	w := site.doMultipart(t, "/posts/create/", url.Values{"title": {""}, "text": {""}}, site.sessionCookie(t, author))
	if w.Code != http.StatusOK {
		t.Fatalf("invalid form want 200 got %d", w.Code)
	}
	var count int64
	site.db.Model(&models.Post{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid form should not create post")
	}
}

func TestEditPostByOtherUserRedirectsToDetail(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")
	other := site.mustUser(t, "anna", "secret123")
	post := site.mustPost(t, "Story", author, true, time.Now().Add(-time.Hour))

	w := site.do(http.MethodGet, fmt.Sprintf("/posts/%d/edit/", post.ID), nil, site.sessionCookie(t, other))
	if w.Code != http.StatusFound {
		t.Fatalf("want 302 got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != fmt.Sprintf("/posts/%d/", post.ID) {
		t.Fatalf("unexpected redirect: %s", got)
	}
}

func TestDeletePostByOtherUserIsForbidden(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")
	other := site.mustUser(t, "anna", "secret123")
	post := site.mustPost(t, "Story", author, true, time.Now().Add(-time.Hour))

	w := site.do(http.MethodPost, fmt.Sprintf("/posts/%d/delete/", post.ID), url.Values{}, site.sessionCookie(t, other))
	if w.Code != http.StatusForbidden {
		t.Fatalf("want 403 got %d", w.Code)
	}
	var count int64
	site.db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count)
	if count != 1 {
		t.Fatalf("post should survive forbidden delete")
	}
}

func TestCommentFlow(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")
	reader := site.mustUser(t, "anna", "secret123")
	post := site.mustPost(t, "Story", author, true, time.Now().Add(-time.Hour))
	cookie := site.sessionCookie(t, reader)

	w := site.do(http.MethodPost, fmt.Sprintf("/posts/%d/comment/", post.ID), url.Values{"text": {"Nice one"}}, cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("add comment want 302 got %d", w.Code)
	}
	var comment models.Comment
	if err := site.db.Where("post_id = ?", post.ID).First(&comment).Error; err != nil {
		t.Fatalf("comment not stored: %v", err)
	}

	// 非作者编辑评论
	w = site.do(http.MethodPost, fmt.Sprintf("/posts/%d/edit_comment/%d", post.ID, comment.ID), url.Values{"text": {"hijack"}}, site.sessionCookie(t, author))
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign comment edit want 403 got %d", w.Code)
	}

	w = site.do(http.MethodPost, fmt.Sprintf("/posts/%d/delete_comment/%d", post.ID, comment.ID), url.Values{}, cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("delete comment want 302 got %d", w.Code)
	}
	var count int64
	site.db.Model(&models.Comment{}).Count(&count)
	if count != 0 {
		t.Fatalf("comment should be deleted")
	}
}

func TestProfileShowsHiddenPostsOnlyToOwner(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")
	reader := site.mustUser(t, "anna", "secret123")
	site.mustPost(t, "Public story", author, true, time.Now().Add(-time.Hour))
	site.mustPost(t, "Draft story", author, false, time.Now().Add(-time.Hour))
	site.mustPost(t, "Scheduled story", author, true, time.Now().Add(time.Hour))

	for _, cookie := range []*http.Cookie{nil, site.sessionCookie(t, reader)} {
		w := site.do(http.MethodGet, "/profile/leo/", nil, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("profile want 200 got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Public story") {
			t.Fatalf("other viewers should see public post")
		}
		if strings.Contains(body, "Draft story") || strings.Contains(body, "Scheduled story") {
			t.Fatalf("other viewers should not see hidden posts")
		}
	}
	w := site.do(http.MethodGet, "/profile/leo/", nil, site.sessionCookie(t, author))
	body := w.Body.String()
	if w.Code != http.StatusOK || !strings.Contains(body, "Draft story") || !strings.Contains(body, "Scheduled story") {
		t.Fatalf("owner should see own hidden posts, got %d", w.Code)
	}
	if w := site.do(http.MethodGet, "/profile/nobody/", nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown profile want 404 got %d", w.Code)
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	site := newBlogSite(t)
	site.mustUser(t, "leo", "secret123")

	w := site.do(http.MethodPost, "/auth/login/", url.Values{"username": {"leo"}, "password": {"secret123"}, "next": {"/posts/create/"}}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("login want 302 got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/posts/create/" {
		t.Fatalf("login should honor next, got %s", got)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "blogicum_session=") {
		t.Fatalf("session cookie missing: %s", w.Header().Get("Set-Cookie"))
	}

	w = site.do(http.MethodPost, "/auth/login/", url.Values{"username": {"leo"}, "password": {"wrong-pass1"}}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("bad credentials want 200 form got %d", w.Code)
	}
	if strings.Contains(w.Header().Get("Set-Cookie"), "blogicum_session=ey") {
		t.Fatalf("failed login must not set session")
	}
}

func TestRegistrationCreatesUser(t *testing.T) {
	site := newBlogSite(t)

	w := site.do(http.MethodPost, "/auth/registration/", url.Values{
		"username":         {"newbie"},
		"password":         {"secret123"},
		"password_confirm": {"secret123"},
	}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("registration want 302 got %d body=%s", w.Code, w.Body.String())
	}
	var count int64
	site.db.Model(&models.User{}).Where("username = ?", "newbie").Count(&count)
	if count != 1 {
		t.Fatalf("user should be created")
	}

	w = site.do(http.MethodPost, "/auth/registration/", url.Values{
		"username":         {"newbie"},
		"password":         {"secret123"},
		"password_confirm": {"secret123"},
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("duplicate username want 200 form got %d", w.Code)
	}
}

func TestUnknownRoutes(t *testing.T) {
	site := newBlogSite(t)

	if w := site.do(http.MethodGet, "/no/such/page/", nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("page 404 want 404 got %d", w.Code)
	}
	w := site.do(http.MethodGet, "/api/v1/admin/nothing", nil, nil)
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("api 404 should be json: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("api status_code want 404 got %d", resp.StatusCode)
	}
}

func TestAdminCategoryCreateAndRBAC(t *testing.T) {
	site := newBlogSite(t)
	super := &models.Admin{Username: "root", PasswordHash: "x", IsSuper: true}
	plain := &models.Admin{Username: "guest", PasswordHash: "x"}
	if err := site.db.Create(super).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if err := site.db.Create(plain).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	call := func(admin *models.Admin, payload interface{}) map[string]interface{} {
		t.Helper()
		token, _, err := site.container.AuthService.GenerateJWT(admin)
		if err != nil {
			t.Fatalf("generate admin token failed: %v", err)
		}
		raw, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/categories", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		site.engine.ServeHTTP(w, req)
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v body=%s", err, w.Body.String())
		}
		return resp
	}

	resp := call(super, gin.H{"title": "Travel Notes", "description": "Roads"})
	if resp["status_code"].(float64) != 0 {
		t.Fatalf("super admin create failed: %v", resp)
	}
	data := resp["data"].(map[string]interface{})
	if data["slug"] != "travel-notes" {
		t.Fatalf("slug should be derived from title, got %v", data["slug"])
	}
	if data["is_published"] != true {
		t.Fatalf("category should default to published")
	}

	resp = call(plain, gin.H{"title": "Other", "description": "x"})
	if resp["status_code"].(float64) != 403 {
		t.Fatalf("admin without role want 403 got %v", resp["status_code"])
	}
}

func TestCategoryPageVisibility(t *testing.T) {
	site := newBlogSite(t)
	author := site.mustUser(t, "leo", "secret123")
	site.mustPost(t, "Road trip", author, true, time.Now().Add(-time.Hour))
	hidden := &models.Category{Title: "Hidden", Description: "x", Slug: "hidden", IsPublished: true}
	if err := site.db.Create(hidden).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := site.db.Model(hidden).Update("is_published", false).Error; err != nil {
		t.Fatalf("unpublish category failed: %v", err)
	}

	w := site.do(http.MethodGet, "/category/travel/", nil, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Road trip") {
		t.Fatalf("published category should list its posts, got %d", w.Code)
	}
	if w := site.do(http.MethodGet, "/category/hidden/", nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("unpublished category want 404 got %d", w.Code)
	}
	if w := site.do(http.MethodGet, "/category/missing/", nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown category want 404 got %d", w.Code)
	}
}
