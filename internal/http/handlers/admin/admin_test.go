package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/provider"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	StatusCode int                    `json:"status_code"`
	Msg        string                 `json:"msg"`
	Data       map[string]interface{} `json:"data"`
}

func serveAdmin(t *testing.T, handler gin.HandlerFunc, target string) envelope {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/items/:id", handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v body=%s", err, w.Body.String())
	}
	return resp
}

func newTestHandler() *Handler {
	return New(&provider.Container{Config: &config.Config{}})
}

func TestRespondServiceErrorMapping(t *testing.T) {
	h := newTestHandler()

	resp := serveAdmin(t, func(c *gin.Context) {
		h.respondServiceError(c, service.ErrNotFound, "error.category_update_failed", notFoundRule("error.category_not_found"))
	}, "/items/1")
	if resp.StatusCode != response.CodeNotFound {
		t.Fatalf("not found rule want 404 got %d", resp.StatusCode)
	}

	resp = serveAdmin(t, func(c *gin.Context) {
		verr := service.NewValidationError("slug", "form.slug_exists")
		h.respondServiceError(c, verr, "error.category_update_failed")
	}, "/items/1")
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("validation want 400 got %d", resp.StatusCode)
	}
	if _, ok := resp.Data["fields"].(map[string]interface{})["slug"]; !ok {
		t.Fatalf("validation response should carry slug field: %v", resp.Data)
	}

	resp = serveAdmin(t, func(c *gin.Context) {
		h.respondServiceError(c, service.ErrForbidden, "error.category_update_failed", notFoundRule("error.category_not_found"))
	}, "/items/1")
	if resp.StatusCode != response.CodeInternal {
		t.Fatalf("unmatched error want 500 got %d", resp.StatusCode)
	}
}

func TestParseIDParamRejectsInvalid(t *testing.T) {
	var parsed uint
	resp := serveAdmin(t, func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if ok {
			parsed = id
			response.Success(c, gin.H{"id": id})
		}
	}, "/items/abc")
	if resp.StatusCode != response.CodeBadRequest || parsed != 0 {
		t.Fatalf("invalid id want 400 got %d", resp.StatusCode)
	}

	resp = serveAdmin(t, func(c *gin.Context) {
		if id, ok := parseIDParam(c); ok {
			parsed = id
			response.Success(c, gin.H{"id": id})
		}
	}, "/items/42")
	if resp.StatusCode != response.CodeOK || parsed != 42 {
		t.Fatalf("valid id want 42 got %d", parsed)
	}
}

func TestPublishedOrDefault(t *testing.T) {
	if !publishedOrDefault(nil) {
		t.Fatalf("missing flag should default to published")
	}
	off := false
	if publishedOrDefault(&off) {
		t.Fatalf("explicit false should be kept")
	}
}
