package view

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blogicum-next/internal/i18n"
	"github.com/blogicum-next/internal/models"

	"github.com/gin-gonic/gin/render"
)

func TestRendererParsesAllPages(t *testing.T) {
	r, err := NewRenderer(time.UTC)
	if err != nil {
		t.Fatalf("new renderer failed: %v", err)
	}
	for _, name := range []string{"index", "category", "profile", "detail", "post_form", "comment_form", "profile_edit", "auth_form", "static_page", "error"} {
		if !r.Has(name) {
			t.Fatalf("missing page template %s", name)
		}
	}
	if _, ok := r.Instance("missing", nil).(render.Data); !ok {
		t.Fatalf("unknown template should fall back to plain text")
	}
}

func TestRendererRendersErrorPage(t *testing.T) {
	r, err := NewRenderer(time.UTC)
	if err != nil {
		t.Fatalf("new renderer failed: %v", err)
	}
	page := &Page{
		Locale:      i18n.LocaleEN,
		Locales:     i18n.SupportedLocales(),
		SiteName:    "Blogicum",
		Title:       "Not found",
		CurrentUser: &models.User{ID: 3, Username: "alice"},
		RequestID:   "req-1",
		Data:        map[string]interface{}{"Status": 404, "MessageKey": "error.not_found"},
	}
	w := httptest.NewRecorder()
	if err := r.Instance("error", page).Render(w); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	body := w.Body.String()
	for _, want := range []string{"<title>Not found | Blogicum</title>", "404", "req-1", "/profile/alice/", i18n.T(i18n.LocaleEN, "error.not_found")} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestMarkdownSanitizes(t *testing.T) {
	out := string(Markdown("**bold** <script>alert(1)</script>\n\n[x](javascript:alert(1))"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("markdown not rendered: %s", out)
	}
	if strings.Contains(out, "<script>") || strings.Contains(out, "javascript:") {
		t.Fatalf("markdown not sanitized: %s", out)
	}
	if Markdown("  ") != "" {
		t.Fatalf("blank markdown should render empty")
	}
}

func TestLinebreaksEscapes(t *testing.T) {
	got := string(Linebreaks("a <b>\r\nc"))
	if got != "a &lt;b&gt;<br>\nc" {
		t.Fatalf("unexpected linebreaks output: %q", got)
	}
}

func TestFormHelpers(t *testing.T) {
	form := NewForm().Set("category", "7").Set("is_published", "on")
	form.AddError("title", "first")
	form.AddError("title", "second")
	if form.Error("title") != "first" || !form.HasErrors() {
		t.Fatalf("unexpected errors: %+v", form.Errors)
	}
	if !form.Selected("category", 7) || form.Selected("category", 8) || !form.Checked("is_published") {
		t.Fatalf("unexpected selection helpers")
	}
	var nilForm *Form
	if nilForm.Get("x") != "" || nilForm.HasErrors() {
		t.Fatalf("nil form should be empty")
	}
}
