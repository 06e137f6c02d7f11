package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalizeLocale(t *testing.T) {
	cases := map[string]string{
		"":                        "",
		"ru":                      LocaleRU,
		"ru-RU,ru;q=0.9,en;q=0.8": LocaleRU,
		"en-GB":                   LocaleEN,
		"fr-FR":                   "",
		"not a tag ###":           "",
	}
	for raw, want := range cases {
		if got := NormalizeLocale(raw); got != want {
			t.Fatalf("NormalizeLocale(%q)=%q want %q", raw, got, want)
		}
	}
}

func TestResolveLocalePrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(target string, header string, cookie string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: LocaleCookieName, Value: cookie})
		}
		c.Request = req
		return c
	}

	if got := ResolveLocale(newContext("/", "ru", "")); got != LocaleRU {
		t.Fatalf("header locale: got %s", got)
	}
	if got := ResolveLocale(newContext("/", "ru", "en-US")); got != LocaleEN {
		t.Fatalf("cookie should beat header: got %s", got)
	}
	if got := ResolveLocale(newContext("/?lang=ru", "en", "en-US")); got != LocaleRU {
		t.Fatalf("query should beat cookie: got %s", got)
	}
	if got := ResolveLocale(newContext("/", "", "")); got != DefaultLocale {
		t.Fatalf("default locale: got %s", got)
	}
	if got := ResolveLocale(nil); got != DefaultLocale {
		t.Fatalf("nil context: got %s", got)
	}
}

func TestTranslateFallbacks(t *testing.T) {
	if got := T(LocaleRU, "ui.nav.home"); got != "Главная" {
		t.Fatalf("unexpected ru message: %s", got)
	}
	if got := T(LocaleRU, "error.slug_exists"); got != messagesEN["error.slug_exists"] {
		t.Fatalf("missing ru key should fall back to en: %s", got)
	}
	if got := T("xx", "unknown.key"); got != "unknown.key" {
		t.Fatalf("unknown key should return key: %s", got)
	}
	if got := Sprintf(LocaleEN, "error.password_min_length", 8); !strings.Contains(got, "8") {
		t.Fatalf("sprintf not applied: %s", got)
	}
}

func TestCatalogsHaveSameUIKeys(t *testing.T) {
	for key := range messagesRU {
		if _, ok := messagesEN[key]; !ok {
			t.Fatalf("ru key %s missing in en catalog", key)
		}
	}
}
