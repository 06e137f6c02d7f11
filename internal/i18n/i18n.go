package i18n

import (
	"fmt"
	"strings"

	"github.com/blogicum-next/internal/constants"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleEN = "en-US"
	LocaleRU = "ru-RU"

	// DefaultLocale 无法协商时使用的语言
	DefaultLocale = LocaleEN

	// LocaleQueryKey 查询参数切换语言，例如 ?lang=ru
	LocaleQueryKey = "lang"
	// LocaleCookieName 记住语言选择的 Cookie
	LocaleCookieName = "blogicum_lang"
)

var supportedLocales = []string{LocaleEN, LocaleRU}

var matcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish,
	language.Russian,
})

var catalogs = map[string]map[string]string{
	LocaleEN: messagesEN,
	LocaleRU: messagesRU,
}

// SupportedLocales 返回支持的语言列表
func SupportedLocales() []string {
	out := make([]string, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// NormalizeLocale 将任意语言标签归一为支持的语言，空串表示无法识别
func NormalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return ""
	}
	return supportedLocales[idx]
}

// ResolveLocale 按 上下文缓存 > 查询参数 > Cookie > Accept-Language 的顺序确定语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if cached, ok := c.Get(constants.ContextKeyLocale); ok {
		if locale, ok := cached.(string); ok && locale != "" {
			return locale
		}
	}

	locale := NormalizeLocale(c.Query(LocaleQueryKey))
	if locale == "" {
		if cookie, err := c.Cookie(LocaleCookieName); err == nil {
			locale = NormalizeLocale(cookie)
		}
	}
	if locale == "" {
		locale = NormalizeLocale(c.GetHeader("Accept-Language"))
	}
	if locale == "" {
		locale = DefaultLocale
	}
	c.Set(constants.ContextKeyLocale, locale)
	return locale
}

// T 翻译 key，缺失时回退到默认语言，再回退为 key 本身
func T(locale, key string) string {
	if catalog, ok := catalogs[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译带参数的 key
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
