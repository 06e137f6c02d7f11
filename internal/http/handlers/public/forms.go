package public

import (
	"strconv"
	"strings"
	"time"

	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/http/view"
	"github.com/blogicum-next/internal/i18n"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

// datetime-local 输入框格式
const pubDateInputLayout = "2006-01-02T15:04"

var pubDateLayouts = []string{
	pubDateInputLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// applyValidation 将校验错误翻译进表单；非校验错误返回 false
func (h *Handler) applyValidation(c *gin.Context, form *view.Form, err error) bool {
	verr, ok := service.AsValidationError(err)
	if !ok {
		return false
	}
	locale := i18n.ResolveLocale(c)
	for field, message := range handlershared.TranslateFields(locale, verr, h.Config.Security.PasswordPolicy) {
		form.AddError(field, message)
	}
	return true
}

// setNonFieldError 表单级错误（登录失败等）
func (h *Handler) setNonFieldError(c *gin.Context, form *view.Form, key string) {
	form.NonField = h.t(c, key)
}

// parseChoice 解析下拉框取值，空值为 0
func parseChoice(raw string) (uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePubDate 按站点时区解释表单时间并转为 UTC
func parsePubDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, true
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func formatPubDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(pubDateInputLayout)
}

func checkbox(value bool) string {
	if value {
		return "on"
	}
	return ""
}

func isChecked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func uintValue(id uint) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}
