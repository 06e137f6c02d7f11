package view

import (
	"html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/blogicum-next/internal/i18n"
)

const displayDateLayout = "2 Jan 2006, 15:04"

// Funcs 模板函数
func Funcs(loc *time.Location) template.FuncMap {
	if loc == nil {
		loc = time.UTC
	}
	return template.FuncMap{
		"t":          i18n.T,
		"tf":         i18n.Sprintf,
		"markdown":   Markdown,
		"linebreaks": Linebreaks,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.In(loc).Format(displayDateLayout)
		},
		"pageURL": func(path string, number int) string {
			query := url.Values{}
			query.Set("page", strconv.Itoa(number))
			return path + "?" + query.Encode()
		},
		"pathEscape": url.PathEscape,
		"uint":       uintString,
		"list": func(values ...interface{}) []interface{} {
			return values
		},
		"safeURL": func(raw string) template.URL {
			return template.URL(raw)
		},
	}
}

func uintString(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
