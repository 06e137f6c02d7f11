package view

import (
	"html"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var markdownPolicy = bluemonday.UGCPolicy()

// Markdown 渲染文章正文并清洗输出
func Markdown(text string) template.HTML {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	// parser 带状态，每次渲染需新建
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(markdown.NormalizeNewlines([]byte(text)))
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.Render(doc, renderer)
	return template.HTML(markdownPolicy.SanitizeBytes(rendered))
}

// Linebreaks 转义纯文本并保留换行，用于评论
func Linebreaks(text string) template.HTML {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n")
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>\n"))
}
