package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

const layoutName = "layout"

// Renderer 基于 embed.FS 的 gin HTMLRender，每个页面 = 布局 + 公共片段 + 页面模板
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer 解析全部模板，启动时调用一次
func NewRenderer(loc *time.Location) (*Renderer, error) {
	base, err := template.New(layoutName).Funcs(Funcs(loc)).ParseFS(templateFS,
		"templates/layout.html",
		"templates/partials/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), ".html")
		if name == layoutName {
			continue
		}
		tpl, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := tpl.ParseFS(templateFS, page); err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.templates[name] = tpl
	}
	return r, nil
}

// Instance 实现 render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	tpl, ok := r.templates[name]
	if !ok {
		return render.Data{
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte("template not found: " + name),
		}
	}
	return render.HTML{Template: tpl, Name: layoutName, Data: data}
}

// Has 判断页面模板是否存在
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}
