package view

import (
	"strings"

	"github.com/blogicum-next/internal/models"
)

// Page 所有页面共享的渲染上下文
type Page struct {
	Locale      string
	Locales     []string
	SiteName    string
	Title       string
	Path        string
	CurrentUser *models.User
	RequestID   string
	Data        interface{}
}

// IsAuthenticated 是否已登录
func (p *Page) IsAuthenticated() bool {
	return p != nil && p.CurrentUser != nil
}

// IsOwner 当前用户是否为指定作者
func (p *Page) IsOwner(authorID uint) bool {
	return p.IsAuthenticated() && authorID != 0 && p.CurrentUser.ID == authorID
}

// Form 表单回显值与字段错误（已翻译）
type Form struct {
	Values   map[string]string
	Errors   map[string]string
	NonField string
}

// NewForm 创建空表单
func NewForm() *Form {
	return &Form{
		Values: make(map[string]string),
		Errors: make(map[string]string),
	}
}

// Get 读取字段值
func (f *Form) Get(name string) string {
	if f == nil {
		return ""
	}
	return f.Values[name]
}

// Set 设置字段值
func (f *Form) Set(name, value string) *Form {
	f.Values[name] = value
	return f
}

// Error 读取字段错误
func (f *Form) Error(name string) string {
	if f == nil {
		return ""
	}
	return f.Errors[name]
}

// AddError 记录字段错误，已有错误时保留第一条
func (f *Form) AddError(name, message string) {
	if _, exists := f.Errors[name]; !exists {
		f.Errors[name] = message
	}
}

// HasErrors 是否存在任何错误
func (f *Form) HasErrors() bool {
	return f != nil && (len(f.Errors) > 0 || f.NonField != "")
}

// Checked 复选框是否选中
func (f *Form) Checked(name string) bool {
	switch strings.ToLower(strings.TrimSpace(f.Get(name))) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// Selected 下拉框选项是否选中
func (f *Form) Selected(name string, value uint) bool {
	return f.Get(name) != "" && f.Get(name) == uintString(value)
}

// Field 简单输入框定义
type Field struct {
	Name     string
	LabelKey string
	Type     string
}
