package service

import (
	"errors"
	"sort"
	"strings"
)

// 通用错误
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrValidation      = errors.New("validation failed")
)

// 认证相关错误
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("weak password")
	ErrUserDisabled       = errors.New("user disabled")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAdminExists        = errors.New("admin already exists")
)

// 验证码错误
var (
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")
)

// 内容管理错误
var (
	ErrSlugExists = errors.New("slug already exists")
)

// 上传错误
var (
	ErrUploadTooLarge       = errors.New("upload too large")
	ErrUploadExtension      = errors.New("upload extension not allowed")
	ErrUploadContentType    = errors.New("upload content type not allowed")
	ErrUploadImageDimension = errors.New("upload image dimension exceeded")
	ErrUploadImageInvalid   = errors.New("upload image invalid")
)

// ValidationError 表单字段校验错误，字段名映射到文案 key
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError 创建单字段校验错误
func NewValidationError(field, key string) *ValidationError {
	return (&ValidationError{}).Add(field, key)
}

// Add 追加字段错误，同一字段保留第一条
func (e *ValidationError) Add(field, key string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = key
	}
	return e
}

// HasErrors 是否存在字段错误
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil 无字段错误时返回 nil，便于直接作为 error 返回
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return ErrValidation.Error() + " (" + strings.Join(parts, ", ") + ")"
}

// Is 使 errors.Is(err, ErrValidation) 成立
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AsValidationError 提取校验错误
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
