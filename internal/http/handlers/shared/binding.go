package shared

import (
	"errors"
	"strings"

	"github.com/blogicum-next/internal/service"

	"github.com/go-playground/validator/v10"
)

// BindingValidationError 将 gin 绑定产生的 validator 错误转换为字段错误键。
// 非 validator 错误（例如 JSON 语法错误）返回 false。
func BindingValidationError(err error) (*service.ValidationError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := &service.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldName(fe), bindingTagKey(fe.Tag()))
	}
	return out, true
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func bindingTagKey(tag string) string {
	switch tag {
	case "required":
		return "form.required"
	case "max":
		return "form.too_long"
	case "email":
		return "form.invalid_email"
	case "oneof":
		return "form.invalid_choice"
	default:
		return "error.bad_request"
	}
}
