package shared

import (
	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/constants"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/i18n"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if id := c.GetString(constants.ContextKeyRequestID); id != "" {
		return logger.SW("request_id", id)
	}
	return logger.S()
}

// RespondError 返回国际化 JSON 错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	appErr := response.WrapError(code, key, i18n.T(locale, key), err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"key", appErr.Key,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondValidation 返回字段级校验错误。
func RespondValidation(c *gin.Context, verr *service.ValidationError, policy config.PasswordPolicyConfig) {
	locale := i18n.ResolveLocale(c)
	response.ErrorWithData(c, response.CodeBadRequest, i18n.T(locale, "error.validation_failed"), gin.H{
		"fields": TranslateFields(locale, verr, policy),
	})
}

// TranslateFields 将字段错误键翻译为文案，密码长度提示带上配置值。
func TranslateFields(locale string, verr *service.ValidationError, policy config.PasswordPolicyConfig) map[string]string {
	out := make(map[string]string)
	if verr == nil {
		return out
	}
	for field, key := range verr.Fields {
		if key == "error.password_min_length" {
			out[field] = i18n.Sprintf(locale, key, policy.MinLength)
			continue
		}
		out[field] = i18n.T(locale, key)
	}
	return out
}
