package admin

import (
	"errors"

	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// mappedAdminError 业务错误到响应码与文案 key 的映射
type mappedAdminError struct {
	target error
	code   int
	key    string
}

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

// respondServiceError 校验错误返回字段明细；命中规则表按规则响应；其余记日志返回 fallbackKey
func (h *Handler) respondServiceError(c *gin.Context, err error, fallbackKey string, rules ...mappedAdminError) {
	if bindErr, ok := handlershared.BindingValidationError(err); ok {
		handlershared.RespondValidation(c, bindErr, h.Config.Security.PasswordPolicy)
		return
	}
	if verr, ok := service.AsValidationError(err); ok {
		handlershared.RespondValidation(c, verr, h.Config.Security.PasswordPolicy)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, response.CodeInternal, fallbackKey, err)
}

// bindJSON 绑定请求体；validator 错误按字段返回
func (h *Handler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if verr, ok := handlershared.BindingValidationError(err); ok {
			handlershared.RespondValidation(c, verr, h.Config.Security.PasswordPolicy)
			return false
		}
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return false
	}
	return true
}

func notFoundRule(key string) mappedAdminError {
	return mappedAdminError{target: service.ErrNotFound, code: response.CodeNotFound, key: key}
}
