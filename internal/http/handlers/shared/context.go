package shared

import (
	"strconv"
	"strings"

	"github.com/blogicum-next/internal/constants"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/models"

	"github.com/gin-gonic/gin"
)

// GetContextUintWithKeys 从上下文读取 uint 值并统一处理错误响应。
func GetContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, invalidKey, nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, invalidKey, nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, typeInvalidKey, nil)
		return 0, false
	}
}

// CurrentUser 读取会话中间件注入的当前用户，匿名访问返回 nil。
func CurrentUser(c *gin.Context) *models.User {
	if c == nil {
		return nil
	}
	value, ok := c.Get(constants.ContextKeyUser)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

// CurrentUserID 当前用户 ID，匿名为 0。
func CurrentUserID(c *gin.Context) uint {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// ParseUintParam 解析路径参数中的正整数 ID。
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
