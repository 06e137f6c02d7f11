package admin

import (
	"strconv"

	"github.com/blogicum-next/internal/constants"
	handlershared "github.com/blogicum-next/internal/http/handlers/shared"
	"github.com/blogicum-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, constants.ContextKeyAdminID, "error.admin_id_invalid", "error.admin_id_type_invalid")
}

func currentAdminID(c *gin.Context) uint {
	if value, ok := c.Get(constants.ContextKeyAdminID); ok {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	return 0
}

func currentUsername(c *gin.Context) string {
	return c.GetString(constants.ContextKeyAdminName)
}

// parseIDParam 解析 :id，失败时已写出响应
func parseIDParam(c *gin.Context) (uint, bool) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.id_invalid", nil)
		return 0, false
	}
	return id, true
}

// parsePageQuery 读取 page/page_size 并归一化
func parsePageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.AdminDefaultPageSize)))
	return handlershared.NormalizePagination(page, pageSize)
}

// parseUintQuery 可选的 uint 查询参数，非法值视为未传
func parseUintQuery(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
