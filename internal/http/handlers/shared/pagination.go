package shared

import "github.com/blogicum-next/internal/constants"

// NormalizePagination 归一化后台分页参数。
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = constants.AdminDefaultPageSize
	}
	if pageSize > constants.AdminMaxPageSize {
		pageSize = constants.AdminMaxPageSize
	}
	return page, pageSize
}
