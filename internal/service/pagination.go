package service

import (
	"strconv"
	"strings"
)

// PostsPerPage 列表每页文章数
const PostsPerPage = 10

// PageInfo 分页结果
type PageInfo struct {
	Number         int   `json:"page"`
	Size           int   `json:"page_size"`
	TotalPages     int   `json:"total_page"`
	Total          int64 `json:"total"`
	HasNext        bool  `json:"has_next"`
	HasPrevious    bool  `json:"has_previous"`
	NextNumber     int   `json:"next_page"`
	PreviousNumber int   `json:"previous_page"`
}

// ResolvePage 解析页码：缺失或非整数取第 1 页，越界（含小于 1）取最后一页
func ResolvePage(raw string, total int64, size int) PageInfo {
	if size <= 0 {
		size = PostsPerPage
	}
	if total < 0 {
		total = 0
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number := 1
	if parsed, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		number = parsed
		if number < 1 || number > totalPages {
			number = totalPages
		}
	}

	info := PageInfo{
		Number:      number,
		Size:        size,
		TotalPages:  totalPages,
		Total:       total,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
	if info.HasNext {
		info.NextNumber = number + 1
	}
	if info.HasPrevious {
		info.PreviousNumber = number - 1
	}
	return info
}

// StartIndex 当前页第一条的序号（从 1 开始），空列表为 0
func (p PageInfo) StartIndex() int64 {
	if p.Total == 0 {
		return 0
	}
	return int64(p.Number-1)*int64(p.Size) + 1
}

// EndIndex 当前页最后一条的序号
func (p PageInfo) EndIndex() int64 {
	end := int64(p.Number) * int64(p.Size)
	if end > p.Total {
		return p.Total
	}
	return end
}
