package pagination

import (
	"VidTube.com/pkg/constants"
)

// Page 分页结果, TotalPages = ceil(Total/Limit)
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// Normalize 归一化分页参数
// 非正数会破坏offset/limit运算, 一律回落到默认值
func Normalize(page, limit int64) (int64, int64) {
	if page <= 0 {
		page = constants.DefaultPage
	}
	if limit <= 0 || limit > constants.MaxLimit {
		limit = constants.DefaultLimit
	}
	return page, limit
}

// Offset 计算跳过的记录数, 入参需已归一化
func Offset(page, limit int64) int {
	return int((page - 1) * limit)
}

func New[T any](items []T, page, limit, total int64) *Page[T] {
	// 未归一化的limit会导致除零
	page, limit = Normalize(page, limit)
	if items == nil {
		items = make([]T, 0)
	}
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &Page[T]{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
