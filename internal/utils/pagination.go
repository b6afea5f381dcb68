package utils

import "github.com/banit/househunt-backend/internal/types"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizePage clamps page to >= 1 and perPage to 1..MaxPageSize,
// substituting DefaultPageSize for non-positive sizes.
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}
	return page, perPage
}

// PageWindow returns the [start, end) slice bounds of page within total
// items. Pages past the end yield an empty window.
func PageWindow(total, page, perPage int) (int, int) {
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return start, end
}

func LastPage(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 1
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		return 1
	}
	return last
}

func NewPagination(total int64, page, perPage int) types.Pagination {
	return types.Pagination{
		Total:       total,
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    LastPage(total, perPage),
	}
}
