package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 100
)

type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination clamps non-positive arguments to the defaults instead of
// rejecting them.
func NewPagination(page, pageSize int) Pagination {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
