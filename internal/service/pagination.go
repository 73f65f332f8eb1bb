package service

// PageParams describes one page of a list query. Page and limit are floored at 1.
type PageParams struct {
	Skip  int
	Take  int
	Page  int
	Limit int
}

// NewPageParams normalizes raw page/limit values, falling back to defaultLimit
// when limit is unset or invalid.
func NewPageParams(page, limit, defaultLimit int) PageParams {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return PageParams{
		Skip:  (page - 1) * limit,
		Take:  limit,
		Page:  page,
		Limit: limit,
	}
}

// Paginated is one page of results plus the totals needed to render paging metadata.
type Paginated[T any] struct {
	Items      []T
	Page       int
	Limit      int
	TotalItems int64
	TotalPages int
}

func newPaginated[T any](items []T, totalItems int64, pp PageParams) *Paginated[T] {
	totalPages := int(totalItems+int64(pp.Limit)-1) / pp.Limit
	return &Paginated[T]{
		Items:      items,
		Page:       pp.Page,
		Limit:      pp.Limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
