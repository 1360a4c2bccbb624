package dto

// DefaultPage is the first page when none is requested.
const DefaultPage = 1

// DefaultLimit is the default number of items per page.
const DefaultLimit = 10

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// PaginationRequest represents page-based pagination parameters.
type PaginationRequest struct {
	// Page is the 1-indexed page number (default 1).
	Page int `form:"page" validate:"omitempty,gte=1"`

	// Limit is the maximum number of items to return (1-100, default 10).
	Limit int `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetPage returns the page with defaults applied.
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return DefaultPage
	}

	return p.Page
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	if p.Limit > MaxLimit {
		return MaxLimit
	}

	return p.Limit
}

// PaginatedResponse is a generic page-based paginated response.
type PaginatedResponse[T any] struct {
	// Items is the array of items for this page.
	Items []T `json:"items"`

	// Page is the 1-indexed page number returned.
	Page int `json:"page"`

	// Limit is the page size used.
	Limit int `json:"limit"`

	// Total is the total number of items across all pages.
	Total int64 `json:"total"`

	// TotalPages is the number of pages at this limit.
	TotalPages int `json:"totalPages"`
}

// NewPaginatedResponse creates a paginated response from one page of
// items and the total match count.
func NewPaginatedResponse[T any](items []T, page, limit int, total int64) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &PaginatedResponse[T]{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages(total, limit),
	}
}

// EmptyPaginatedResponse returns a paginated response with no items.
func EmptyPaginatedResponse[T any](page, limit int) *PaginatedResponse[T] {
	return &PaginatedResponse[T]{
		Items: []T{},
		Page:  page,
		Limit: limit,
	}
}

// totalPages computes the page count, rounding up.
func totalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return int(pages)
}
