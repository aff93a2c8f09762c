package models

// FieldError is one per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Pagination describes an offset page within a filtered result set.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination computes the page metadata for total matching items.
func NewPagination(page, limit int, total int64) Pagination {
	l := int64(limit)
	totalPages := total / l
	if total%l != 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  int(totalPages),
		HasNextPage: total > 0 && int64(page) <= (total-1)/l,
		HasPrevPage: page > 1,
	}
}

// PageOutOfRange reports whether page starts past the last of total items.
// Check it before computing an offset with PageSkip.
func PageOutOfRange(page, limit int, total int64) bool {
	return int64(page-1) > total/int64(limit)
}

// PageSkip is the number of items before page. It must only be called for
// pages that are not out of range.
func PageSkip(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}

// PageBounds returns the [start, end) slice bounds of a page over n items.
func PageBounds(page, limit, n int) (int, int) {
	if page < 1 || limit < 1 || PageOutOfRange(page, limit, int64(n)) {
		return n, n
	}
	start := (page - 1) * limit
	end := start + min(limit, n-start)
	return start, end
}
