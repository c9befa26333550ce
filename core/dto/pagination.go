package dto

// Pagination is the offset based page returned by list endpoints.
type Pagination[T any] struct {
	Items      []T   `json:"items"`
	TotalItems int64 `json:"total_items"`
	From       int   `json:"from"`
	Size       int   `json:"size"`
}

func NewPagination[T any](items []T, total int64, from, size int) *Pagination[T] {
	if items == nil {
		items = []T{}
	}
	return &Pagination[T]{
		Items:      items,
		TotalItems: total,
		From:       from,
		Size:       size,
	}
}
