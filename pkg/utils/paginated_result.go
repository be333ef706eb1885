package utils

// PaginatedResult is one page of items plus counts describing the full
// (filtered) result set.
type PaginatedResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func NewPaginatedResult[T any](items []T, paging PagingParams, totalItems int64) *PaginatedResult[T] {
	paging = paging.Normalize()
	if items == nil {
		items = []T{}
	}

	return &PaginatedResult[T]{
		Items:      items,
		Page:       paging.Page,
		PageSize:   paging.PageSize,
		TotalItems: totalItems,
		TotalPages: TotalPages(totalItems, paging.PageSize),
	}
}

// TotalPages returns ceil(totalItems / pageSize).
func TotalPages(totalItems int64, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / int64(pageSize)
	if totalItems%int64(pageSize) > 0 {
		pages++
	}
	return int(pages)
}

// MapPaginatedResult converts the items of a page, keeping its metadata.
func MapPaginatedResult[T, R any](in *PaginatedResult[T], fn func(T) R) *PaginatedResult[R] {
	if in == nil {
		return nil
	}

	items := make([]R, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, fn(item))
	}

	return &PaginatedResult[R]{
		Items:      items,
		Page:       in.Page,
		PageSize:   in.PageSize,
		TotalItems: in.TotalItems,
		TotalPages: in.TotalPages,
	}
}
