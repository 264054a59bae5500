package storex

import (
	"math"

	"github.com/Conversia-AI/craftable-convx/validatex"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 1000
)

// PaginationOptions selects a page of a result set. Pages start at 1.
type PaginationOptions struct {
	Page     int `json:"page" validatex:"min=1"`
	PageSize int `json:"pageSize" validatex:"min=1,max=1000"`
}

// DefaultPaginationOptions returns the first page with the default size
func DefaultPaginationOptions() PaginationOptions {
	return PaginationOptions{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Normalize replaces out-of-range values with defaults and caps the page size
func (o PaginationOptions) Normalize() PaginationOptions {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
	return o
}

// Validate rejects a page below 1 and a page size outside 1..MaxPageSize
func (o PaginationOptions) Validate() error {
	if err := validatex.ValidateStruct(o); err != nil {
		return StoreErrors.NewWithCause(ErrInvalidPagination, err).
			WithDetail("page", o.Page).
			WithDetail("pageSize", o.PageSize)
	}
	return nil
}

// Offset is the index of the first item of the page. It saturates at
// math.MaxInt instead of overflowing.
func (o PaginationOptions) Offset() int {
	if o.Page < 1 || o.PageSize < 1 {
		return 0
	}
	if o.Page-1 > math.MaxInt/o.PageSize {
		return math.MaxInt
	}
	return (o.Page - 1) * o.PageSize
}

// Paginated is one page of a result set
type Paginated[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// NewPaginated builds a page and derives the page count from total
func NewPaginated[T any](items []T, page, pageSize, total int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Paginated[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// HasNext reports whether a page follows this one
func (p Paginated[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrevious reports whether a page precedes this one
func (p Paginated[T]) HasPrevious() bool {
	return p.Page > 1
}

// Paginate cuts the requested page out of items. Options are normalized first;
// a page past the end is empty but keeps the totals.
func Paginate[T any](items []T, opts PaginationOptions) Paginated[T] {
	opts = opts.Normalize()
	total := len(items)
	start := opts.Offset()
	if start >= total {
		return NewPaginated([]T{}, opts.Page, opts.PageSize, total)
	}

	end := min(start+opts.PageSize, total)
	return NewPaginated(items[start:end], opts.Page, opts.PageSize, total)
}

// PartialList is a slice of a larger collection together with the size of
// the whole collection
type PartialList[T any] struct {
	Elements  []T   `json:"elements"`
	TotalSize int64 `json:"totalSize"`
}

// NewPartialList creates a partial list
func NewPartialList[T any](elements []T, totalSize int64) PartialList[T] {
	if elements == nil {
		elements = []T{}
	}
	return PartialList[T]{Elements: elements, TotalSize: totalSize}
}

// Len returns the number of elements held
func (l PartialList[T]) Len() int {
	return len(l.Elements)
}
