// Package pagination holds the page request and page result shared by all listings.
package pagination

const (
	DefaultSize = 10
	MaxSize     = 100
)

// Params selects one page of a listing, optionally filtered by a free-text term.
type Params struct {
	Page   int
	Size   int
	Filter string
}

// Normalize clamps Page to >= 1 and Size to 1..MaxSize.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Offset is the number of rows to skip.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Size
}

// Page is one page of results.
type Page[T any] struct {
	Items []T
	Page  int
	Size  int
	Total int64
}

// TotalPages returns the number of pages needed to hold Total items.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.Total == 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// Map converts the items of a page, keeping the paging metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[U]{Items: items, Page: p.Page, Size: p.Size, Total: p.Total}
}

// Response is the JSON shape of a page.
type Response[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewResponse maps each item with fn and adds the paging metadata.
func NewResponse[T, U any](p Page[T], fn func(T) U) Response[U] {
	mapped := Map(p, fn)
	return Response[U]{
		Items:      mapped.Items,
		Page:       mapped.Page,
		PageSize:   mapped.Size,
		Total:      mapped.Total,
		TotalPages: mapped.TotalPages(),
	}
}
