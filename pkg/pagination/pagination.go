package pagination

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// Params holds pagination parameters for a list request.
type Params struct {
	PageNumber int
	PageSize   int
}

// Default returns the parameters every list starts from: page 1 with the
// fixed default page size.
func Default() Params {
	return Params{PageNumber: DefaultPageNumber, PageSize: DefaultPageSize}
}

// FromContext extracts pagination parameters from the echo context.
func FromContext(c echo.Context) Params {
	page, _ := strconv.Atoi(c.QueryParam("pageNumber"))
	if page <= 0 {
		page = DefaultPageNumber
	}
	size, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Params{PageNumber: page, PageSize: size}
}

// Normalize clamps out-of-range values back to the defaults.
func (p Params) Normalize() Params {
	if p.PageNumber <= 0 {
		p.PageNumber = DefaultPageNumber
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the zero-based item offset for the current page.
func (p Params) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// HasNext reports whether more results exist after the current page.
func (p Params) HasNext(total int) bool {
	return p.Offset()+p.PageSize < total
}

// Encode writes the pagination parameters into query values.
func (p Params) Encode(q url.Values) {
	q.Set("pageNumber", strconv.Itoa(p.PageNumber))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
}

// Page is the uniform paged envelope every list endpoint returns. Bare-array
// list responses are not used anywhere; a list is always wrapped.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// NewPage wraps a slice of items in the paged envelope.
func NewPage[T any](items []T, total int, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		TotalCount: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}

// Slice applies the parameters to an in-memory result set and wraps the
// window in a page envelope.
func Slice[T any](all []T, p Params) Page[T] {
	p = p.Normalize()
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + p.PageSize
	if end > len(all) {
		end = len(all)
	}
	return NewPage(all[start:end], len(all), p)
}
