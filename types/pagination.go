package types

// Page is an ordered slice of a larger result set together with the counts
// describing the whole set. Number is zero-based.
type Page[T any] struct {
	Items         []T
	TotalElements int64
	TotalPages    int
	Number        int
	Size          int
	First         bool
	Last          bool
}

// NewPage builds a Page for the given slice. A page past the end of the result
// set carries no items but still reports the full totals.
func NewPage[T any](items []T, totalElements int64, number, size int) *Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if size > 0 && totalElements > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}

	return &Page[T]{
		Items:         items,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		Number:        number,
		Size:          size,
		First:         number == 0,
		Last:          totalPages == 0 || number >= totalPages-1,
	}
}

// PastEnd reports whether page number holds no rows of a result set with
// total elements. It compares page indexes rather than row offsets, so
// arbitrarily large page numbers cannot overflow.
func PastEnd(number, size int, total int64) bool {
	if size < 1 || total <= 0 {
		return true
	}
	lastPage := (total - 1) / int64(size)
	return int64(number) > lastPage
}

// Offset returns the row offset of the first item on page number. Callers
// check PastEnd first; Offset itself does not guard against overflow.
func Offset(number, size int) int64 {
	return int64(number) * int64(size)
}

// MapPage converts the items of a page while keeping its metadata.
func MapPage[T, R any](p *Page[T], fn func(T) R) *Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return &Page[R]{
		Items:         items,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Number:        p.Number,
		Size:          p.Size,
		First:         p.First,
		Last:          p.Last,
	}
}

// PageResponse is the wire representation of a Page.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements" example:"25"`
	TotalPages    int   `json:"totalPages" example:"2"`
	CurrentPage   int   `json:"currentPage" example:"0"`
	Size          int   `json:"size" example:"20"`
	First         bool  `json:"first" example:"true"`
	Last          bool  `json:"last" example:"false"`
}

// NewPageResponse converts a Page into its wire representation.
func NewPageResponse[T any](p *Page[T]) *PageResponse[T] {
	content := p.Items
	if content == nil {
		content = []T{}
	}
	return &PageResponse[T]{
		Content:       content,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		CurrentPage:   p.Number,
		Size:          p.Size,
		First:         p.First,
		Last:          p.Last,
	}
}
