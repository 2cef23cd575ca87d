package domain

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

type SortOrder struct {
	Property   string
	Descending bool
}

// PageRequest is a zero-based page window. A Size of zero means unpaged.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

func Unpaged(sort ...SortOrder) PageRequest {
	return PageRequest{Sort: sort}
}

func (p PageRequest) Paged() bool {
	return p.Size > 0
}

// Offset saturates at math.MaxInt instead of wrapping.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// TotalPages follows the usual ceiling division; zero elements make zero pages.
func (p PageRequest) TotalPages(total int64) int {
	if !p.Paged() || total <= 0 {
		return 0
	}
	size := int64(p.Size)
	return int((total + size - 1) / size)
}
