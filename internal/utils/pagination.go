package utils

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginationParams is a validated page/limit pair.
type PaginationParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination is the response-side pagination block.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Offset returns the number of records preceding the requested page.
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// GetPaginationParams parses and validates page/limit query parameters.
// Invalid input is a hard 400-class failure, reported as field messages,
// never coerced.
func GetPaginationParams(c *gin.Context) (*PaginationParams, []string) {
	var errs []string

	page := DefaultPage
	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			errs = append(errs, "page must be a positive integer")
		} else {
			page = v
		}
	}

	limit := DefaultPageSize
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < MinPageSize || v > MaxPageSize {
			errs = append(errs, fmt.Sprintf("limit must be an integer between %d and %d", MinPageSize, MaxPageSize))
		} else {
			limit = v
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &PaginationParams{Page: page, Limit: limit}, nil
}

// NewPagination builds the response pagination block.
func NewPagination(params *PaginationParams, total int64) *Pagination {
	return &Pagination{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(params.Limit))),
	}
}

// SliceBounds returns the [start, end) window for in-memory pagination over
// n materialized records. A page past the end yields an empty window.
func SliceBounds(params *PaginationParams, n int) (int, int) {
	start := params.Offset()
	if start > n {
		start = n
	}
	end := start + params.Limit
	if end > n {
		end = n
	}
	return start, end
}
