package utils

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// PaginationParams describes a page of rows. Limit 0 means every row.
type PaginationParams struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	Offset       int `json:"offset"`
	TotalRecords int `json:"total_records"`
	TotalPages   int `json:"total_pages"`
}

// ExtractPagination reads ?page= and ?limit=. Without a limit the whole
// result is one page.
func ExtractPagination(r *http.Request) (PaginationParams, error) {
	params := PaginationParams{
		Page: 1,
	}

	if p := r.URL.Query().Get("page"); p != "" {
		val, err := strconv.Atoi(p)
		if err != nil || val <= 0 {
			return PaginationParams{}, fmt.Errorf("invalid page parameter: %s", p)
		}
		params.Page = val
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		val, err := strconv.Atoi(l)
		if err != nil || val <= 0 {
			return PaginationParams{}, fmt.Errorf("invalid limit parameter: %s", l)
		}
		params.Limit = val
	}
	if params.Limit > 0 && params.Page-1 > math.MaxInt/params.Limit {
		return PaginationParams{}, fmt.Errorf("page out of range: %d", params.Page)
	}
	params.Offset = (params.Page - 1) * params.Limit
	return params, nil
}

func (p *PaginationParams) SetPaginationStats(totalRecords int) {
	p.TotalRecords = totalRecords
	switch {
	case totalRecords == 0:
		p.TotalPages = 0
	case p.Limit == 0:
		p.TotalPages = 1
	default:
		p.TotalPages = int(math.Ceil(float64(totalRecords) / float64(p.Limit)))
	}
}

// Bounds returns the [start, end) slice indexes of the page within n rows.
func (p PaginationParams) Bounds(n int) (int, int) {
	if p.Limit == 0 {
		return 0, n
	}
	start := p.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := n
	if p.Limit < n-start {
		end = start + p.Limit
	}
	return start, end
}
