package utils

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPagination(t *testing.T) {
	p, err := ExtractPagination(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, PaginationParams{Page: 1}, p)

	p, err = ExtractPagination(httptest.NewRequest("GET", "/x?page=3&limit=20", nil))
	require.NoError(t, err)
	assert.Equal(t, 40, p.Offset)

	for _, q := range []string{"page=0", "page=a", "limit=-1", "page=4611686018427387904&limit=4"} {
		_, err = ExtractPagination(httptest.NewRequest("GET", "/x?"+q, nil))
		assert.Error(t, err, q)
	}
}

func TestPaginationBounds(t *testing.T) {
	tests := []struct {
		p          PaginationParams
		n          int
		start, end int
		pages      int
	}{
		{PaginationParams{Page: 1}, 7, 0, 7, 1},
		{PaginationParams{Page: 1, Limit: 3}, 7, 0, 3, 3},
		{PaginationParams{Page: 3, Limit: 3, Offset: 6}, 7, 6, 7, 3},
		{PaginationParams{Page: 9, Limit: 3, Offset: 24}, 7, 7, 7, 3},
		{PaginationParams{Page: 1, Limit: 3}, 0, 0, 0, 0},
		{PaginationParams{Page: 2, Limit: 4, Offset: -4}, 7, 0, 4, 2},
		{PaginationParams{Page: 2, Limit: math.MaxInt, Offset: 3}, 7, 3, 7, 1},
	}
	for _, tt := range tests {
		start, end := tt.p.Bounds(tt.n)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
		tt.p.SetPaginationStats(tt.n)
		assert.Equal(t, tt.pages, tt.p.TotalPages)
	}
}
