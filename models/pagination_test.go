package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		pageSize string
		want     Pagination
	}{
		{"defaults", "", "", Pagination{Page: 1, PageSize: 10}},
		{"explicit", "3", "25", Pagination{Page: 3, PageSize: 25}},
		{"zero falls back", "0", "0", Pagination{Page: 1, PageSize: 10}},
		{"non-numeric falls back", "abc", "x", Pagination{Page: 1, PageSize: 10}},
		{"leading number is kept", "2abc", "5 rows", Pagination{Page: 2, PageSize: 5}},
		{"negative is kept", "-1", "-5", Pagination{Page: -1, PageSize: -5}},
		{"surrounding spaces", " 4 ", " 7", Pagination{Page: 4, PageSize: 7}},
		{"sign only", "+", "-", Pagination{Page: 1, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.pageSize))
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	tests := []struct {
		name string
		page Pagination
		want int
	}{
		{"first page", Pagination{Page: 1, PageSize: 10}, 0},
		{"third page", Pagination{Page: 3, PageSize: 10}, 20},
		{"negative page", Pagination{Page: -1, PageSize: 10}, -20},
		{"huge page saturates", Pagination{Page: math.MaxInt, PageSize: 10}, math.MaxInt},
		{"huge negative page saturates", Pagination{Page: math.MinInt, PageSize: 10}, math.MinInt},
		{"huge page from query", NewPagination("9223372036854775807", "10"), math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}

func TestPagination_Meta(t *testing.T) {
	assert.Equal(t, ListMeta{Page: 2, PageSize: 5, Total: 42}, Pagination{Page: 2, PageSize: 5}.Meta(42))
}
