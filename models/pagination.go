package models

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Pagination is an offset/limit window over a list.
//
// Page and PageSize are not bounded: negative values are kept as given and
// left for the database to reject.
type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination parses the page and pageSize query values. A value that is
// missing, non-numeric or zero falls back to its default; a leading number
// followed by garbage ("2abc") is read as that number.
func NewPagination(page, pageSize string) Pagination {
	return Pagination{
		Page:     parseIntOrDefault(page, DefaultPage),
		PageSize: parseIntOrDefault(pageSize, DefaultPageSize),
	}
}

// Offset returns the number of records to skip. A result outside the int
// range saturates at math.MaxInt or math.MinInt instead of wrapping, so a
// huge page skips everything and a negative one stays negative.
func (p Pagination) Offset() int {
	offset := new(big.Int).Sub(big.NewInt(int64(p.Page)), big.NewInt(1))
	offset.Mul(offset, big.NewInt(int64(p.PageSize)))

	switch {
	case offset.Cmp(big.NewInt(math.MaxInt)) > 0:
		return math.MaxInt
	case offset.Cmp(big.NewInt(math.MinInt)) < 0:
		return math.MinInt
	}

	return int(offset.Int64())
}

// Meta builds the list metadata for this window.
func (p Pagination) Meta(total int64) ListMeta {
	return ListMeta{Page: p.Page, PageSize: p.PageSize, Total: total}
}

func parseIntOrDefault(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) {
		c := raw[end]
		if (c >= '0' && c <= '9') || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}

	value, err := strconv.Atoi(raw[:end])
	if err != nil || value == 0 {
		return def
	}

	return value
}
