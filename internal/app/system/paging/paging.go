// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultPageSize is the number of cards shown per page of the idea list
// when the configuration does not say otherwise.
const DefaultPageSize = 24

// ParseStart extracts the human-friendly "start" query parameter (1-based index).
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Result reports whether pages exist on either side of a window.
type Result struct {
	HasPrev bool
	HasNext bool
}

// Window returns the page of rows beginning at the 1-based index start and
// holding at most size rows. The input slice is not modified; the returned
// slice shares its backing array. A size <= 0 means DefaultPageSize.
func Window[T any](rows []T, start, size int) ([]T, Result) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if start < 1 {
		start = 1
	}

	from := start - 1
	if from >= len(rows) {
		return rows[len(rows):], Result{HasPrev: from > 0 && len(rows) > 0}
	}
	to := from + size
	if to > len(rows) {
		to = len(rows)
	}
	return rows[from:to], Result{HasPrev: from > 0, HasNext: to < len(rows)}
}

// Range holds computed display range values for a paginated list.
type Range struct {
	Start     int // 1-based start index (0 if no results)
	End       int // 1-based end index (0 if no results)
	PrevStart int // start value for previous page link
	NextStart int // start value for next page link
}

// ComputeRange calculates display range values given the current start
// index, the number of items shown and the page size.
func ComputeRange(start, shown, size int) Range {
	if size <= 0 {
		size = DefaultPageSize
	}
	if shown == 0 {
		return Range{Start: 0, End: 0, PrevStart: 1, NextStart: 1}
	}

	prevStart := start - size
	if prevStart < 1 {
		prevStart = 1
	}

	return Range{
		Start:     start,
		End:       start + shown - 1,
		PrevStart: prevStart,
		NextStart: start + shown,
	}
}
