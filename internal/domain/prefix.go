package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned by RangeSum for queries outside the indexed
// span or with start after end.
var ErrInvalidRange = errors.New("invalid year range")

// PrefixIndex holds cumulative point counts per year so that counts over any
// year range cost two lookups.
type PrefixIndex struct {
	startYear int
	sums      []int
}

// NewPrefixIndex creates an index spanning [startYear, endYear]. All sums are
// zero until Compile runs.
func NewPrefixIndex(startYear, endYear int) *PrefixIndex {
	n := endYear - startYear + 1
	if n < 0 {
		n = 0
	}
	return &PrefixIndex{startYear: startYear, sums: make([]int, n)}
}

// Compile recomputes every sum from scratch. Seasons outside the span are
// ignored; years without a season count zero points.
func (x *PrefixIndex) Compile(seasons []*Season) {
	counts := make([]int, len(x.sums))
	for _, s := range seasons {
		if p := s.Year - x.startYear; p >= 0 && p < len(counts) {
			counts[p] += s.PointCount()
		}
	}
	for p, c := range counts {
		if p == 0 {
			x.sums[p] = c
			continue
		}
		x.sums[p] = x.sums[p-1] + c
	}
}

// At returns the cumulative count through the p-th indexed year.
func (x *PrefixIndex) At(p int) int {
	return x.sums[p]
}

// Len returns the number of indexed years.
func (x *PrefixIndex) Len() int {
	return len(x.sums)
}

// RangeSum returns the total point count for years [start, end] inclusive.
func (x *PrefixIndex) RangeSum(start, end int) (int, error) {
	s, e := start-x.startYear, end-x.startYear
	if s < 0 || e >= len(x.sums) || s > e {
		return -1, fmt.Errorf("%w: %d-%d outside %d-%d", ErrInvalidRange, start, end, x.startYear, x.startYear+len(x.sums)-1)
	}
	if s == 0 {
		return x.sums[e], nil
	}
	return x.sums[e] - x.sums[s-1], nil
}
