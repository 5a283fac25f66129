/*
Package knots provides knot sequences for B-spline curves.

A knot sequence is a non-decreasing sequence of scalars. Clients hand in
either explicit knots, which are guarded for sortedness, or equidistant
knots, which are generated on demand without being stored.

Boundary conventions are realized by adaptors which re-interpret a stored
sequence: Clamped virtually repeats the first and last knot, Legacy drops
the superfluous outermost knots of the classical textbook convention.
Neither of them copies knot values.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package knots

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrNotSorted indicates a knot sequence which is not non-decreasing.
	ErrNotSorted = errors.New("knots are not sorted")
	// ErrTooFewKnots indicates a knot sequence too short for an adaptor.
	ErrTooFewKnots = errors.New("too few knots")
	// ErrDegenerate indicates a knot sequence where first and last knot coincide.
	ErrDegenerate = errors.New("knot sequence does not span an interval")
	// ErrNegativeDuplication indicates a clamped adaptor with a negative repeat count.
	ErrNegativeDuplication = errors.New("knot duplication count is negative")
)

// Sequence is a read-only indexed sequence of knots.
type Sequence interface {
	Len() int
	At(i int) float64
}

// Slice is a Sequence of explicit knot values.
type Slice []float64

// Len is part of interface Sequence.
func (s Slice) Len() int {
	return len(s)
}

// At is part of interface Sequence.
func (s Slice) At(i int) float64 {
	return s[i]
}

// Values materializes a sequence. Intended for debugging and tests.
func Values(s Sequence) []float64 {
	v := make([]float64, s.Len())
	for i := range v {
		v[i] = s.At(i)
	}
	return v
}

// Sorted is a sequence guaranteed to be non-decreasing. It offers the same
// read-only access as the sequence it wraps.
type Sorted struct {
	Sequence
}

// NewSorted checks s for non-decreasing order and wraps it. It returns an
// error wrapping ErrNotSorted which names the first index i where
// s[i] > s[i+1]. NaN values are never considered sorted.
func NewSorted(s Sequence) (Sorted, error) {
	if s == nil {
		return Sorted{Slice(nil)}, nil
	}
	if i, ok := firstUnsorted(s); !ok {
		if i+1 == s.Len() {
			return Sorted{}, fmt.Errorf("%w: knot[%d] is NaN", ErrNotSorted, i)
		}
		return Sorted{}, fmt.Errorf("%w: knot[%d]=%g, knot[%d]=%g", ErrNotSorted,
			i, s.At(i), i+1, s.At(i+1))
	}
	return Sorted{s}, nil
}

// IsSorted is a predicate: is s non-decreasing?
func IsSorted(s Sequence) bool {
	_, ok := firstUnsorted(s)
	return ok
}

func firstUnsorted(s Sequence) (int, bool) {
	n := s.Len()
	if n == 1 && math.IsNaN(s.At(0)) {
		return 0, false
	}
	for i := 0; i+1 < n; i++ {
		a, b := s.At(i), s.At(i+1)
		if a > b || math.IsNaN(a) || math.IsNaN(b) {
			return i, false
		}
	}
	return -1, true
}

// Span finds the largest index s in [lo,hi] with knot[s] ≤ t, using binary
// search. The sequence has to be sorted and t ≥ knot[lo].
func Span(seq Sequence, lo, hi int, t float64) int {
	return lo + sort.Search(hi-lo, func(j int) bool {
		return seq.At(lo+j+1) > t
	})
}
