package knots

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSortedGuard(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := NewSorted(Slice{0, 0, 1, 2, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 2.0, s.At(3))
	//
	_, err = NewSorted(Slice{0, 1, 3, 2, 4})
	assert.True(t, errors.Is(err, ErrNotSorted))
	assert.Contains(t, err.Error(), "knot[2]=3")
	_, err = NewSorted(Slice{0, math.NaN(), 1})
	assert.True(t, errors.Is(err, ErrNotSorted))
	_, err = NewSorted(Slice{math.NaN()})
	assert.True(t, errors.Is(err, ErrNotSorted))
	//
	empty, err := NewSorted(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.True(t, IsSorted(Slice{}))
}

func TestEquidistant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEquidistant(4, 0, 5)
	assert.Equal(t, 4, e.Len())
	assert.Equal(t, 0.0, e.At(0))
	assert.InDelta(t, 5.0/3.0, e.At(1), 1e-12)
	assert.InDelta(t, 10.0/3.0, e.At(2), 1e-12)
	assert.Equal(t, 5.0, e.At(3))
	//
	s := EquidistantStep(5, 1, 0.5)
	assert.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, Values(s))
	assert.Equal(t, 0.5, s.Step())
	//
	n := Normalized(11)
	assert.Equal(t, 0.0, n.At(0))
	assert.Equal(t, 1.0, n.At(10))
	assert.InDelta(t, 0.3, n.At(3), 1e-12)
	assert.True(t, IsSorted(n))
	assert.False(t, IsSorted(NewEquidistant(3, 1, 0)))
}

func TestClamped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := NewClamped(Slice{0, 1, 2}, 2)
	assert.NoError(t, err)
	assert.Equal(t, 7, c.Len())
	assert.Equal(t, []float64{0, 0, 0, 1, 2, 2, 2}, Values(c))
	assert.Equal(t, 2, c.Duplication())
	//
	c, err = NewClamped(Slice{0, 1}, 0)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, Values(c))
	//
	_, err = NewClamped(Slice{0, 1}, -1)
	assert.True(t, errors.Is(err, ErrNegativeDuplication))
	_, err = NewClamped(Slice{}, 1)
	assert.True(t, errors.Is(err, ErrTooFewKnots))
}

func TestLegacy(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l, err := NewLegacy(Slice{0, 0, 0, 1, 1, 1})
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1}, Values(l))
	lead, trail := l.Runs()
	assert.Equal(t, 3, lead)
	assert.Equal(t, 3, trail)
	assert.True(t, l.IsClamped(2))
	assert.False(t, l.IsClamped(3))
	//
	l, err = NewLegacy(Slice{0, 1, 2, 3, 4})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, Values(l))
	assert.False(t, l.IsClamped(1))
	//
	_, err = NewLegacy(Slice{1})
	assert.True(t, errors.Is(err, ErrTooFewKnots))
	_, err = NewLegacy(Slice{2, 2, 2})
	assert.True(t, errors.Is(err, ErrDegenerate))
}

func TestLegacyRuns(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l, err := NewLegacy(Slice{0, 0, 0, 1, 2, 2})
	assert.NoError(t, err)
	lead, trail := l.Runs()
	assert.Equal(t, 3, lead)
	assert.Equal(t, 2, trail)
	l, err = NewLegacy(Slice{0, 1})
	assert.NoError(t, err)
	lead, trail = l.Runs()
	assert.Equal(t, 1, lead)
	assert.Equal(t, 1, trail)
	// wrapping a generated sequence must not materialize it
	var seq Sequence = NewEquidistant(1_000_000, 0, 1)
	allocs := testing.AllocsPerRun(5, func() {
		l, err = NewLegacy(seq)
	})
	assert.NoError(t, err)
	assert.LessOrEqual(t, allocs, 1.0)
	lead, trail = l.Runs()
	assert.Equal(t, 1, lead)
	assert.Equal(t, 1, trail)
}

func TestMultiplicities(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Multiplicities(Slice{0, 0, 0.5, 0.5, 0.5, 1})
	assert.Equal(t, 3, m.Size())
	c, found := m.Get(0.5)
	assert.True(t, found)
	assert.Equal(t, 3, c)
	assert.Equal(t, 3, MaxInteriorMultiplicity(Slice{0, 0, 0.5, 0.5, 0.5, 1}))
	assert.Equal(t, 0, MaxInteriorMultiplicity(Slice{0, 0, 1, 1}))
	assert.Equal(t, 1, MaxInteriorMultiplicity(Slice{0, 1, 2, 3}))
}

func TestSpan(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := Slice{0, 0, 1, 2, 2, 3, 4, 4}
	// search within [1, 6]
	assert.Equal(t, 1, Span(k, 1, 6, 0))
	assert.Equal(t, 1, Span(k, 1, 6, 0.5))
	assert.Equal(t, 2, Span(k, 1, 6, 1))
	assert.Equal(t, 4, Span(k, 1, 6, 2)) // right of the repeated knot
	assert.Equal(t, 5, Span(k, 1, 6, 3.5))
	assert.Equal(t, 6, Span(k, 1, 6, 4))
	assert.Equal(t, 1, Span(k, 1, 1, 3)) // single candidate
}
