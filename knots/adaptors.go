package knots

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// --- Clamped ---------------------------------------------------------------

// Clamped presents a core sequence of length L with its first and last
// knot virtually repeated k times each, resulting in L+2k knots. For a
// curve of degree d, k = d-1 gives the boundary multiplicity needed for
// the curve to start and end at its first and last control element.
type Clamped struct {
	core Sequence
	k    int
}

// NewClamped wraps core, repeating its boundary knots k times.
func NewClamped(core Sequence, k int) (Clamped, error) {
	if k < 0 {
		return Clamped{}, fmt.Errorf("%w: %d", ErrNegativeDuplication, k)
	}
	if core.Len() == 0 {
		return Clamped{}, fmt.Errorf("%w: clamped knots need a core knot", ErrTooFewKnots)
	}
	return Clamped{core: core, k: k}, nil
}

// Len is part of interface Sequence.
func (c Clamped) Len() int {
	return c.core.Len() + 2*c.k
}

// At is part of interface Sequence.
func (c Clamped) At(i int) float64 {
	l := c.core.Len()
	switch {
	case i < c.k:
		return c.core.At(0)
	case i >= l+c.k:
		return c.core.At(l - 1)
	}
	return c.core.At(i - c.k)
}

// Duplication returns the number of virtual copies at each end.
func (c Clamped) Duplication() int {
	return c.k
}

// --- Legacy ----------------------------------------------------------------

// Legacy accepts knots in the classical textbook convention, where n
// control elements and degree d need n+d+1 knots. The first and the last of
// these never influence the curve and are hidden by the adaptor; all other
// knots are exposed unchanged.
type Legacy struct {
	core  Sequence
	lead  int // run length of the first knot value
	trail int // run length of the last knot value
}

// NewLegacy wraps a classical knot sequence. It fails for fewer than 2
// knots or if the sequence does not span an interval.
func NewLegacy(core Sequence) (Legacy, error) {
	if core.Len() < 2 {
		return Legacy{}, fmt.Errorf("%w: legacy knots need at least 2, have %d",
			ErrTooFewKnots, core.Len())
	}
	if core.At(0) == core.At(core.Len()-1) {
		return Legacy{}, fmt.Errorf("%w: all knots equal %g", ErrDegenerate, core.At(0))
	}
	lead, trail := boundaryRuns(core)
	return Legacy{core: core, lead: lead, trail: trail}, nil
}

// boundaryRuns counts the repetitions of the first and the last knot value,
// scanning inwards from either end.
func boundaryRuns(s Sequence) (lead, trail int) {
	n := s.Len()
	first, last := s.At(0), s.At(n-1)
	for lead = 1; lead < n && s.At(lead) == first; lead++ {
	}
	for trail = 1; trail < n && s.At(n-1-trail) == last; trail++ {
	}
	return lead, trail
}

// Len is part of interface Sequence.
func (l Legacy) Len() int {
	return l.core.Len() - 2
}

// At is part of interface Sequence.
func (l Legacy) At(i int) float64 {
	return l.core.At(i + 1)
}

// Runs returns the multiplicities of the first and the last knot value of
// the classical sequence. A clamped curve of degree d has d+1 for both.
func (l Legacy) Runs() (lead, trail int) {
	return l.lead, l.trail
}

// IsClamped is a predicate: does the classical sequence clamp a curve of
// degree d at both ends?
func (l Legacy) IsClamped(d int) bool {
	return l.lead >= d+1 && l.trail >= d+1
}

// --- Multiplicities --------------------------------------------------------

// Multiplicities counts how often each knot value occurs in s. The result
// maps knot values (float64) to counts (int), ordered by knot value.
func Multiplicities(s Sequence) *treemap.Map {
	m := treemap.NewWith(utils.Float64Comparator)
	for i := 0; i < s.Len(); i++ {
		k := s.At(i)
		if c, found := m.Get(k); found {
			m.Put(k, c.(int)+1)
		} else {
			m.Put(k, 1)
		}
	}
	return m
}

// MaxInteriorMultiplicity returns the highest multiplicity of a knot value
// other than the first and last one, or 0 if there is none.
func MaxInteriorMultiplicity(s Sequence) int {
	m := Multiplicities(s)
	if m.Size() <= 2 {
		return 0
	}
	most := 0
	it := m.Iterator()
	it.Next() // skip first
	for i := 1; i < m.Size()-1 && it.Next(); i++ {
		if c := it.Value().(int); c > most {
			most = c
		}
	}
	return most
}
