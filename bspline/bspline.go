package bspline

import (
	"fmt"

	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/knots"
	"github.com/npillmayer/splines/space"
)

// BSpline is a B-spline curve over control elements of type V.
// A BSpline is immutable and may be evaluated concurrently.
type BSpline[V splines.Vector[V]] struct {
	elements []V
	knots    knots.Sequence
	degree   int
	space    space.Space[V]
	min, max float64 // domain
}

// New creates a B-spline from control elements and knots in open
// convention, i.e. the degree is len(knots) − len(elements) + 1.
// Adapted knot sequences (knots.Clamped, knots.Legacy) may be handed in as
// well. The workspace has to hold at least degree+1 elements.
//
// Elements are copied, knots are not.
func New[V splines.Vector[V]](elements []V, seq knots.Sequence, ws space.Space[V]) (*BSpline[V], error) {
	n := len(elements)
	if n < 2 {
		return nil, fmt.Errorf("%w: have %d, need at least 2", ErrTooFewElements, n)
	}
	if seq == nil || seq.Len() < 2 {
		m := 0
		if seq != nil {
			m = seq.Len()
		}
		return nil, fmt.Errorf("%w: have %d, need at least 2", ErrInvalidNumberKnots, m)
	}
	if _, err := knots.NewSorted(seq); err != nil {
		return nil, err
	}
	m := seq.Len()
	d := m - n + 1
	if d < 1 {
		return nil, fmt.Errorf("%w: %d knots for %d elements result in degree %d",
			ErrInvalidDegree, m, n, d)
	}
	if d >= n {
		return nil, fmt.Errorf("%w: %d knots result in degree %d, which needs more than %d elements",
			ErrInvalidNumberKnots, m, d, n)
	}
	if ws == nil {
		return nil, fmt.Errorf("%w: workspace", ErrIncomplete)
	}
	if ws.Len() < d+1 {
		return nil, fmt.Errorf("%w: degree %d needs %d, have %d",
			ErrTooSmallWorkspace, d, d+1, ws.Len())
	}
	b := &BSpline[V]{
		elements: append([]V(nil), elements...),
		knots:    seq,
		degree:   d,
		space:    ws,
		min:      seq.At(d - 1),
		max:      seq.At(m - d),
	}
	return b, nil
}

// Eval evaluates the curve at parameter t. Parameters outside the domain
// are clamped to the nearest domain bound. NaN cannot be clamped; Eval(NaN)
// does not panic, but blends with NaN factors, so the result carries NaN
// components.
//
// Evaluation uses De Boor's algorithm. Repeated knots result in zero
// denominators, which are treated as a blending factor of 0.
func (b *BSpline[V]) Eval(t float64) V {
	t = b.clamp(t)
	d := b.degree
	s := knots.Span(b.knots, d-1, b.knots.Len()-d-1, t)
	ws := b.space.Workspace()
	copy(ws[:d+1], b.elements[s+1-d:s+2])
	for r := 1; r <= d; r++ {
		for i := d; i >= r; i-- {
			lo := b.knots.At(s - d + i)
			alpha := 0.0
			if den := b.knots.At(s+i-r+1) - lo; den != 0 {
				alpha = (t - lo) / den
			}
			switch alpha {
			case 0:
				ws[i] = ws[i-1]
			case 1: // ws[i] stays
			default:
				ws[i] = ws[i-1].Lerp(ws[i], alpha)
			}
		}
	}
	v := ws[d]
	b.space.Recycle(ws)
	return v
}

func (b *BSpline[V]) clamp(t float64) float64 {
	if t < b.min {
		return b.min
	}
	if t > b.max {
		return b.max
	}
	return t
}

// Domain returns the parameter interval of the curve.
func (b *BSpline[V]) Domain() (float64, float64) {
	return b.min, b.max
}

// Degree returns the polynomial degree of the curve segments.
func (b *BSpline[V]) Degree() int {
	return b.degree
}

// Len returns the number of control elements.
func (b *BSpline[V]) Len() int {
	return len(b.elements)
}

// Elements returns a copy of the control elements.
func (b *BSpline[V]) Elements() []V {
	return append([]V(nil), b.elements...)
}

// Knots returns the knot sequence, after adaption to open convention.
func (b *BSpline[V]) Knots() knots.Sequence {
	return b.knots
}

// Workspace returns the workspace provider of the curve.
func (b *BSpline[V]) Workspace() space.Space[V] {
	return b.space
}
