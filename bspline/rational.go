package bspline

import (
	"fmt"

	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/knots"
	"github.com/npillmayer/splines/space"
)

// Rational is a B-spline over weighted control elements. Elements are
// blended in homogeneous coordinates and projected back once per
// evaluation.
//
// Control elements with weight 0 are points at infinity, i.e. directions.
// Where the blended weight of a parameter becomes 0, the curve itself is at
// infinity; Eval then returns the blended direction unprojected, and
// EvalHomogeneous lets clients tell these cases apart.
type Rational[V splines.Vector[V]] struct {
	inner *BSpline[splines.Homogeneous[V]]
}

// NewRational creates a rational B-spline from homogeneous control elements.
// Knots and workspace follow the rules of New.
func NewRational[V splines.Vector[V]](elements []splines.Homogeneous[V], seq knots.Sequence,
	ws space.Space[splines.Homogeneous[V]]) (*Rational[V], error) {
	//
	if len(elements) == 0 {
		return nil, ErrEmptyGenerator
	}
	inner, err := New(elements, seq, ws)
	if err != nil {
		return nil, err
	}
	return &Rational[V]{inner: inner}, nil
}

// Lift converts weighted elements to homogeneous coordinates.
func Lift[V splines.Vector[V]](elements []splines.Weighted[V]) ([]splines.Homogeneous[V], error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrEmptyGenerator)
	}
	h := make([]splines.Homogeneous[V], len(elements))
	for i, e := range elements {
		h[i] = e.Homogeneous()
	}
	return h, nil
}

// Eval evaluates the curve at t and projects the result. If the result is
// at infinity, its direction is returned. See BSpline.Eval for parameters
// outside the domain and NaN.
func (r *Rational[V]) Eval(t float64) V {
	v, _ := r.inner.Eval(t).Project()
	return v
}

// EvalHomogeneous evaluates the curve at t without projecting the result.
func (r *Rational[V]) EvalHomogeneous(t float64) splines.Homogeneous[V] {
	return r.inner.Eval(t)
}

// Domain returns the parameter interval of the curve.
func (r *Rational[V]) Domain() (float64, float64) {
	return r.inner.Domain()
}

// Degree returns the polynomial degree of the curve segments.
func (r *Rational[V]) Degree() int {
	return r.inner.Degree()
}

// Len returns the number of control elements.
func (r *Rational[V]) Len() int {
	return r.inner.Len()
}

// Elements returns a copy of the homogeneous control elements.
func (r *Rational[V]) Elements() []splines.Homogeneous[V] {
	return r.inner.Elements()
}

// Knots returns the knot sequence, after adaption to open convention.
func (r *Rational[V]) Knots() knots.Sequence {
	return r.inner.Knots()
}
