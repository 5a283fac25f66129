package splines

import (
	"errors"
	"fmt"
)

// ErrWeightsMismatch is returned if elements and weights differ in length.
var ErrWeightsMismatch = errors.New("number of weights does not match number of elements")

// Homogeneous is an element lifted into homogeneous coordinates:
// (v⋅w, w). Blending homogeneous points and projecting back afterwards
// results in rational interpolation.
//
// A weight of 0 denotes a point at infinity. Value then holds a direction
// rather than a position; this is legitimate and not an error.
type Homogeneous[V Vector[V]] struct {
	Value  V       // element already multiplied by Weight
	Weight float64 // 0 for points at infinity
}

// Lift returns the homogeneous representation of v with weight 1.
func Lift[V Vector[V]](v V) Homogeneous[V] {
	return Homogeneous[V]{Value: v, Weight: 1}
}

// WeightedPoint returns (v⋅w, w). For w = 0 the element is interpreted as
// a direction at infinity and kept unscaled.
func WeightedPoint[V Vector[V]](v V, w float64) Homogeneous[V] {
	if w == 0 {
		return Infinity(v)
	}
	return Homogeneous[V]{Value: v.Scale(w), Weight: w}
}

// Infinity returns the point at infinity in direction dir.
func Infinity[V Vector[V]](dir V) Homogeneous[V] {
	return Homogeneous[V]{Value: dir}
}

// Lerp blends h and g, including their weights.
func (h Homogeneous[V]) Lerp(g Homogeneous[V], t float64) Homogeneous[V] {
	return Homogeneous[V]{
		Value:  h.Value.Lerp(g.Value, t),
		Weight: (1-t)*h.Weight + t*g.Weight,
	}
}

// Scale scales value and weight, which leaves the projected point unchanged.
func (h Homogeneous[V]) Scale(f float64) Homogeneous[V] {
	return Homogeneous[V]{Value: h.Value.Scale(f), Weight: h.Weight * f}
}

// IsInfinite is a predicate: is h a point at infinity?
func (h Homogeneous[V]) IsInfinite() bool {
	return h.Weight == 0
}

// Project divides by the weight. For points at infinity the direction is
// returned unchanged and ok is false.
func (h Homogeneous[V]) Project() (v V, ok bool) {
	if h.IsInfinite() {
		return h.Value, false
	}
	return h.Value.Scale(1 / h.Weight), true
}

// Weighted is a control element together with its weight, as supplied by
// clients. It is lifted to homogeneous coordinates on construction of a
// curve.
type Weighted[V Vector[V]] struct {
	Elem   V
	Weight float64
}

// W is a quick notation for constructing a weighted element.
func W[V Vector[V]](v V, w float64) Weighted[V] {
	return Weighted[V]{Elem: v, Weight: w}
}

// Homogeneous lifts a weighted element, see WeightedPoint.
func (w Weighted[V]) Homogeneous() Homogeneous[V] {
	return WeightedPoint(w.Elem, w.Weight)
}

// WithWeights zips elements and weights.
func WithWeights[V Vector[V]](elems []V, weights []float64) ([]Weighted[V], error) {
	if len(elems) != len(weights) {
		return nil, fmt.Errorf("%w: %d elements, %d weights", ErrWeightsMismatch,
			len(elems), len(weights))
	}
	r := make([]Weighted[V], len(elems))
	for i, e := range elems {
		r[i] = Weighted[V]{Elem: e, Weight: weights[i]}
	}
	return r, nil
}
