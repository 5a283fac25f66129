package bspline

import (
	"gonum.org/v1/gonum/floats"
)

// Curve is what the builders produce: either a *BSpline[V] or a
// *Rational[V].
type Curve[V any] interface {
	Eval(t float64) V
	Domain() (float64, float64)
	Degree() int
}

// Params returns count evenly spaced parameters covering the domain of c,
// including both domain bounds.
func Params[V any](c Curve[V], count int) []float64 {
	if count <= 0 {
		return nil
	}
	lo, hi := c.Domain()
	if count == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, count), lo, hi)
}

// Sample evaluates c at count evenly spaced parameters, see Params.
func Sample[V any](c Curve[V], count int) []V {
	ts := Params(c, count)
	r := make([]V, len(ts))
	for i, t := range ts {
		r[i] = c.Eval(t)
	}
	return r
}
