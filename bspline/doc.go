/*
Package bspline builds and evaluates B-spline curves over generic elements.

A B-spline of degree d blends d+1 neighbouring control elements for every
parameter value, weighted by piecewise polynomials which are defined by a
knot sequence. Elements may be anything satisfying splines.Vector: scalars,
pairs, colors. Weighted elements result in rational curves (NURBS).

Curves are assembled with a Director, which reports errors immediately, or
with a Builder, which remembers the first error and reports it from Build:

	curve, err := bspline.NewBuilder[splines.Float]().
	    Clamped().
	    Elements(splines.Floats(1, 3, 7)).
	    Knots([]float64{0, 1}).
	    Constant(3).
	    Build()

# Knot conventions

Given n control elements, the degree of a curve follows from the number of
knots handed in and the boundary mode:

	Open      m knots as given                 d = m − n + 1
	Clamped   L knots, ends repeated d−1 times  d = n − L + 1
	Legacy    m classical knots                 d = m − n − 1

Open knots omit the outermost knot at either end of the classical textbook
convention, as these never influence the curve. Legacy accepts the
textbook convention directly. Clamped knots make the curve start and end
at its first and last control element. The parameter domain of a curve
with knots u (after adaption) is [u(d−1), u(m−d)].

Evaluation clamps parameters to the domain; it never fails and never
modifies the curve, so curves may be evaluated concurrently. The one
parameter which cannot be clamped is NaN, which results in NaN components.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bspline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}
