/*
Package splines implements element types for parametric curves: scalars,
2D pairs, colors and homogeneous (weighted) points. All of them may be
blended affinely, which is everything a B-spline evaluator needs from them.

Curves themselves live in sub-package bspline; knot sequences in package
knots and scratch space for evaluation in package space.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package splines

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}

// === Numeric Helpers =======================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Curve Elements ========================================================

// Vector is the constraint for curve elements. Elements have to support
// affine combination and scaling, i.e. they behave like members of a
// vector space.
//
// Lerp returns (1-t)⋅v + t⋅w. Implementations should compute exactly this
// form (and not v + t⋅(w-v)), so that blending with t = 0 or t = 1 does not
// introduce rounding drift.
type Vector[V any] interface {
	Lerp(w V, t float64) V
	Scale(f float64) V
}

// Float is the simplest curve element, a scalar.
type Float float64

// Lerp blends x and y.
func (x Float) Lerp(y Float, t float64) Float {
	return Float((1-t)*float64(x) + t*float64(y))
}

// Scale returns f⋅x.
func (x Float) Scale(f float64) Float {
	return Float(float64(x) * f)
}

// Floats is a quick notation for converting a slice of float64 to curve elements.
func Floats(x ...float64) []Float {
	r := make([]Float, len(x))
	for i, f := range x {
		r[i] = Float(f)
	}
	return r
}
