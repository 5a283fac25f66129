/*
Package polygon implements control polygons of 2D curves.

A B-spline lies within the convex hull of its control points, and clients
frequently need the control polygon itself for drawing, clipping, or quick
rejection tests. Polygons are built like paths:

	pg := polygon.NullPolygon().Knot(splines.P(0, 0)).Knot(splines.P(1, 3)).Knot(splines.P(3, 0)).Cycle()

Containment and bounding boxes are computed with polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
)

// L traces with key 'splines'.
func L() tracing.Trace {
	return tracing.Select("splines")
}

// Polygon is a sequence of points connected by straight lines, either open
// or closed (a cycle).
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls. Calling Cycle() or End() completes the polygon.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates an open polygon from a sequence of points, e.g. the
// control elements of a curve.
func FromPoints(pts []splines.Pair) *Polygon {
	pg := NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg.End()
}

// Box creates a rectangular cycle, given two opposite corners. The corners
// are normalized, the polygon runs counter-clockwise from the lower left.
func Box(p1, p2 splines.Pair) *Polygon {
	x0, x1 := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	y0, y1 := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullPolygon().Knot(splines.P(x0, y0)).Knot(splines.P(x1, y0)).
		Knot(splines.P(x1, y1)).Knot(splines.P(x0, y1)).Cycle()
}

// Knot appends a point. Part of builder functionality.
func (pg *Polygon) Knot(p splines.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// End completes an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of points.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns the point at position (i mod N). An empty polygon has no
// points; Pt then returns the origin.
func (pg *Polygon) Pt(i int) splines.Pair {
	n := pg.N()
	if n == 0 {
		return splines.Origin
	}
	i %= n
	if i < 0 {
		i += n
	}
	p := pg.contour[i]
	return splines.P(p.X, p.Y)
}

// Points returns a copy of all points.
func (pg *Polygon) Points() []splines.Pair {
	pts := make([]splines.Pair, pg.N())
	for i, p := range pg.contour {
		pts[i] = splines.P(p.X, p.Y)
	}
	return pts
}

// Length returns the sum of the edge lengths, including the closing edge
// of a cycle.
func (pg *Polygon) Length() float64 {
	var l float64
	for i := 1; i < pg.N(); i++ {
		l += pg.Pt(i - 1).Dist(pg.Pt(i))
	}
	if pg.cycle && pg.N() > 2 {
		l += pg.Pt(pg.N() - 1).Dist(pg.Pt(0))
	}
	return l
}

// BoundingBox returns the smallest axis-parallel box containing all points.
// The bounding box of an empty polygon is nil.
func (pg *Polygon) BoundingBox() *Polygon {
	if pg.N() == 0 {
		return nil
	}
	r := pg.contour.BoundingBox()
	return Box(splines.P(r.Min.X, r.Min.Y), splines.P(r.Max.X, r.Max.Y))
}

// Contains is a predicate: does p lie inside the area enclosed by pg?
// Open polygons enclose nothing. Results for points on an edge are
// undetermined.
func (pg *Polygon) Contains(p splines.Pair) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Transform applies an affine transformation to all points, returning a
// new polygon.
func (pg *Polygon) Transform(m splines.AT) *Polygon {
	t := &Polygon{cycle: pg.cycle}
	for _, p := range m.TransformAll(pg.Points()) {
		t.Knot(p)
	}
	return t
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	if pg == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(pg.Pt(i).String())
	}
	if pg.cycle {
		if pg.N() > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString("cycle")
	}
	return sb.String()
}

// String is part of interface fmt.Stringer.
func (pg *Polygon) String() string {
	return fmt.Sprintf("polygon{%d points, cycle=%v}", pg.N(), pg.cycle)
}
