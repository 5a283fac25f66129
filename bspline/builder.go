package bspline

import (
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/knots"
	"github.com/npillmayer/splines/space"
)

// Builder assembles a B-spline like a Director does, but none of its steps
// fails. The first error encountered is remembered, all following steps
// become no-ops, and the error is reported by Build. For the same sequence
// of calls, Builder and Director produce the same curve or the same error.
//
// The usual way to create a curve:
//
//	curve, err := bspline.NewBuilder[splines.Pair]().
//	    Clamped().
//	    Elements(points).
//	    Equidistant().Degree(3).Normalized().
//	    Dynamic().
//	    Build()
type Builder[V splines.Vector[V]] struct {
	director *Director[V]
	err      error
}

// NewBuilder creates an empty builder for an open curve. The zero value of
// Builder is ready to use as well.
func NewBuilder[V splines.Vector[V]]() *Builder[V] {
	return &Builder[V]{director: NewDirector[V]()}
}

func (b *Builder[V]) dir() *Director[V] {
	if b.director == nil {
		b.director = NewDirector[V]()
	}
	return b.director
}

// do applies a step unless an error has already occurred.
func (b *Builder[V]) do(step func(*Director[V]) error) *Builder[V] {
	if b.err == nil {
		b.err = step(b.dir())
	}
	return b
}

// pure wraps an infallible director step.
func (b *Builder[V]) pure(step func(*Director[V]) *Director[V]) *Builder[V] {
	return b.do(func(d *Director[V]) error {
		step(d)
		return nil
	})
}

// Err returns the first error encountered so far.
func (b *Builder[V]) Err() error {
	return b.err
}

// Open selects the open boundary mode, see Director.Open.
func (b *Builder[V]) Open() *Builder[V] {
	return b.pure((*Director[V]).Open)
}

// Clamped selects the clamped boundary mode, see Director.Clamped.
func (b *Builder[V]) Clamped() *Builder[V] {
	return b.pure((*Director[V]).Clamped)
}

// Legacy selects the legacy boundary mode, see Director.Legacy.
func (b *Builder[V]) Legacy() *Builder[V] {
	return b.pure((*Director[V]).Legacy)
}

// Mode sets the boundary mode.
func (b *Builder[V]) Mode(m Mode) *Builder[V] {
	return b.pure(func(d *Director[V]) *Director[V] { return d.Mode(m) })
}

// Elements sets the control elements of an unweighted curve.
func (b *Builder[V]) Elements(elements []V) *Builder[V] {
	return b.pure(func(d *Director[V]) *Director[V] { return d.Elements(elements) })
}

// ElementsWithWeights sets the control elements of a rational curve.
func (b *Builder[V]) ElementsWithWeights(elements []splines.Weighted[V]) *Builder[V] {
	return b.do(func(d *Director[V]) error {
		_, err := d.ElementsWithWeights(elements)
		return err
	})
}

// ElementsHomogeneous sets homogeneous control elements of a rational curve.
func (b *Builder[V]) ElementsHomogeneous(elements []splines.Homogeneous[V]) *Builder[V] {
	return b.do(func(d *Director[V]) error {
		_, err := d.ElementsHomogeneous(elements)
		return err
	})
}

// Knots sets explicit knots, see Director.Knots.
func (b *Builder[V]) Knots(k []float64) *Builder[V] {
	return b.do(func(d *Director[V]) error {
		_, err := d.Knots(k)
		return err
	})
}

// KnotSequence sets explicit knots from any sequence, see Director.KnotSequence.
func (b *Builder[V]) KnotSequence(seq knots.Sequence) *Builder[V] {
	return b.do(func(d *Director[V]) error {
		_, err := d.KnotSequence(seq)
		return err
	})
}

// Equidistant selects evenly spaced knots.
func (b *Builder[V]) Equidistant() *Builder[V] {
	return b.pure((*Director[V]).Equidistant)
}

// Degree sets the degree of a curve with equidistant knots.
func (b *Builder[V]) Degree(degree int) *Builder[V] {
	return b.pure(func(d *Director[V]) *Director[V] { return d.Degree(degree) })
}

// Quantity sets the number of equidistant knots.
func (b *Builder[V]) Quantity(quantity int) *Builder[V] {
	return b.pure(func(d *Director[V]) *Director[V] { return d.Quantity(quantity) })
}

// Domain lets equidistant knots span [start,end].
func (b *Builder[V]) Domain(start, end float64) *Builder[V] {
	return b.pure(func(d *Director[V]) *Director[V] { return d.Domain(start, end) })
}

// Normalized lets equidistant knots span [0,1].
func (b *Builder[V]) Normalized() *Builder[V] {
	return b.pure((*Director[V]).Normalized)
}

// Distance lets equidistant knots begin at start, spaced by step.
func (b *Builder[V]) Distance(start, step float64) *Builder[V] {
	return b.pure(func(d *Director[V]) *Director[V] { return d.Distance(start, step) })
}

// Constant selects a workspace of fixed capacity.
func (b *Builder[V]) Constant(capacity int) *Builder[V] {
	return b.pure(func(d *Director[V]) *Director[V] { return d.Constant(capacity) })
}

// Dynamic selects a workspace allocating per evaluation.
func (b *Builder[V]) Dynamic() *Builder[V] {
	return b.pure((*Director[V]).Dynamic)
}

// Workspace sets a custom workspace for unweighted elements.
func (b *Builder[V]) Workspace(s space.Space[V]) *Builder[V] {
	return b.pure(func(d *Director[V]) *Director[V] { return d.Workspace(s) })
}

// HomogeneousWorkspace sets a custom workspace for weighted elements.
func (b *Builder[V]) HomogeneousWorkspace(s space.Space[splines.Homogeneous[V]]) *Builder[V] {
	return b.pure(func(d *Director[V]) *Director[V] { return d.HomogeneousWorkspace(s) })
}

// Build reports the first error encountered, or validates the
// configuration and creates the curve, see Director.Build.
func (b *Builder[V]) Build() (Curve[V], error) {
	if b.err != nil {
		tracer().Infof("b-spline construction failed early: %v", b.err)
		return nil, b.err
	}
	return b.dir().Build()
}
