package bspline

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/knots"
	"github.com/npillmayer/splines/space"
)

// Director assembles a B-spline step by step. Steps which may fail return
// an error immediately; all others are plain assignments and return the
// director for chaining. Build re-validates the complete configuration.
//
// Before building, clients have to set
//
//   - the elements, with Elements, ElementsWithWeights or ElementsHomogeneous,
//   - the knots, either explicitly with Knots, or with Equidistant followed
//     by Degree or Quantity and by Domain, Normalized or Distance,
//   - a workspace, with Constant, Dynamic or a custom one.
//
// The boundary mode defaults to Open.
//
// A Director is meant to be used by a single goroutine.
type Director[V splines.Vector[V]] struct {
	mode        Mode
	weighted    bool
	hasElements bool
	elements    []V
	homogeneous []splines.Homogeneous[V]
	explicit    knots.Sequence // sorted, as supplied by the client
	equi        *equidistant
	ws          workspace[V]
}

// Equidistant knots are described by a count and a range.
type equidistant struct {
	byDegree   bool
	byQuantity bool
	count      int // degree or quantity
	rng        rangeKind
	a, b       float64 // start/end or start/step
}

type rangeKind int

const (
	noRange rangeKind = iota
	domainRange
	normalizedRange
	distanceRange
)

type workspaceKind int

const (
	noWorkspace workspaceKind = iota
	constWorkspace
	dynamicWorkspace
	customWorkspace
	customHomogeneousWorkspace
)

type workspace[V splines.Vector[V]] struct {
	kind     workspaceKind
	capacity int
	custom   space.Space[V]
	customH  space.Space[splines.Homogeneous[V]]
}

// NewDirector creates an empty director for an open curve.
func NewDirector[V splines.Vector[V]]() *Director[V] {
	return &Director[V]{}
}

// Open selects the open boundary mode: knots are used as given.
func (d *Director[V]) Open() *Director[V] {
	d.mode = Open
	return d
}

// Clamped selects the clamped boundary mode: the first and last knot are
// virtually repeated so that the curve starts and ends at its first and
// last element.
func (d *Director[V]) Clamped() *Director[V] {
	d.mode = Clamped
	return d
}

// Legacy selects the legacy boundary mode, accepting knots in the
// classical textbook convention.
func (d *Director[V]) Legacy() *Director[V] {
	d.mode = Legacy
	return d
}

// Mode sets the boundary mode. Build fails with ErrInvalidConfig for
// values other than Open, Clamped and Legacy.
func (d *Director[V]) Mode(m Mode) *Director[V] {
	d.mode = m
	return d
}

// Elements sets the control elements of an unweighted curve.
func (d *Director[V]) Elements(elements []V) *Director[V] {
	d.elements = append([]V(nil), elements...)
	d.homogeneous = nil
	d.weighted = false
	d.hasElements = true
	return d
}

// ElementsWithWeights sets the control elements of a rational curve.
// Elements with weight 0 denote directions (points at infinity).
// It fails with ErrEmptyGenerator for an empty sequence.
func (d *Director[V]) ElementsWithWeights(elements []splines.Weighted[V]) (*Director[V], error) {
	h, err := Lift(elements)
	if err != nil {
		return d, err
	}
	d.setHomogeneous(h)
	return d, nil
}

// ElementsHomogeneous sets the control elements of a rational curve,
// already in homogeneous coordinates.
// It fails with ErrEmptyGenerator for an empty sequence.
func (d *Director[V]) ElementsHomogeneous(elements []splines.Homogeneous[V]) (*Director[V], error) {
	if len(elements) == 0 {
		return d, fmt.Errorf("%w: empty sequence", ErrEmptyGenerator)
	}
	d.setHomogeneous(append([]splines.Homogeneous[V](nil), elements...))
	return d, nil
}

func (d *Director[V]) setHomogeneous(h []splines.Homogeneous[V]) {
	d.homogeneous = h
	d.elements = nil
	d.weighted = true
	d.hasElements = true
}

// Knots sets explicit knots. The interpretation of knots depends on the
// boundary mode, which therefore should be selected beforehand.
//
// Knots fails with ErrNotSorted if the knots are not non-decreasing. In
// clamped mode with elements already set, it fails with ErrInvalidDegree if
// there are more knots than elements. In legacy mode it fails with
// ErrInvalidNumberKnots for less than two knots or knots not spanning an
// interval.
func (d *Director[V]) Knots(k []float64) (*Director[V], error) {
	return d.KnotSequence(knots.Slice(append([]float64(nil), k...)))
}

// KnotSequence is like Knots, but accepts any knot sequence. The sequence
// is not copied and must not change afterwards.
func (d *Director[V]) KnotSequence(seq knots.Sequence) (*Director[V], error) {
	sorted, err := knots.NewSorted(seq)
	if err != nil {
		return d, err
	}
	if err := d.checkKnots(sorted); err != nil {
		return d, err
	}
	d.explicit = sorted
	d.equi = nil
	return d, nil
}

// checkKnots performs the checks possible before elements and workspace are
// known for sure.
func (d *Director[V]) checkKnots(seq knots.Sequence) error {
	switch d.mode {
	case Clamped:
		if d.hasElements {
			_, err := d.mode.boundary().adapt(seq, d.count())
			return err
		}
	case Legacy:
		_, err := d.mode.boundary().adapt(seq, d.count())
		return err
	}
	return nil
}

// Equidistant selects evenly spaced knots, which are not stored. Has to be
// followed by Degree or Quantity, and by Domain, Normalized or Distance.
func (d *Director[V]) Equidistant() *Director[V] {
	if d.equi == nil {
		d.equi = &equidistant{}
	}
	d.explicit = nil
	return d
}

// Degree sets the degree of a curve with equidistant knots. The number of
// knots is derived from the degree, the number of elements and the mode.
func (d *Director[V]) Degree(degree int) *Director[V] {
	e := d.Equidistant().equi
	e.byDegree, e.byQuantity, e.count = true, false, degree
	return d
}

// Quantity sets the number of equidistant knots. The degree is derived
// from it.
func (d *Director[V]) Quantity(quantity int) *Director[V] {
	e := d.Equidistant().equi
	e.byDegree, e.byQuantity, e.count = false, true, quantity
	return d
}

// Domain lets equidistant knots span [start,end].
func (d *Director[V]) Domain(start, end float64) *Director[V] {
	e := d.Equidistant().equi
	e.rng, e.a, e.b = domainRange, start, end
	return d
}

// Normalized lets equidistant knots span [0,1].
func (d *Director[V]) Normalized() *Director[V] {
	e := d.Equidistant().equi
	e.rng, e.a, e.b = normalizedRange, 0, 1
	return d
}

// Distance lets equidistant knots begin at start, spaced by step.
func (d *Director[V]) Distance(start, step float64) *Director[V] {
	e := d.Equidistant().equi
	e.rng, e.a, e.b = distanceRange, start, step
	return d
}

// Constant selects a workspace of fixed capacity, which has to be at least
// degree+1. Evaluation then reuses buffers.
func (d *Director[V]) Constant(capacity int) *Director[V] {
	d.ws = workspace[V]{kind: constWorkspace, capacity: capacity}
	return d
}

// Dynamic selects a workspace sized on construction of the curve, which
// allocates a new buffer for every evaluation.
func (d *Director[V]) Dynamic() *Director[V] {
	d.ws = workspace[V]{kind: dynamicWorkspace}
	return d
}

// Workspace sets a custom workspace for unweighted elements.
func (d *Director[V]) Workspace(s space.Space[V]) *Director[V] {
	d.ws = workspace[V]{kind: customWorkspace, custom: s}
	return d
}

// HomogeneousWorkspace sets a custom workspace for weighted elements.
func (d *Director[V]) HomogeneousWorkspace(s space.Space[splines.Homogeneous[V]]) *Director[V] {
	d.ws = workspace[V]{kind: customHomogeneousWorkspace, customH: s}
	return d
}

// Build validates the configuration and creates the curve, which is a
// *BSpline[V] for unweighted and a *Rational[V] for weighted elements.
// Missing fields are reported as ErrIncomplete.
func (d *Director[V]) Build() (Curve[V], error) {
	c, err := d.build()
	if err != nil {
		tracer().Infof("b-spline construction failed: %v", err)
		return nil, err
	}
	return c, nil
}

func (d *Director[V]) build() (Curve[V], error) {
	if err := d.complete(); err != nil {
		return nil, err
	}
	if !d.mode.valid() {
		return nil, fmt.Errorf("%w: unknown boundary mode %d", ErrInvalidConfig, int(d.mode))
	}
	n := d.count()
	if n == 0 {
		if d.weighted {
			return nil, ErrEmptyGenerator
		}
		return nil, fmt.Errorf("%w: have none", ErrTooFewElements)
	}
	seq, err := d.knotSequence(n)
	if err != nil {
		return nil, err
	}
	bound := d.mode.boundary()
	adapted, err := bound.adapt(seq, n)
	if err != nil {
		return nil, err
	}
	deg := bound.degree(n, seq.Len())
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		tracer().Debugf("building %s b-spline of degree %d: %d elements, %d knots, max. interior multiplicity %d",
			d.mode, deg, n, seq.Len(), knots.MaxInteriorMultiplicity(adapted))
	}
	if d.weighted {
		ws, err := homogeneousSpace(d.ws, adapted.Len()-n+2)
		if err != nil {
			return nil, err
		}
		return NewRational(d.homogeneous, adapted, ws)
	}
	ws, err := elementSpace(d.ws, adapted.Len()-n+2)
	if err != nil {
		return nil, err
	}
	return New(d.elements, adapted, ws)
}

func (d *Director[V]) count() int {
	if d.weighted {
		return len(d.homogeneous)
	}
	return len(d.elements)
}

// complete checks for required fields which have not been set.
func (d *Director[V]) complete() error {
	if !d.hasElements {
		return fmt.Errorf("%w: elements not set", ErrIncomplete)
	}
	if d.explicit == nil && d.equi == nil {
		return fmt.Errorf("%w: knots not set", ErrIncomplete)
	}
	if d.equi != nil {
		if !d.equi.byDegree && !d.equi.byQuantity {
			return fmt.Errorf("%w: equidistant knots need a degree or a quantity", ErrIncomplete)
		}
		if d.equi.rng == noRange {
			return fmt.Errorf("%w: equidistant knots need a domain", ErrIncomplete)
		}
	}
	if d.ws.kind == noWorkspace {
		return fmt.Errorf("%w: workspace not set", ErrIncomplete)
	}
	return nil
}

// knotSequence returns the sorted client knots.
func (d *Director[V]) knotSequence(n int) (knots.Sequence, error) {
	if d.explicit != nil {
		return d.explicit, nil
	}
	e := d.equi
	count := e.count
	if e.byDegree {
		if e.count < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, e.count)
		}
		count = d.mode.boundary().knotCount(n, e.count)
	}
	if count < 2 {
		return nil, fmt.Errorf("%w: %d equidistant knots", ErrInvalidNumberKnots, count)
	}
	var seq knots.Sequence
	switch e.rng {
	case domainRange, normalizedRange:
		seq = knots.NewEquidistant(count, e.a, e.b)
	case distanceRange:
		seq = knots.EquidistantStep(count, e.a, e.b)
	}
	sorted, err := knots.NewSorted(seq)
	if err != nil {
		return nil, err
	}
	return sorted, nil
}

func elementSpace[V splines.Vector[V]](ws workspace[V], dynLen int) (space.Space[V], error) {
	switch ws.kind {
	case constWorkspace:
		return space.NewConst[V](ws.capacity), nil
	case dynamicWorkspace:
		return space.NewDynamic[V](dynLen), nil
	case customWorkspace:
		if ws.custom == nil {
			return nil, fmt.Errorf("%w: workspace is nil", ErrIncomplete)
		}
		return ws.custom, nil
	}
	return nil, fmt.Errorf("%w: homogeneous workspace for unweighted elements", ErrWorkspaceMismatch)
}

func homogeneousSpace[V splines.Vector[V]](ws workspace[V], dynLen int) (space.Space[splines.Homogeneous[V]], error) {
	switch ws.kind {
	case constWorkspace:
		return space.NewConst[splines.Homogeneous[V]](ws.capacity), nil
	case dynamicWorkspace:
		return space.NewDynamic[splines.Homogeneous[V]](dynLen), nil
	case customHomogeneousWorkspace:
		if ws.customH == nil {
			return nil, fmt.Errorf("%w: workspace is nil", ErrIncomplete)
		}
		return ws.customH, nil
	}
	return nil, fmt.Errorf("%w: element workspace for weighted elements", ErrWorkspaceMismatch)
}
