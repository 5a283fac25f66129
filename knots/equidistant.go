package knots

// Equidistant is a sequence of evenly spaced knots. Knot values are
// calculated on access, no memory proportional to the number of knots is
// used.
type Equidistant struct {
	n     int
	start float64
	step  float64
	end   float64
	fixed bool // end given explicitly; At(n-1) returns it exactly
}

// NewEquidistant creates n knots spanning [start,end], i.e. with a step of
// (end-start)/(n-1). The first and last knot are exactly start and end.
func NewEquidistant(n int, start, end float64) Equidistant {
	e := Equidistant{n: n, start: start, end: end, fixed: true}
	if n > 1 {
		e.step = (end - start) / float64(n-1)
	}
	return e
}

// EquidistantStep creates n knots, beginning at start, with a distance of
// step between neighbouring knots.
func EquidistantStep(n int, start, step float64) Equidistant {
	return Equidistant{n: n, start: start, step: step}
}

// Normalized creates n knots spanning [0,1].
func Normalized(n int) Equidistant {
	return NewEquidistant(n, 0, 1)
}

// Len is part of interface Sequence.
func (e Equidistant) Len() int {
	return e.n
}

// At is part of interface Sequence.
func (e Equidistant) At(i int) float64 {
	if e.fixed && i == e.n-1 {
		return e.end
	}
	return e.start + float64(i)*e.step
}

// Step returns the distance between neighbouring knots.
func (e Equidistant) Step() float64 {
	return e.step
}
