package splines

import (
	"fmt"
	"math"
)

// === Pair Data Type ========================================================

// Pair is a 2D-point, stored as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", p.X(), p.Y())
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs, tolerating differences below Epsilon.
func (p Pair) Equal(q Pair) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y())
}

// Lerp blends p and q component-wise.
func (p Pair) Lerp(q Pair, t float64) Pair {
	return P((1-t)*p.X()+t*q.X(), (1-t)*p.Y()+t*q.Y())
}

// Scale returns f⋅p.
func (p Pair) Scale(f float64) Pair {
	return P(p.X()*f, p.Y()*f)
}

// Dist returns the euclidian distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return math.Hypot(q.X()-p.X(), q.Y()-p.Y())
}

// === Affine Transformations ================================================

// AT is an affine transform, a 3x3 matrix flattened by rows. The last row
// is always (0,0,1).
type AT [9]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translation transform. Translate a point by p.
func Translation(p Pair) AT {
	return AT{1, 0, p.X(), 0, 1, p.Y(), 0, 0, 1}
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
}

// Scaling transform, independently in x and y.
func Scaling(sx, sy float64) AT {
	return AT{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformations to a new one, first applying m, then n.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += n[row*3+k] * m[k*3+col]
			}
			o[row*3+col] = s
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}

// TransformAll transforms a slice of pairs, returning a new slice.
func (m AT) TransformAll(pts []Pair) []Pair {
	r := make([]Pair, len(pts))
	for i, p := range pts {
		r[i] = m.Transform(p)
	}
	return r
}
