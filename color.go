package splines

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a curve element for color gradients. Blending happens
// component-wise in RGB space, which keeps colors affine (and therefore
// usable with weights); for perceptual blending convert the results with
// go-colorful's Lab functions.
type Color struct {
	colorful.Color
}

// ColorHex creates a color from a hex string of the form "#rrggbb".
func ColorHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		tracer().Infof("cannot parse color %q: %v", s, err)
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{c}, nil
}

// RGB creates a color from its components, each in [0,1].
func RGB(r, g, b float64) Color {
	return Color{colorful.Color{R: r, G: g, B: b}}
}

// Lerp blends c and d.
func (c Color) Lerp(d Color, t float64) Color {
	return RGB((1-t)*c.R+t*d.R, (1-t)*c.G+t*d.G, (1-t)*c.B+t*d.B)
}

// Scale multiplies every component by f. The result may well leave the
// RGB gamut; this is intended for homogeneous arithmetic only.
func (c Color) Scale(f float64) Color {
	return RGB(c.R*f, c.G*f, c.B*f)
}

// String returns the clamped hex notation of c.
func (c Color) String() string {
	return c.Clamped().Hex()
}
