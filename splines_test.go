package splines

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Zap(a) != 0 {
		t.Errorf("Expected zapped a to be zero, is %g", Zap(a))
	}
}

func TestFloatLerpExact(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, y := Float(0.1), Float(0.7)
	assert.Equal(t, x, x.Lerp(y, 0))
	assert.Equal(t, y, x.Lerp(y, 1))
	assert.InDelta(t, 0.4, float64(x.Lerp(y, 0.5)), 1e-12)
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, P(0, 0), p.Lerp(q, 0.5))
	assert.Equal(t, P(6, 4), p.Scale(2))
	assert.InDelta(t, math.Hypot(6, 4), p.Dist(q), 1e-12)
}

func TestTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Translation(P(-1, -1)).Transform(P(1, 1)).Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	m := Rotation(math.Pi).Combine(Translation(P(1, 0)))
	if !m.Transform(P(1, 0)).Zap().Equal(Origin) {
		t.Errorf("Expected result to be origin, is %v", m.Transform(P(1, 0)))
	}
	s := Scaling(2, 3).TransformAll([]Pair{P(1, 1), P(-1, 2)})
	assert.Equal(t, []Pair{P(2, 3), P(-2, 6)}, s)
}

func TestColor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	red, err := ColorHex("#ff0000")
	assert.NoError(t, err)
	blue := RGB(0, 0, 1)
	mid := red.Lerp(blue, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-12)
	assert.InDelta(t, 0.5, mid.B, 1e-12)
	assert.Equal(t, "#0000ff", red.Lerp(blue, 1).String())
	_, err = ColorHex("not a color")
	assert.Error(t, err)
}

func TestHomogeneousProjection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := WeightedPoint(Float(2), 4)
	assert.Equal(t, Float(8), h.Value)
	v, ok := h.Project()
	assert.True(t, ok)
	assert.Equal(t, Float(2), v)
	//
	inf := W(Float(3), 0).Homogeneous()
	assert.True(t, inf.IsInfinite())
	dir, ok := inf.Project()
	assert.False(t, ok)
	assert.Equal(t, Float(3), dir)
	//
	mid := Lift(Float(1)).Lerp(WeightedPoint(Float(3), 3), 0.5)
	assert.InDelta(t, 2.0, mid.Weight, 1e-12)
	v, _ = mid.Project()
	assert.InDelta(t, 2.5, float64(v), 1e-12) // ((1+9)/2) / 2
}

func TestWithWeights(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ws, err := WithWeights(Floats(1, 2, 3), []float64{1, 2, 0})
	assert.NoError(t, err)
	assert.Len(t, ws, 3)
	assert.Equal(t, W(Float(2), 2), ws[1])
	_, err = WithWeights(Floats(1, 2), []float64{1})
	assert.True(t, errors.Is(err, ErrWeightsMismatch))
}
