package bspline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/splines/knots"
)

// Mode selects the boundary convention for knots.
type Mode int

// Boundary conventions, see the package documentation.
const (
	Open Mode = iota
	Clamped
	Legacy
)

func (m Mode) valid() bool {
	return m >= Open && m <= Legacy
}

func (m Mode) String() string {
	switch m {
	case Open:
		return "open"
	case Clamped:
		return "clamped"
	case Legacy:
		return "legacy"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode reads a mode name as produced by Mode.String. The empty string
// denotes the default, Open.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "open":
		return Open, nil
	case "clamped":
		return Clamped, nil
	case "legacy":
		return Legacy, nil
	}
	return Open, fmt.Errorf("%w: unknown boundary mode %q", ErrInvalidConfig, s)
}

// boundary is what a mode contributes to the construction of a curve.
type boundary interface {
	// degree for n elements and m knots as supplied by the client
	degree(n, m int) int
	// knots for a curve of degree d with n elements, as supplied by the client
	knotCount(n, d int) int
	// adapt turns client knots into the sequence the evaluator works on
	adapt(seq knots.Sequence, n int) (knots.Sequence, error)
}

func (m Mode) boundary() boundary {
	switch m {
	case Clamped:
		return clampedBoundary{}
	case Legacy:
		return legacyBoundary{}
	}
	return openBoundary{}
}

type openBoundary struct{}

func (openBoundary) degree(n, m int) int    { return m - n + 1 }
func (openBoundary) knotCount(n, d int) int { return n + d - 1 }

func (openBoundary) adapt(seq knots.Sequence, n int) (knots.Sequence, error) {
	return seq, nil
}

type clampedBoundary struct{}

func (clampedBoundary) degree(n, m int) int    { return n - m + 1 }
func (clampedBoundary) knotCount(n, d int) int { return n - d + 1 }

func (clampedBoundary) adapt(seq knots.Sequence, n int) (knots.Sequence, error) {
	k := n - seq.Len()
	if k < 0 {
		return nil, fmt.Errorf("%w: %d clamped knots for %d elements result in degree %d",
			ErrInvalidDegree, seq.Len(), n, k+1)
	}
	c, err := knots.NewClamped(seq, k)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNumberKnots, err)
	}
	return c, nil
}

type legacyBoundary struct{}

func (legacyBoundary) degree(n, m int) int    { return m - n - 1 }
func (legacyBoundary) knotCount(n, d int) int { return n + d + 1 }

func (legacyBoundary) adapt(seq knots.Sequence, n int) (knots.Sequence, error) {
	l, err := knots.NewLegacy(seq)
	if err != nil {
		if errors.Is(err, knots.ErrTooFewKnots) || errors.Is(err, knots.ErrDegenerate) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidNumberKnots, err)
		}
		return nil, err
	}
	lead, trail := l.Runs()
	tracer().Debugf("legacy knots: leading run %d, trailing run %d, clamped: %v",
		lead, trail, l.IsClamped(seq.Len()-n-1))
	return l, nil
}
