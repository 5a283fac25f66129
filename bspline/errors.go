package bspline

import (
	"errors"

	"github.com/npillmayer/splines/knots"
)

// Errors reported on construction of a curve. Evaluation never fails.
var (
	// ErrNotSorted indicates explicit knots which are not non-decreasing.
	ErrNotSorted = knots.ErrNotSorted
	// ErrInvalidDegree indicates a computed degree below 1.
	ErrInvalidDegree = errors.New("invalid degree")
	// ErrTooFewElements indicates too few control elements for the curve.
	ErrTooFewElements = errors.New("too few elements")
	// ErrInvalidNumberKnots indicates a knot count incompatible with the element count.
	ErrInvalidNumberKnots = errors.New("invalid number of knots")
	// ErrTooSmallWorkspace indicates a workspace with less than degree+1 slots.
	ErrTooSmallWorkspace = errors.New("workspace too small")
	// ErrEmptyGenerator indicates an empty sequence of weighted elements.
	ErrEmptyGenerator = errors.New("no weighted elements")
	// ErrIncomplete indicates a configuration missing a required field.
	ErrIncomplete = errors.New("incomplete configuration")
	// ErrWorkspaceMismatch indicates a custom workspace for the wrong kind of elements.
	ErrWorkspaceMismatch = errors.New("workspace does not match weight mode")
	// ErrInvalidConfig indicates a malformed persisted configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)
