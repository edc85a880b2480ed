package mxm

import "errors"

// Sentinel errors for the matrix multiply engine.
var (
	// ErrDimensionMismatch indicates A's (logical) column count does not
	// equal B's (logical) row count, or C's shape does not match the
	// product's shape.
	ErrDimensionMismatch = errors.New("mxm: A, B, C have incompatible dimensions")

	// ErrNilSemiring indicates MxM was called with a nil semiring.
	ErrNilSemiring = errors.New("mxm: semiring must not be nil")
)
