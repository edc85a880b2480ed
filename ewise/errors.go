package ewise

import "errors"

// Sentinel errors for the element-wise family.
var (
	// ErrDimensionMismatch indicates A and B do not share a shape.
	ErrDimensionMismatch = errors.New("ewise: operands must share dimensions")

	// ErrNilOperator indicates a nil binary operator was supplied where one
	// is required.
	ErrNilOperator = errors.New("ewise: operator must not be nil")
)
