package gbop

import "errors"

// Sentinel errors for operator construction and application.
var (
	// ErrNilFunc indicates an operator was constructed with a nil body.
	ErrNilFunc = errors.New("gbop: operator function is nil")

	// ErrNilType indicates an operator was constructed with a nil type handle.
	ErrNilType = errors.New("gbop: operator type handle is nil")

	// ErrPositionalMisuse indicates ApplyPositional was called on a
	// non-positional operator, or Apply was called on a positional one.
	ErrPositionalMisuse = errors.New("gbop: positional/value-path mismatch")

	// ErrTypeMismatch indicates a value's dynamic Go type does not match
	// what an operator's type handle declares.
	ErrTypeMismatch = errors.New("gbop: value does not match declared type")

	// ErrIgnoreDupMisuse indicates Apply was called on the IgnoreDuplicates
	// sentinel; it carries no function body and must be special-cased by
	// its caller instead of invoked.
	ErrIgnoreDupMisuse = errors.New("gbop: IgnoreDuplicates has no function body, it must be special-cased")
)
