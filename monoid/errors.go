package monoid

import "errors"

// Sentinel errors for monoid and semiring construction.
var (
	// ErrNilOperator indicates a nil binary operator was supplied.
	ErrNilOperator = errors.New("monoid: operator is nil")

	// ErrNotEndoFunction indicates the operator is not T×T→T (its In0, In1,
	// and Out types must all match for it to restrict to a monoid).
	ErrNotEndoFunction = errors.New("monoid: operator is not T x T -> T")

	// ErrPositionalOperator indicates a positional operator was used where a
	// monoid operator is required; spec §4.1: "statically forbidden as
	// monoid operators".
	ErrPositionalOperator = errors.New("monoid: positional operators cannot be monoid operators")

	// ErrIdentityTypeMismatch indicates the supplied identity value's
	// declared type does not match the operator's type.
	ErrIdentityTypeMismatch = errors.New("monoid: identity type mismatch")

	// ErrSemiringTypeMismatch indicates the multiplier's output type does
	// not equal the additive monoid's type.
	ErrSemiringTypeMismatch = errors.New("monoid: semiring multiplier output type must equal monoid type")
)
