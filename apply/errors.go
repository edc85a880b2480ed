package apply

import "errors"

// Sentinel errors for the apply/select/reduce family.
var (
	// ErrNilOperator indicates Apply/Select was called with a nil operator.
	ErrNilOperator = errors.New("apply: operator must not be nil")

	// ErrNilMonoid indicates Reduce was called with a nil monoid.
	ErrNilMonoid = errors.New("apply: monoid must not be nil")

	// ErrInvalidReduceDim indicates ReduceRows/ReduceCols was asked to
	// reduce along a dimension the source matrix does not have.
	ErrInvalidReduceDim = errors.New("apply: reduce dimension out of range")
)
