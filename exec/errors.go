package exec

import "errors"

// Sentinel errors for the masked-accumulate executor.
var (
	// ErrNilResult indicates Accumulate was called with a nil raw result T.
	ErrNilResult = errors.New("exec: raw result T is nil")

	// ErrShapeMismatch indicates C, M, or T have incompatible dimensions.
	ErrShapeMismatch = errors.New("exec: C, mask, and T must share dimensions")
)
