package dtype

import "errors"

// Sentinel errors for the type registry.
var (
	// ErrUnknownType indicates a Code with no registered built-in or user type.
	ErrUnknownType = errors.New("dtype: unknown type code")

	// ErrInvalidSize indicates a user-defined type was declared with size <= 0.
	ErrInvalidSize = errors.New("dtype: invalid type size")

	// ErrEmptyName indicates a user-defined type was declared with an empty name.
	ErrEmptyName = errors.New("dtype: empty type name")

	// ErrDuplicateName indicates a user-defined type name collides with an
	// already-registered user type.
	ErrDuplicateName = errors.New("dtype: duplicate type name")

	// ErrNotJITEligible indicates a UDT has no C definition and therefore
	// cannot participate in JIT-compiled kernels; callers must fall back to
	// the interpreted path.
	ErrNotJITEligible = errors.New("dtype: type has no JIT definition")

	// ErrNoCast indicates no typecast entry exists between two types.
	ErrNoCast = errors.New("dtype: no typecast registered")
)
