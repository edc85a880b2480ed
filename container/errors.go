package container

import "errors"

// Sentinel errors for Matrix construction and access (spec §7's argument,
// state, and shape error taxonomy, expressed as distinct sentinels so
// callers can errors.Is against the category they care about — mirrors the
// teacher's matrix.ErrX convention).
var (
	ErrNilType           = errors.New("container: type handle is nil")
	ErrInvalidDimension  = errors.New("container: dimension must be in [1, 2^60]")
	ErrIndexOutOfBounds  = errors.New("container: row or column index out of bounds")
	ErrTypeMismatch      = errors.New("container: value's Go type does not match the matrix's element type")
	ErrDimensionMismatch = errors.New("container: operands have incompatible dimensions")
	ErrLengthMismatch    = errors.New("container: parallel arrays (i, j, x) have different lengths")
	ErrNilDupOp          = errors.New("container: Build requires a non-nil duplicate-resolution operator")
	ErrEmptyObject       = errors.New("container: operation requires at least one stored entry")
	ErrNotMaterializable = errors.New("container: cannot iterate or pack an object with unmaterialized pending work")
	ErrWrongOrientation  = errors.New("container: iterator's required traversal order does not match the object's orientation")
	ErrFormDisallowed    = errors.New("container: sparsity_control forbids every candidate storage form")
	ErrBadPackedArrays   = errors.New("container: packed arrays fail the format's structural invariants")
	ErrUnsupportedFormat = errors.New("container: pack/unpack format not supported for this object's shape")
)
