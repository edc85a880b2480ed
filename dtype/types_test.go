package dtype_test

import (
	"testing"

	"github.com/katalvlaran/graphblas/dtype"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLookup(t *testing.T) {
	ty, err := dtype.Builtin(dtype.FP64)
	require.NoError(t, err)
	require.Equal(t, "FP64", ty.Name)
	require.True(t, ty.JITEligible())

	_, err = dtype.Builtin(dtype.Code(9999))
	require.ErrorIs(t, err, dtype.ErrUnknownType)
}

func TestNewUDT(t *testing.T) {
	ty, err := dtype.NewUDT("dtype_test.Point", 16, "typedef struct { double x, y; } Point;")
	require.NoError(t, err)
	require.True(t, ty.JITEligible())

	noJIT, err := dtype.NewUDT("dtype_test.Opaque", 32, "")
	require.NoError(t, err)
	require.False(t, noJIT.JITEligible())

	_, err = dtype.NewUDT("dtype_test.Point", 16, "")
	require.ErrorIs(t, err, dtype.ErrDuplicateName)

	_, err = dtype.NewUDT("", 8, "")
	require.ErrorIs(t, err, dtype.ErrEmptyName)

	_, err = dtype.NewUDT("dtype_test.Bad", 0, "")
	require.ErrorIs(t, err, dtype.ErrInvalidSize)

	found, err := dtype.LookupByName("dtype_test.Point")
	require.NoError(t, err)
	require.Equal(t, ty.Code, found.Code)
}

func TestCast(t *testing.T) {
	v, err := dtype.Cast(int32(7), dtype.INT32, dtype.FP64)
	require.NoError(t, err)
	require.Equal(t, float64(7), v)

	v, err = dtype.Cast(true, dtype.BOOL, dtype.FP64)
	require.NoError(t, err)
	require.Equal(t, float64(1), v)

	same, err := dtype.Cast(int8(3), dtype.INT8, dtype.INT8)
	require.NoError(t, err)
	require.Equal(t, int8(3), same)

	_, err = dtype.Cast(int8(3), dtype.INT8, dtype.FC64)
	require.ErrorIs(t, err, dtype.ErrNoCast)
}
