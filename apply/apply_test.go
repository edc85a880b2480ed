package apply_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/apply"
	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/gbop"
	"github.com/katalvlaran/graphblas/monoid"
)

func buildBool(t *testing.T, n, m uint64, entries map[[2]uint64]bool) *container.Matrix {
	t.Helper()
	ty := dtype.MustBuiltin(dtype.BOOL)
	mx, err := container.New(ty, n, m)
	require.NoError(t, err)
	for pos, v := range entries {
		require.NoError(t, mx.SetElement(pos[0], pos[1], v))
	}
	require.NoError(t, mx.Wait(container.Materialize))

	return mx
}

func buildInt32(t *testing.T, n, m uint64, entries map[[2]uint64]int32) *container.Matrix {
	t.Helper()
	ty := dtype.MustBuiltin(dtype.INT32)
	mx, err := container.New(ty, n, m)
	require.NoError(t, err)
	for pos, v := range entries {
		require.NoError(t, mx.SetElement(pos[0], pos[1], v))
	}
	require.NoError(t, mx.Wait(container.Materialize))

	return mx
}

func TestApply_Unary(t *testing.T) {
	a := buildInt32(t, 2, 2, map[[2]uint64]int32{{0, 0}: 1, {1, 1}: -2})

	neg, err := gbop.NewUnary("NEG", dtype.MustBuiltin(dtype.INT32), dtype.MustBuiltin(dtype.INT32), func(x any) any {
		return -x.(int32)
	})
	require.NoError(t, err)

	ty := dtype.MustBuiltin(dtype.INT32)
	c, err := container.New(ty, 2, 2)
	require.NoError(t, err)
	require.NoError(t, apply.Apply(c, nil, nil, neg, a, descriptor.Default))

	v, has, err := c.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(-1), v)

	v, has, err = c.ExtractElement(1, 1)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(2), v)
}

func TestSelect_ValueGT(t *testing.T) {
	a := buildInt32(t, 1, 4, map[[2]uint64]int32{{0, 0}: 1, {0, 1}: 5, {0, 2}: 10, {0, 3}: -3})

	ty := dtype.MustBuiltin(dtype.INT32)
	c, err := container.New(ty, 1, 4)
	require.NoError(t, err)
	require.NoError(t, apply.Select(c, nil, nil, gbop.ValueGT[dtype.INT32], a, int32(2), descriptor.Default))

	nnz, err := c.NVals()
	require.NoError(t, err)
	require.EqualValues(t, 2, nnz, "only 5 and 10 exceed the bound 2")

	_, has, err := c.ExtractElement(0, 3)
	require.NoError(t, err)
	require.False(t, has)
}

// TestReduceRows_S3_Terminal implements spec.md §8 scenario S3 / testable
// property 8: row-wise LOR reduction (terminal=true) over a matrix where
// every row has at least one true. Row 0 stores false,true,true in column
// order, so its fold must invoke the operator exactly once (combining the
// leading false with the first true) and never touch the trailing true.
func TestReduceRows_S3_Terminal(t *testing.T) {
	a := buildBool(t, 2, 3, map[[2]uint64]bool{
		{0, 0}: false, {0, 1}: true, {0, 2}: true,
		{1, 0}: true,
	})

	calls := 0
	countingLOr, err := gbop.NewBinary("COUNTING_LOR", dtype.MustBuiltin(dtype.BOOL), dtype.MustBuiltin(dtype.BOOL), dtype.MustBuiltin(dtype.BOOL), func(x, y any) any {
		calls++
		return x.(bool) || y.(bool)
	})
	require.NoError(t, err)

	m, err := monoid.New(countingLOr, false)
	require.NoError(t, err)
	*m = m.WithTerminal(true)

	ty := dtype.MustBuiltin(dtype.BOOL)
	c, err := container.New(ty, 2, 1)
	require.NoError(t, err)
	require.NoError(t, apply.ReduceRows(c, nil, nil, m, a, descriptor.Default))

	v, has, err := c.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, true, v)

	v, has, err = c.ExtractElement(1, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, true, v)

	require.Equal(t, 1, calls, "the terminal must be hit after the first true; the trailing true in row 0 must never be dereferenced, and row 1's lone true never calls the operator at all")
}

// TestReduceRows_EmptyRowLeavesNoEntry verifies that a structurally empty
// row produces no T entry at all, instead of the monoid identity — so a
// masked reduce into a pre-populated c leaves an empty-row position exactly
// as the mask/accum/replace rules dictate, never silently overwritten with
// the identity (row 1 of a below has no entries at all).
func TestReduceRows_EmptyRowLeavesNoEntry(t *testing.T) {
	a := buildInt32(t, 3, 2, map[[2]uint64]int32{{0, 0}: 3, {2, 1}: 4})

	ty := dtype.MustBuiltin(dtype.INT32)
	c, err := container.New(ty, 3, 1)
	require.NoError(t, err)
	require.NoError(t, c.SetElement(1, 0, int32(99)))
	require.NoError(t, c.Wait(container.Materialize))

	require.NoError(t, apply.ReduceRows(c, nil, nil, monoid.PlusMonoid[dtype.INT32], a, descriptor.Default))

	v, has, err := c.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(3), v)

	v, has, err = c.ExtractElement(1, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(99), v, "row 1 had no entries in a, so T has no entry there; exec.Accumulate's only-C-present rule must retain c's existing value unchanged, not overwrite it with the monoid identity")

	v, has, err = c.ExtractElement(2, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(4), v)
}

func TestReduceToScalar_EmptyYieldsIdentity(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.INT32)
	a, err := container.New(ty, 3, 3)
	require.NoError(t, err)

	v, err := apply.ReduceToScalar(monoid.PlusMonoid[dtype.INT32], a)
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
}
