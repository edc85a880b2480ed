package ewise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/ewise"
	"github.com/katalvlaran/graphblas/gbop"
)

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

// TestEWiseAddVsMult verifies spec.md §8 testable property 3: pattern
// relationships between eWiseAdd (union) and eWiseMult (intersection).
func TestEWiseAddVsMult(t *testing.T) {
	a := buildInt32(t, 3, 3, map[[2]uint64]int32{{0, 0}: 1, {1, 1}: 2})
	b := buildInt32(t, 3, 3, map[[2]uint64]int32{{1, 1}: 3, {2, 2}: 4})

	ty := dtype.MustBuiltin(dtype.INT32)
	cAdd, err := container.New(ty, 3, 3)
	require.NoError(t, err)
	require.NoError(t, ewise.EWiseAdd(cAdd, nil, nil, gbop.Plus[dtype.INT32], a, b, descriptor.Default))

	v, has, err := cAdd.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(1), v)

	v, has, err = cAdd.ExtractElement(1, 1)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(5), v)

	v, has, err = cAdd.ExtractElement(2, 2)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(4), v)

	nnzAdd, err := cAdd.NVals()
	require.NoError(t, err)
	require.EqualValues(t, 3, nnzAdd, "union pattern: {(0,0),(1,1),(2,2)}")

	cMult, err := container.New(ty, 3, 3)
	require.NoError(t, err)
	require.NoError(t, ewise.EWiseMult(cMult, nil, nil, gbop.Plus[dtype.INT32], a, b, descriptor.Default))

	nnzMult, err := cMult.NVals()
	require.NoError(t, err)
	require.EqualValues(t, 1, nnzMult, "intersection pattern: {(1,1)}")

	v, has, err = cMult.ExtractElement(1, 1)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(5), v)
}

func TestEWiseUnion(t *testing.T) {
	a := buildInt32(t, 2, 2, map[[2]uint64]int32{{0, 0}: 1})
	b := buildInt32(t, 2, 2, map[[2]uint64]int32{{1, 1}: 2})

	ty := dtype.MustBuiltin(dtype.INT32)
	c, err := container.New(ty, 2, 2)
	require.NoError(t, err)
	require.NoError(t, ewise.EWiseUnion(c, nil, nil, gbop.Plus[dtype.INT32], a, int32(100), b, int32(200), descriptor.Default))

	v, has, err := c.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(201), v, "A-only position pairs with beta")

	v, has, err = c.ExtractElement(1, 1)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int32(102), v, "B-only position pairs with alpha")
}
