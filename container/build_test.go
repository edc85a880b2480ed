package container_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/gbop"
)

func plusFloat(t *testing.T) *gbop.Binary {
	t.Helper()
	ty := dtype.MustBuiltin(dtype.FP64)
	op, err := gbop.NewBinary("PLUS", ty, ty, ty, func(x, y any) any { return x.(float64) + y.(float64) })
	require.NoError(t, err)

	return op
}

func TestBuild_NilDupOpRejected(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)
	m, err := container.New(ty, 2, 2)
	require.NoError(t, err)

	err = m.Build([]uint64{0}, []uint64{0}, []any{1.0}, nil, descriptor.Default)
	require.ErrorIs(t, err, container.ErrNilDupOp)
}

func TestBuild_DuplicatesResolvedWithPlus(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)
	m, err := container.New(ty, 2, 2)
	require.NoError(t, err)

	i := []uint64{0, 0, 1}
	j := []uint64{0, 0, 1}
	x := []any{2.0, 3.0, 9.0}

	require.NoError(t, m.Build(i, j, x, plusFloat(t), descriptor.Default))
	require.NoError(t, m.Wait(container.Materialize))

	v, has, err := m.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, 5.0, v)

	v, has, err = m.ExtractElement(1, 1)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, 9.0, v)
}

func TestBuild_IgnoreDuplicatesKeepsArbitrarySurvivor(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)
	m, err := container.New(ty, 2, 2)
	require.NoError(t, err)

	i := []uint64{0, 0, 0}
	j := []uint64{0, 0, 0}
	x := []any{1.0, 2.0, 3.0}

	require.NoError(t, m.Build(i, j, x, gbop.IgnoreDuplicates, descriptor.Default))
	require.NoError(t, m.Wait(container.Materialize))

	v, has, err := m.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Contains(t, []float64{1.0, 2.0, 3.0}, v)
}

func TestBuild_SortEagerMaterializesImmediately(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)
	m, err := container.New(ty, 2, 2)
	require.NoError(t, err)

	d := descriptor.Default
	d.Sort = descriptor.SortEager

	require.NoError(t, m.Build([]uint64{0}, []uint64{0}, []any{1.0}, plusFloat(t), d))

	// SortEager leaves nothing deferred, so an iterator can attach right
	// away without an explicit Wait(Materialize) call.
	_, err = container.NewEntryIterator(m)
	require.NoError(t, err)
}

func TestBuild_SortLazyDefersMaterialize(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)
	m, err := container.New(ty, 2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Build([]uint64{0}, []uint64{0}, []any{1.0}, plusFloat(t), descriptor.Default))

	_, err = container.NewEntryIterator(m)
	require.ErrorIs(t, err, container.ErrNotMaterializable)
}
