package container_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/dtype"
)

// fillRows sets one entry per row for rows [0,k) of an n x 1 column, then
// materializes, returning the matrix so the caller can inspect its form.
func fillRows(t *testing.T, nrows uint64, k int) *container.Matrix {
	t.Helper()
	ty := dtype.MustBuiltin(dtype.FP64)
	m, err := container.New(ty, nrows, 1)
	require.NoError(t, err)
	for r := 0; r < k; r++ {
		require.NoError(t, m.SetElement(uint64(r), 0, 1.0))
	}
	require.NoError(t, m.Wait(container.Materialize))

	return m
}

// With outer=100 and the default hyper_switch=1/16 (=6.25), the
// hypersparse<->sparse hysteresis band spans k in (6.25, 12.5]: a matrix
// already Sparse stays Sparse until k drops to <= 6.25 (spec's "sparse and
// k <= outer*hyper_switch" rule), while a matrix already Hypersparse only
// promotes to Sparse once k exceeds 2*6.25=12.5 ("hypersparse and k >
// 2*outer*hyper_switch").
func TestSelectForm_HysteresisIsCurrentFormDependent(t *testing.T) {
	// New matrices start Hypersparse; 7 non-empty rows is inside the band
	// ((6.25, 12.5]) so a Hypersparse-origin matrix should stay Hypersparse.
	stillHyper := fillRows(t, 100, 7)
	require.Equal(t, container.Hypersparse, stillHyper.Form())

	// 13 non-empty rows is above the upper bound (12.5): even starting from
	// Hypersparse this must convert to Sparse.
	promotedToSparse := fillRows(t, 100, 13)
	require.Equal(t, container.Sparse, promotedToSparse.Form())
}

func TestSelectForm_SparseOriginStaysSparseInsideBand(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)
	m, err := container.New(ty, 100, 1)
	require.NoError(t, err)

	// Drive the matrix to Sparse first with a high fill (k=50 > 12.5).
	for r := 0; r < 50; r++ {
		require.NoError(t, m.SetElement(uint64(r), 0, 1.0))
	}
	require.NoError(t, m.Wait(container.Materialize))
	require.Equal(t, container.Sparse, m.Form())

	// Remove rows down to k=7, inside the hysteresis band. A Sparse-origin
	// matrix demotes to Hypersparse at k <= 6.25, so it should remain
	// Sparse at k=7.
	for r := 7; r < 50; r++ {
		require.NoError(t, m.RemoveElement(uint64(r), 0))
	}
	require.NoError(t, m.Wait(container.Materialize))
	require.Equal(t, container.Sparse, m.Form())

	// Dropping further to k=5 (<= 6.25) must demote to Hypersparse.
	for r := 0; r < 2; r++ {
		require.NoError(t, m.RemoveElement(uint64(r), 0))
	}
	require.NoError(t, m.Wait(container.Materialize))
	require.Equal(t, container.Hypersparse, m.Form())
}
