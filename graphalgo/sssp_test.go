package graphalgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/graphalgo"
)

// TestSSSP_S2_MinPlus implements spec.md §8 scenario S2: A is 3x3 with
// (0,1)=2, (1,2)=3, (0,2)=10. From source 0, the direct edge to 2 costs
// 10, but relaxing through 1 tightens it to min(10, 2+3)=5.
func TestSSSP_S2_MinPlus(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)
	a, err := container.New(ty, 3, 3)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 1, 2.0))
	require.NoError(t, a.SetElement(1, 2, 3.0))
	require.NoError(t, a.SetElement(0, 2, 10.0))
	require.NoError(t, a.Wait(container.Materialize))

	res, err := graphalgo.SSSP(a, 0)
	require.NoError(t, err)

	require.Equal(t, 0.0, res.Distance[0])
	require.Equal(t, 2.0, res.Distance[1])
	require.Equal(t, 5.0, res.Distance[2])
}

func TestSSSP_Unreachable(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)
	a, err := container.New(ty, 3, 3)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 1, 1.0))
	require.NoError(t, a.Wait(container.Materialize))

	res, err := graphalgo.SSSP(a, 0)
	require.NoError(t, err)

	require.Equal(t, 0.0, res.Distance[0])
	require.Equal(t, 1.0, res.Distance[1])
	require.Greater(t, res.Distance[2], 1e300, "vertex 2 is unreachable: identity sentinel stands in for +Inf")
}
