package graphalgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/graphalgo"
)

func buildBoolAdjacency(t *testing.T, n uint64, edges [][2]uint64) *container.Matrix {
	t.Helper()
	ty := dtype.MustBuiltin(dtype.BOOL)
	a, err := container.New(ty, n, n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, a.SetElement(e[0], e[1], true))
	}
	require.NoError(t, a.Wait(container.Materialize))

	return a
}

// TestBFS_S1_Cycle implements spec.md §8 scenario S1: a 4-cycle
// (0,1),(1,2),(2,3),(3,0). Starting from 0, each vertex is discovered one
// hop after its predecessor, and all four are visited after four steps.
func TestBFS_S1_Cycle(t *testing.T) {
	a := buildBoolAdjacency(t, 4, [][2]uint64{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := graphalgo.BFS(a, 0, graphalgo.WithParents())
	require.NoError(t, err)

	require.Equal(t, []int64{0, 1, 2, 3}, res.Distance)
	require.Len(t, res.Order, 4)
	require.Equal(t, int64(0), res.Parent[1])
	require.Equal(t, int64(1), res.Parent[2])
	require.Equal(t, int64(2), res.Parent[3])
}

func TestBFS_Disconnected(t *testing.T) {
	a := buildBoolAdjacency(t, 3, [][2]uint64{{0, 1}})

	res, err := graphalgo.BFS(a, 0)
	require.NoError(t, err)

	require.Equal(t, int64(0), res.Distance[0])
	require.Equal(t, int64(1), res.Distance[1])
	require.Equal(t, int64(-1), res.Distance[2], "vertex 2 is unreachable from 0")
}

func TestBFS_MaxDepth(t *testing.T) {
	a := buildBoolAdjacency(t, 4, [][2]uint64{{0, 1}, {1, 2}, {2, 3}})

	res, err := graphalgo.BFS(a, 0, graphalgo.WithMaxDepth(1))
	require.NoError(t, err)

	require.Equal(t, int64(0), res.Distance[0])
	require.Equal(t, int64(1), res.Distance[1])
	require.Equal(t, int64(-1), res.Distance[2], "depth cap of 1 stops before reaching vertex 2")
}
