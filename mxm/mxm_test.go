package mxm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/monoid"
	"github.com/katalvlaran/graphblas/mxm"
)

// tuplesFP64 extracts (i,j,x) as a position -> value map for comparing two
// matrices' patterns and values independent of internal storage order.
func tuplesFP64(t *testing.T, a *container.Matrix) map[[2]uint64]float64 {
	t.Helper()
	i, j, x, err := a.ExtractTuples(true, true, true)
	require.NoError(t, err)
	out := make(map[[2]uint64]float64, len(i))
	for k := range i {
		out[[2]uint64{i[k], j[k]}] = x[k].(float64)
	}

	return out
}

func buildFP64(t *testing.T, n, m uint64, entries map[[2]uint64]float64) *container.Matrix {
	t.Helper()
	ty := dtype.MustBuiltin(dtype.FP64)
	mx, err := container.New(ty, n, m)
	require.NoError(t, err)
	for pos, v := range entries {
		require.NoError(t, mx.SetElement(pos[0], pos[1], v))
	}
	require.NoError(t, mx.Wait(container.Materialize))

	return mx
}

// TestMxM_S2_MinPlusOneStep implements spec.md §8 scenario S2: A is 3x3
// with (0,1)=2, (1,2)=3, (0,2)=10; v=(0,_,_). d = A' ⊗_{min,plus} v must
// give d[1]=2, d[2]=10 after one step.
func TestMxM_S2_MinPlusOneStep(t *testing.T) {
	a := buildFP64(t, 3, 3, map[[2]uint64]float64{{0, 1}: 2, {1, 2}: 3, {0, 2}: 10})
	v := buildFP64(t, 3, 1, map[[2]uint64]float64{{0, 0}: 0})

	ty := dtype.MustBuiltin(dtype.FP64)
	d, err := container.New(ty, 3, 1)
	require.NoError(t, err)

	desc, err := descriptor.New(descriptor.WithInput0(descriptor.InputTranspose))
	require.NoError(t, err)
	semi := monoid.MinPlus[dtype.FP64]
	require.NoError(t, mxm.MxM(d, nil, nil, semi, a, v, desc))

	val, has, err := d.ExtractElement(1, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, 2.0, val)

	val, has, err = d.ExtractElement(2, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, 10.0, val)

	_, has, err = d.ExtractElement(0, 0)
	require.NoError(t, err)
	require.False(t, has, "v[0] only propagates through outgoing edges, never itself")
}

// TestMxM_S2_SecondStep continues S2: feeding the first step's d back through
// A' tightens d[2] to min(10, 2+3) = 5 via the MIN-PLUS accumulate-in-place
// pattern (spec.md §8 S2, second relaxation).
func TestMxM_S2_SecondStep(t *testing.T) {
	a := buildFP64(t, 3, 3, map[[2]uint64]float64{{0, 1}: 2, {1, 2}: 3, {0, 2}: 10})
	d := buildFP64(t, 3, 1, map[[2]uint64]float64{{0, 0}: 0, {1, 0}: 2, {2, 0}: 10})

	desc, err := descriptor.New(descriptor.WithInput0(descriptor.InputTranspose))
	require.NoError(t, err)
	semi := monoid.MinPlus[dtype.FP64]
	require.NoError(t, mxm.MxM(d, nil, semi.Add.Op, semi, a, d, desc))

	val, has, err := d.ExtractElement(2, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, 5.0, val)
}

// TestMxM_IsoFastPath verifies that when both operands are iso, the product
// is computed structurally with a single broadcast value (spec §4.6 iso
// fast path), using the PLUS-TIMES semiring.
func TestMxM_IsoFastPath(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)

	a, err := container.PackSparse(ty, 2, 2, container.FormatCSR, container.PackedSparse{
		Ptr:      []uint64{0, 1, 2},
		InnerIdx: []uint64{0, 1},
		Values:   []any{2.0},
		Iso:      true,
	}, descriptor.ImportFast)
	require.NoError(t, err)

	b, err := container.PackSparse(ty, 2, 2, container.FormatCSR, container.PackedSparse{
		Ptr:      []uint64{0, 1, 2},
		InnerIdx: []uint64{0, 1},
		Values:   []any{3.0},
		Iso:      true,
	}, descriptor.ImportFast)
	require.NoError(t, err)

	c, err := container.New(ty, 2, 2)
	require.NoError(t, err)

	semi := monoid.PlusTimes[dtype.FP64]
	require.NoError(t, mxm.MxM(c, nil, nil, semi, a, b, descriptor.Default))

	val, has, err := c.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, 6.0, val)
}

// TestSemiring_MinPlus_Associativity implements spec.md §8 testable
// property 2: (A⊗B)⊗D = A⊗(B⊗D) under the MIN-PLUS semiring, up to
// summation-order rounding (spec §8: "floating-point: equal up to
// summation-order differences at fixed thread count"), verified with
// gonum's tolerance-aware float comparison rather than exact equality.
func TestSemiring_MinPlus_Associativity(t *testing.T) {
	ty := dtype.MustBuiltin(dtype.FP64)
	a := buildFP64(t, 3, 3, map[[2]uint64]float64{{0, 0}: 1, {0, 1}: 4, {1, 2}: 2, {2, 0}: 5})
	b := buildFP64(t, 3, 3, map[[2]uint64]float64{{0, 1}: 3, {1, 2}: 1, {2, 0}: 6, {2, 2}: 2})
	d := buildFP64(t, 3, 3, map[[2]uint64]float64{{0, 0}: 2, {1, 1}: 7, {2, 2}: 1, {1, 0}: 3})

	semi := monoid.MinPlus[dtype.FP64]

	ab, err := container.New(ty, 3, 3)
	require.NoError(t, err)
	require.NoError(t, mxm.MxM(ab, nil, nil, semi, a, b, descriptor.Default))
	abd, err := container.New(ty, 3, 3)
	require.NoError(t, err)
	require.NoError(t, mxm.MxM(abd, nil, nil, semi, ab, d, descriptor.Default))

	bd, err := container.New(ty, 3, 3)
	require.NoError(t, err)
	require.NoError(t, mxm.MxM(bd, nil, nil, semi, b, d, descriptor.Default))
	a_bd, err := container.New(ty, 3, 3)
	require.NoError(t, err)
	require.NoError(t, mxm.MxM(a_bd, nil, nil, semi, a, bd, descriptor.Default))

	left := tuplesFP64(t, abd)
	right := tuplesFP64(t, a_bd)
	require.Equal(t, len(left), len(right), "associativity must preserve the result pattern")
	for pos, lv := range left {
		rv, ok := right[pos]
		require.True(t, ok, "position %v present on one side only", pos)
		require.True(t, floats.EqualWithinAbsOrRel(lv, rv, 1e-9, 1e-9),
			"MIN-PLUS associativity violated at %v: %v vs %v", pos, lv, rv)
	}
}
