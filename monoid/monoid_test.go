package monoid_test

import (
	"testing"

	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/gbop"
	"github.com/katalvlaran/graphblas/monoid"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsPositional(t *testing.T) {
	_, err := monoid.New(gbop.FirstI32, int32(0))
	require.ErrorIs(t, err, monoid.ErrPositionalOperator)
}

func TestNewRejectsNonEndoFunction(t *testing.T) {
	// EQ has In0==In1 but Out==BOOL != In0, so it cannot restrict to a monoid.
	_, err := monoid.New(gbop.Eq[dtype.INT32], false)
	require.ErrorIs(t, err, monoid.ErrNotEndoFunction)
}

func TestNewRejectsIdentityTypeMismatch(t *testing.T) {
	_, err := monoid.New(gbop.Plus[dtype.INT32], int64(0))
	require.ErrorIs(t, err, monoid.ErrIdentityTypeMismatch)
}

func TestNewAccepts(t *testing.T) {
	m, err := monoid.New(gbop.Plus[dtype.INT32], int32(0))
	require.NoError(t, err)
	require.Equal(t, int32(0), m.Identity)

	_, hasTerminal := m.Terminal()
	require.False(t, hasTerminal)
}

func TestWithTerminal(t *testing.T) {
	m, err := monoid.New(gbop.Min[dtype.INT32], int32(2147483647))
	require.NoError(t, err)

	m2 := m.WithTerminal(int32(-2147483648))
	term, ok := m2.Terminal()
	require.True(t, ok)
	require.Equal(t, int32(-2147483648), term)

	// Original value is untouched (functional update, not mutation).
	_, origHasTerminal := m.Terminal()
	require.False(t, origHasTerminal)
}

func TestNewSemiringTypeMismatch(t *testing.T) {
	plusInt32, err := monoid.New(gbop.Plus[dtype.INT32], int32(0))
	require.NoError(t, err)

	_, err = monoid.NewSemiring(plusInt32, gbop.Plus[dtype.INT64])
	require.ErrorIs(t, err, monoid.ErrSemiringTypeMismatch)
}

func TestBuiltinMonoidTables(t *testing.T) {
	require.Equal(t, int32(0), monoid.PlusMonoid[dtype.INT32].Identity)
	require.Equal(t, int32(1), monoid.TimesMonoid[dtype.INT32].Identity)

	term, ok := monoid.MinMonoid[dtype.INT32].Terminal()
	require.True(t, ok)
	require.Equal(t, int32(-2147483648), term)

	term, ok = monoid.MaxMonoid[dtype.INT32].Terminal()
	require.True(t, ok)
	require.Equal(t, int32(2147483647), term)

	term, ok = monoid.LOrMonoid.Terminal()
	require.True(t, ok)
	require.Equal(t, true, term)
}

func TestBuiltinSemirings(t *testing.T) {
	mp := monoid.MinPlus[dtype.FP64]
	require.Same(t, monoid.MinMonoid[dtype.FP64].Op, mp.Add.Op)
	require.Same(t, gbop.Plus[dtype.FP64], mp.Mul)

	pt := monoid.PlusTimes[dtype.INT32]
	require.Same(t, gbop.Times[dtype.INT32], pt.Mul)

	require.Same(t, gbop.LAnd, monoid.LOrLAnd.Mul)
	require.Same(t, gbop.FirstJ64, monoid.AnyPairInt64.Mul)
}
