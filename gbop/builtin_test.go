package gbop_test

import (
	"testing"

	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/gbop"
	"github.com/stretchr/testify/require"
)

func TestArithTables(t *testing.T) {
	plus := gbop.Plus[dtype.INT32]
	require.Equal(t, int32(7), plus.Apply(int32(3), int32(4)))

	div := gbop.Div[dtype.INT32]
	require.Equal(t, int32(2147483647), div.Apply(int32(5), int32(0)), "positive / 0 saturates to max")
	require.Equal(t, int32(-2147483648), div.Apply(int32(-5), int32(0)), "negative / 0 saturates to min")
	require.Equal(t, int32(0), div.Apply(int32(0), int32(0)), "0 / 0 is 0")

	fdiv := gbop.Div[dtype.FP64]
	got := fdiv.Apply(1.0, 0.0).(float64)
	require.True(t, got > 1e300 || got != got == false) // +Inf, not a panic
}

func TestComparePositional(t *testing.T) {
	lt := gbop.Lt[dtype.FP64]
	require.Equal(t, true, lt.Apply(1.0, 2.0))

	require.True(t, gbop.FirstI32.Positional)
	require.Equal(t, int32(5), gbop.FirstI32.ApplyPositional(5, 9, 1))
	require.Equal(t, int32(9), gbop.FirstJ32.ApplyPositional(5, 9, 1))
	require.Equal(t, int32(1), gbop.SecondJ32.ApplyPositional(5, 9, 1))

	require.Panics(t, func() { gbop.FirstI32.Apply(1, 2) })
}

func TestLogical(t *testing.T) {
	require.Equal(t, true, gbop.LOr.Apply(false, true))
	require.Equal(t, false, gbop.LAnd.Apply(false, true))
}
