package status_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphblas/status"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := status.New(status.DimensionMismatch, "mxm.Multiply", "A.cols != B.rows")
	require.Equal(t, "mxm.Multiply: DimensionMismatch: A.cols != B.rows", err.Error())
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := status.Wrap(status.Panic, "container.unsafeWrite", cause)
	require.ErrorIs(t, err, cause)
}

func TestIsMatchesByCode(t *testing.T) {
	err := status.New(status.NoValue, "exec.iterate", "row 3 is empty")
	require.ErrorIs(t, err, status.ErrNoValue)
	require.NotErrorIs(t, err, status.ErrExhausted)
}

func TestInformational(t *testing.T) {
	require.True(t, status.Success.Informational())
	require.True(t, status.NoValue.Informational())
	require.True(t, status.Exhausted.Informational())
	require.False(t, status.DimensionMismatch.Informational())
}
