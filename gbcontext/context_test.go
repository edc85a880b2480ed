package gbcontext_test

import (
	"testing"

	"github.com/katalvlaran/graphblas/gbcontext"
	"github.com/stretchr/testify/require"
)

func TestEngageDisengageStack(t *testing.T) {
	require.NoError(t, gbcontext.SetDefaults(8, 4096))

	h := gbcontext.NewHandle()
	require.Equal(t, 8, h.EffectiveThreads())

	outer, err := gbcontext.New(2, 0)
	require.NoError(t, err)
	require.NoError(t, h.Engage(outer))
	require.Equal(t, 2, h.EffectiveThreads())
	require.Equal(t, 4096, h.EffectiveChunk())

	inner, err := gbcontext.New(0, 256)
	require.NoError(t, err)
	require.NoError(t, h.Engage(inner))
	require.Equal(t, 8, h.EffectiveThreads(), "inner ctx leaves NThreads at 0 => falls through to process default")
	require.Equal(t, 256, h.EffectiveChunk())

	popped, err := h.Disengage()
	require.NoError(t, err)
	require.Same(t, inner, popped)
	require.Equal(t, 2, h.EffectiveThreads())

	popped, err = h.Disengage()
	require.NoError(t, err)
	require.Same(t, outer, popped)

	_, err = h.Disengage()
	require.ErrorIs(t, err, gbcontext.ErrStackEmpty)
}

func TestEngageNilRejected(t *testing.T) {
	h := gbcontext.NewHandle()
	require.ErrorIs(t, h.Engage(nil), gbcontext.ErrNilContext)
}

func TestGlobalSettings(t *testing.T) {
	gbcontext.SetSparsityControl(gbcontext.FormSparse | gbcontext.FormBitmap)
	require.Equal(t, gbcontext.FormSparse|gbcontext.FormBitmap, gbcontext.SparsityControl())

	gbcontext.SetMode(gbcontext.NonBlocking)
	require.Equal(t, gbcontext.NonBlocking, gbcontext.CurrentMode())

	gbcontext.SetSparsityControl(gbcontext.AllForms)
	gbcontext.SetMode(gbcontext.Blocking)
}

func TestNegativeContextRejected(t *testing.T) {
	_, err := gbcontext.New(-1, 0)
	require.ErrorIs(t, err, gbcontext.ErrNegativeThreads)

	_, err = gbcontext.New(0, -1)
	require.ErrorIs(t, err, gbcontext.ErrNegativeChunk)
}
