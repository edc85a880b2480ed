package descriptor_test

import (
	"testing"

	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsZeroValue(t *testing.T) {
	d, err := descriptor.New()
	require.NoError(t, err)
	require.Equal(t, descriptor.Default, d)
	require.Equal(t, descriptor.OutputDefault, d.Output)
	require.Equal(t, descriptor.MaskDefault, d.Mask)
	require.Equal(t, descriptor.MxMDefault, d.MxM)
}

func TestOptionsApply(t *testing.T) {
	d, err := descriptor.New(
		descriptor.WithOutput(descriptor.OutputReplace),
		descriptor.WithMask(descriptor.MaskComplement),
		descriptor.WithInput0(descriptor.InputTranspose),
		descriptor.WithMxMAlgorithm(descriptor.MxMHash),
		descriptor.WithThreads(4),
		descriptor.WithChunk(1024),
	)
	require.NoError(t, err)
	require.Equal(t, descriptor.OutputReplace, d.Output)
	require.Equal(t, descriptor.MaskComplement, d.Mask)
	require.Equal(t, descriptor.InputTranspose, d.Input0)
	require.Equal(t, descriptor.MxMHash, d.MxM)
	require.Equal(t, 4, d.NThreads)
	require.Equal(t, 1024, d.Chunk)
}

func TestNegativeThreadsRejected(t *testing.T) {
	_, err := descriptor.New(descriptor.WithThreads(-1))
	require.ErrorIs(t, err, descriptor.ErrNegativeThreads)
}

func TestNegativeChunkRejected(t *testing.T) {
	_, err := descriptor.New(descriptor.WithChunk(-1))
	require.ErrorIs(t, err, descriptor.ErrNegativeChunk)
}

func TestCompressionLevelValidated(t *testing.T) {
	_, err := descriptor.New(descriptor.WithCompression(descriptor.CompressionZstd, -1))
	require.ErrorIs(t, err, descriptor.ErrNegativeCompressionLevel)

	d, err := descriptor.New(descriptor.WithCompression(descriptor.CompressionZstd, 9))
	require.NoError(t, err)
	require.Equal(t, descriptor.CompressionZstd, d.Compression.Method)
	require.Equal(t, 9, d.Compression.Level)
}

func TestMxMAlgorithmString(t *testing.T) {
	require.Equal(t, "hash", descriptor.MxMHash.String())
	require.Equal(t, "default", descriptor.MxMDefault.String())
}
