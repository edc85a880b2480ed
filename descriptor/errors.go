package descriptor

import "errors"

// Sentinel errors for Descriptor construction.
var (
	// ErrNegativeThreads indicates a negative thread count was requested.
	ErrNegativeThreads = errors.New("descriptor: nthreads must be >= 0 (0 means engine default)")

	// ErrNegativeChunk indicates a negative chunk size was requested.
	ErrNegativeChunk = errors.New("descriptor: chunk must be >= 0 (0 means engine default)")

	// ErrNegativeCompressionLevel indicates a compression level below 0 was
	// requested for a leveled method (Zstd, Lz4hc).
	ErrNegativeCompressionLevel = errors.New("descriptor: compression level must be >= 0")
)
