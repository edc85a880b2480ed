package descriptor

// Option mutates a Descriptor under construction. Constructors validate
// their argument and return an error instead of panicking, since descriptor
// values are commonly built from caller-supplied configuration (a bad
// nthreads/chunk/level is plausibly user input, not a coding mistake, so
// New surfaces it as an error).
type Option func(*Descriptor) error

// New builds a Descriptor from zero or more options, applied in order.
// Complexity: O(len(opts)).
func New(opts ...Option) (Descriptor, error) {
	d := Default
	for _, opt := range opts {
		if err := opt(&d); err != nil {
			return Descriptor{}, err
		}
	}

	return d, nil
}

// WithOutput sets OUTP.
func WithOutput(mode OutputMode) Option {
	return func(d *Descriptor) error { d.Output = mode; return nil }
}

// WithMask sets MASK.
func WithMask(mode MaskMode) Option {
	return func(d *Descriptor) error { d.Mask = mode; return nil }
}

// WithInput0 sets INP0.
func WithInput0(mode TransposeMode) Option {
	return func(d *Descriptor) error { d.Input0 = mode; return nil }
}

// WithInput1 sets INP1.
func WithInput1(mode TransposeMode) Option {
	return func(d *Descriptor) error { d.Input1 = mode; return nil }
}

// WithMxMAlgorithm sets the matrix-multiply kernel hint.
func WithMxMAlgorithm(alg MxMAlgorithm) Option {
	return func(d *Descriptor) error { d.MxM = alg; return nil }
}

// WithSort sets the sort-eagerness hint.
func WithSort(mode SortMode) Option {
	return func(d *Descriptor) error { d.Sort = mode; return nil }
}

// WithCompression sets the serialization compression method and level.
// Level is only meaningful for CompressionZstd and CompressionLz4hc but is
// always validated as >= 0.
func WithCompression(method CompressionMethod, level int) Option {
	return func(d *Descriptor) error {
		if level < 0 {
			return ErrNegativeCompressionLevel
		}
		d.Compression = Compression{Method: method, Level: level}

		return nil
	}
}

// WithImportTrust sets the pack/unpack validation level.
func WithImportTrust(trust ImportTrust) Option {
	return func(d *Descriptor) error { d.Trust = trust; return nil }
}

// WithThreads sets the per-call thread count override; 0 restores the
// engine/context default.
func WithThreads(n int) Option {
	return func(d *Descriptor) error {
		if n < 0 {
			return ErrNegativeThreads
		}
		d.NThreads = n

		return nil
	}
}

// WithChunk sets the per-call chunk size override; 0 restores the
// engine/context default.
func WithChunk(n int) Option {
	return func(d *Descriptor) error {
		if n < 0 {
			return ErrNegativeChunk
		}
		d.Chunk = n

		return nil
	}
}
