package container

import (
	"sync"

	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/gbop"
)

// MaxDimension is the largest permitted row/column count (spec §3: "maximum
// valid dimension of 2^60").
const MaxDimension = uint64(1) << 60

// zombieBit marks a dead-but-not-yet-compacted entry by flipping the top bit
// of its stored inner index (spec §4.4 "Zombies"); valid indices fit in 60
// bits, leaving bits 60-63 free.
const zombieBit = uint64(1) << 63

// Form names one of the four interchangeable storage forms (spec §3).
type Form int

const (
	Hypersparse Form = iota
	Sparse
	Bitmap
	Full
)

func (f Form) String() string {
	switch f {
	case Hypersparse:
		return "hypersparse"
	case Sparse:
		return "sparse"
	case Bitmap:
		return "bitmap"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Orientation selects row-major (CSR-like) or column-major (CSC-like)
// storage (spec §3 "orientation").
type Orientation int

const (
	RowMajor Orientation = iota
	ColMajor
)

// pendingTuple is one unmerged (i,j,v) write (spec §3 "pending"). dupOp
// resolves a collision with another tuple, or with an existing materialized
// entry, at the same position.
type pendingTuple struct {
	outer, inner uint64
	value        any
	dupOp        *gbop.Binary
}

// Matrix is the engine's central sparse container (spec §3, §4). Vectors
// and scalars are Matrix values with ncols==1 (or nrows==1) and 1×1
// respectively; see package doc.
type Matrix struct {
	mu sync.RWMutex

	nrows, ncols uint64
	typ          *dtype.Type
	orientation  Orientation
	form         Form
	iso          bool

	// Sparse/Hypersparse representation. vecIDs is nil for Sparse (the
	// outer index is implicit 0..outer-1); for Hypersparse it holds the
	// sorted, unique set of non-empty outer-vector ids and ptr/innerIdx are
	// indexed in lockstep with it (len(ptr) == len(vecIDs)+1).
	vecIDs   []uint64
	ptr      []uint64
	innerIdx []uint64 // zombie-tagged via zombieBit; length nvals incl. zombies
	values   []any    // length nvals incl. zombies, or 1 when iso

	// Bitmap/Full representation, row-major over (outer, inner) regardless
	// of m.orientation's effect on the sparse arrays above.
	present []bool // nil for Full; length outer*inner for Bitmap
	dense   []any  // length outer*inner for Bitmap and Full

	jumbled     bool
	zombieCount int

	pending []pendingTuple

	sparsityControl uint8
	hyperSwitch      float64
	bitmapSwitch     float64
}
