package container

import (
	"fmt"

	"github.com/katalvlaran/graphblas/dtype"
)

// Default density thresholds for form transitions (spec §3
// "hyper_switch, bitmap_switch").
const (
	DefaultHyperSwitch  = 0.0625 // SuiteSparse-style default (1/16)
	DefaultBitmapSwitch = 0.5
)

// Option configures a new Matrix. Follows the functional-options pattern
// used throughout this module (descriptor.Option, gbop's table builders).
type Option func(*Matrix)

// WithOrientation sets row-major or column-major storage. Default RowMajor.
func WithOrientation(o Orientation) Option {
	return func(m *Matrix) { m.orientation = o }
}

// WithSparsityControl restricts which storage forms selectForm may choose
// (spec §3 "sparsity_control"; bits defined in package gbcontext as
// FormHypersparse etc., reused here by value since container must not
// import gbcontext — the bit layout is a small, stable, shared constant,
// duplicated rather than creating a dependency cycle between the two
// packages).
func WithSparsityControl(mask uint8) Option {
	return func(m *Matrix) { m.sparsityControl = mask }
}

// WithHyperSwitch overrides the hypersparse/sparse density threshold.
func WithHyperSwitch(v float64) Option {
	return func(m *Matrix) { m.hyperSwitch = v }
}

// WithBitmapSwitch overrides the sparse-or-hypersparse/bitmap density
// threshold.
func WithBitmapSwitch(v float64) Option {
	return func(m *Matrix) { m.bitmapSwitch = v }
}

// Bit values mirroring gbcontext's form bitmask (see WithSparsityControl).
const (
	AllowHypersparse uint8 = 1 << iota
	AllowSparse
	AllowBitmap
	AllowFull

	AllowAllForms = AllowHypersparse | AllowSparse | AllowBitmap | AllowFull
)

// New constructs an empty nrows×ncols Matrix of the given type.
// Stage 1 (Validate): typ non-nil; 1 <= nrows,ncols <= MaxDimension.
// Stage 2 (Construct): starts in Hypersparse form with zero entries — an
// empty matrix of any shape is cheapest to represent as hypersparse with
// k=0 non-empty outer vectors.
// Complexity: O(1).
func New(typ *dtype.Type, nrows, ncols uint64, opts ...Option) (*Matrix, error) {
	if typ == nil {
		return nil, ErrNilType
	}
	if nrows == 0 || nrows > MaxDimension || ncols == 0 || ncols > MaxDimension {
		return nil, ErrInvalidDimension
	}

	m := &Matrix{
		nrows:           nrows,
		ncols:           ncols,
		typ:             typ,
		form:            Hypersparse,
		vecIDs:          []uint64{},
		ptr:             []uint64{0},
		innerIdx:        []uint64{},
		values:          []any{},
		sparsityControl: AllowAllForms,
		hyperSwitch:      DefaultHyperSwitch,
		bitmapSwitch:     DefaultBitmapSwitch,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Dup returns a deep copy of m, including pending work and zombie state —
// the copy observes identical logical content once both are materialized,
// but each may independently drain at its own pace thereafter.
// Complexity: O(nvals + outer + inner).
func (m *Matrix) Dup() *Matrix {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cp := &Matrix{
		nrows:           m.nrows,
		ncols:           m.ncols,
		typ:             m.typ,
		orientation:     m.orientation,
		form:            m.form,
		iso:             m.iso,
		jumbled:         m.jumbled,
		zombieCount:     m.zombieCount,
		sparsityControl: m.sparsityControl,
		hyperSwitch:      m.hyperSwitch,
		bitmapSwitch:     m.bitmapSwitch,
	}
	cp.vecIDs = append([]uint64(nil), m.vecIDs...)
	cp.ptr = append([]uint64(nil), m.ptr...)
	cp.innerIdx = append([]uint64(nil), m.innerIdx...)
	cp.values = append([]any(nil), m.values...)
	if m.present != nil {
		cp.present = append([]bool(nil), m.present...)
	}
	if m.dense != nil {
		cp.dense = append([]any(nil), m.dense...)
	}
	cp.pending = append([]pendingTuple(nil), m.pending...)

	return cp
}

// NRows returns the row count.
func (m *Matrix) NRows() uint64 { m.mu.RLock(); defer m.mu.RUnlock(); return m.nrows }

// NCols returns the column count.
func (m *Matrix) NCols() uint64 { m.mu.RLock(); defer m.mu.RUnlock(); return m.ncols }

// Type returns the matrix's element type handle.
func (m *Matrix) Type() *dtype.Type { m.mu.RLock(); defer m.mu.RUnlock(); return m.typ }

// Form returns the matrix's current storage form.
func (m *Matrix) Form() Form { m.mu.RLock(); defer m.mu.RUnlock(); return m.form }

// IsIso reports whether every present entry shares one stored value.
func (m *Matrix) IsIso() bool { m.mu.RLock(); defer m.mu.RUnlock(); return m.iso }

// NVals returns the number of stored entries, excluding zombies and after
// resolving pending work (spec §3: "nvals excludes zombies").
// Complexity: O(nvals log nvals) if deferred work must be materialized
// first, else O(1) for Full/Hypersparse/Sparse and O(nrows*ncols) for Bitmap.
func (m *Matrix) NVals() (uint64, error) {
	m.mu.Lock()
	if err := m.materializeLocked(); err != nil {
		m.mu.Unlock()
		return 0, err
	}
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	switch m.form {
	case Full:
		return m.nrows * m.ncols, nil
	case Bitmap:
		var n uint64
		for _, p := range m.present {
			if p {
				n++
			}
		}
		return n, nil
	default:
		return uint64(len(m.innerIdx)), nil
	}
}

// String implements fmt.Stringer for debugging and log messages, matching
// the teacher's Dense.String() convention of a short one-line summary
// rather than a full dump.
func (m *Matrix) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fmt.Sprintf("Matrix[%dx%d %s form=%s iso=%v pending=%d zombies=%d]",
		m.nrows, m.ncols, m.typ, m.form, m.iso, len(m.pending), m.zombieCount)
}

// outer/inner split each (row,col) pair by orientation: row-major stores
// row as outer, col as inner; column-major is transposed.
func (m *Matrix) outerInner(i, j uint64) (outer, inner uint64) {
	if m.orientation == ColMajor {
		return j, i
	}

	return i, j
}

func (m *Matrix) ijFromOuterInner(outer, inner uint64) (i, j uint64) {
	if m.orientation == ColMajor {
		return inner, outer
	}

	return outer, inner
}

func (m *Matrix) outerDim() uint64 {
	if m.orientation == ColMajor {
		return m.ncols
	}

	return m.nrows
}

func (m *Matrix) innerDim() uint64 {
	if m.orientation == ColMajor {
		return m.nrows
	}

	return m.ncols
}
