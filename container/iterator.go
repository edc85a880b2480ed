package container

import (
	"sort"

	"github.com/katalvlaran/graphblas/status"
)

// segment walks the stored, non-zombie entries of one contiguous run —
// either one outer vector's slice of ptr/innerIdx (sparse/hypersparse) or a
// [pos,posEnd) window of the dense buffers (bitmap/full). advance is the one
// place that knows how to step either representation; every cursor type
// below is built on top of it.
type segment struct {
	// sparse/hypersparse
	p, end uint64
	// bitmap/full
	pos, posEnd uint64

	started   bool
	exhausted bool
}

// advance moves the segment onto its next present, non-zombie position and
// reports whether one was found. The first call after attach checks the
// initial position itself rather than skipping past it.
func (s *segment) advance(m *Matrix) bool {
	if s.exhausted {
		return false
	}

	if m.form == Bitmap || m.form == Full {
		if s.started {
			s.pos++
		}
		s.started = true
		for s.pos < s.posEnd {
			if m.form == Full || m.present[s.pos] {
				return true
			}
			s.pos++
		}
		s.exhausted = true

		return false
	}

	if s.started {
		s.p++
	}
	s.started = true
	for s.p < s.end {
		if !isZombie(m.innerIdx[s.p]) {
			return true
		}
		s.p++
	}
	s.exhausted = true

	return false
}

func (s *segment) coords(m *Matrix, outer uint64) (i, j uint64) {
	if m.form == Bitmap || m.form == Full {
		inner := m.innerDim()
		return m.ijFromOuterInner(s.pos/inner, s.pos%inner)
	}

	return m.ijFromOuterInner(outer, realIndex(m.innerIdx[s.p]))
}

func (s *segment) value(m *Matrix) any {
	if m.form == Bitmap || m.form == Full {
		return m.dense[s.pos]
	}
	if m.iso {
		return m.values[0]
	}

	return m.values[s.p]
}

// outerHasEntryLocked reports whether the given outer vector holds at least
// one present entry, for the bitmap/full forms where every outer vector
// exists whether or not it has entries.
func (m *Matrix) outerHasEntryLocked(outer uint64) bool {
	inner := m.innerDim()
	start := outer * inner
	for p := start; p < start+inner; p++ {
		if m.form == Full || m.present[p] {
			return true
		}
	}

	return false
}

// nthNonEmptyOuterLocked returns the outer index of the k-th (0-indexed)
// outer vector that holds at least one entry, scanning in outer order
// (spec §4.9: "seek(k) positions on the k-th non-empty outer vector").
// Returns status.ErrExhausted if fewer than k+1 non-empty outer vectors
// exist.
func (m *Matrix) nthNonEmptyOuterLocked(k uint64) (uint64, error) {
	count := uint64(0)

	switch m.form {
	case Hypersparse:
		if k >= uint64(len(m.vecIDs)) {
			return 0, status.ErrExhausted
		}

		return m.vecIDs[k], nil
	case Bitmap, Full:
		for outer := uint64(0); outer < m.outerDim(); outer++ {
			if m.outerHasEntryLocked(outer) {
				if count == k {
					return outer, nil
				}
				count++
			}
		}
	default: // Sparse
		for outer := uint64(0); outer < uint64(len(m.ptr))-1; outer++ {
			if m.ptr[outer] < m.ptr[outer+1] {
				if count == k {
					return outer, nil
				}
				count++
			}
		}
	}

	return 0, status.ErrExhausted
}

// EntryIterator walks every present entry of a materialized Matrix in
// (outer,inner) order (spec §4.9 "matrix-entry" cursor). Being a "pure
// entry iterator" it does not require a specific traversal order and never
// surfaces NO_VALUE: empty outer vectors are simply skipped over on the way
// to the next present entry. It holds a read-only view into m's buffers;
// concurrent mutation of m while an iterator is attached is undefined,
// matching spec §4.9's own caveat.
type EntryIterator struct {
	m  *Matrix
	oi int // current outer slot (sparse/hypersparse only)

	seg  segment
	done bool
}

// NewEntryIterator attaches an iterator to m. m must already be free of
// deferred work (call m.Wait(Materialize) first); NewEntryIterator returns
// ErrNotMaterializable otherwise, since an iterator over pending/zombie/
// jumbled state would see an inconsistent view (spec §4.9: "The object must
// be materialized before a safe iteration").
func NewEntryIterator(m *Matrix) (*EntryIterator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.hasDeferredWorkLocked() {
		return nil, ErrNotMaterializable
	}

	it := &EntryIterator{m: m}
	it.attachFirstLocked()

	return it, nil
}

func (it *EntryIterator) attachFirstLocked() {
	m := it.m
	if m.form == Bitmap || m.form == Full {
		it.seg = segment{posEnd: m.outerDim() * m.innerDim()}
		return
	}
	if len(m.ptr) <= 1 {
		it.done = true
		return
	}
	it.oi = 0
	it.seg = segment{p: m.ptr[0], end: m.ptr[1]}
}

// Next advances the cursor. Returns status.ErrExhausted once past the last
// entry (spec §4.9 EXHAUSTED); a present entry yields a nil error (SUCCESS).
func (it *EntryIterator) Next() error {
	m := it.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	if it.done {
		return status.ErrExhausted
	}

	if m.form == Bitmap || m.form == Full {
		if it.seg.advance(m) {
			return nil
		}
		it.done = true

		return status.ErrExhausted
	}

	for {
		if it.seg.advance(m) {
			return nil
		}
		it.oi++
		if it.oi >= len(m.ptr)-1 {
			it.done = true

			return status.ErrExhausted
		}
		it.seg = segment{p: m.ptr[it.oi], end: m.ptr[it.oi+1]}
	}
}

// Seek repositions the cursor directly onto raw position p, the flat index
// into the object's internal value storage (spec §4.9: "seek(k) positions
// ... on a specific p-index"). The following Next call looks for the first
// present, non-zombie entry at or after p. Returns ErrIndexOutOfBounds if p
// is past the object's internal storage length.
func (it *EntryIterator) Seek(p uint64) error {
	m := it.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.form == Bitmap || m.form == Full {
		total := m.outerDim() * m.innerDim()
		if p > total {
			return ErrIndexOutOfBounds
		}
		it.seg = segment{pos: p, posEnd: total}
		it.done = false

		return nil
	}

	nvals := uint64(len(m.innerIdx))
	if p > nvals {
		return ErrIndexOutOfBounds
	}
	if len(m.ptr) <= 1 {
		it.done = true

		return nil
	}

	oi := sort.Search(len(m.ptr)-1, func(k int) bool { return m.ptr[k+1] > p })
	if oi >= len(m.ptr)-1 {
		it.done = true

		return nil
	}

	it.oi = oi
	it.seg = segment{p: p, end: m.ptr[oi+1]}
	it.done = false

	return nil
}

// Row returns the current entry's row index. Valid only after a nil-error
// Next (spec §4.9: "Query methods... require SUCCESS as the last return").
func (it *EntryIterator) Row() uint64 {
	i, _ := it.coords()
	return i
}

// Col returns the current entry's column index.
func (it *EntryIterator) Col() uint64 {
	_, j := it.coords()
	return j
}

func (it *EntryIterator) coords() (i, j uint64) {
	m := it.m
	o := uint64(it.oi)
	if m.form == Hypersparse {
		o = m.vecIDs[it.oi]
	}

	return it.seg.coords(m, o)
}

// Value returns the current entry's value.
func (it *EntryIterator) Value() any {
	return it.seg.value(it.m)
}

// vectorIterator walks the stored entries of a single outer vector (spec
// §4.9 "row"/"column" cursors). Unlike EntryIterator it distinguishes an
// outer vector that legitimately has zero entries (NO_VALUE: a valid
// position, nothing to report) from having walked off the end of the
// vector's entries (EXHAUSTED), since an order-sensitive cursor can be
// asked to report on one specific, possibly-empty vector rather than
// skipping past it.
type vectorIterator struct {
	m     *Matrix
	outer uint64

	seg      segment
	hadEntry bool
}

func (it *vectorIterator) attachLocked(outer uint64) {
	m := it.m
	it.outer = outer
	it.hadEntry = false

	if m.form == Bitmap || m.form == Full {
		inner := m.innerDim()
		it.seg = segment{pos: outer * inner, posEnd: outer*inner + inner}
		return
	}

	oi := m.outerSlotLocked(outer)
	if oi < 0 {
		it.seg = segment{}
		return
	}
	it.seg = segment{p: m.ptr[oi], end: m.ptr[oi+1]}
}

// next advances within the attached vector. A nil error is SUCCESS; the
// first call on a vector with zero entries returns status.ErrNoValue, and
// every call thereafter (or once the vector's entries are exhausted)
// returns status.ErrExhausted.
func (it *vectorIterator) next() error {
	m := it.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	if it.seg.exhausted {
		return status.ErrExhausted
	}
	if it.seg.advance(m) {
		it.hadEntry = true

		return nil
	}
	if it.hadEntry {
		return status.ErrExhausted
	}

	return status.ErrNoValue
}

func (it *vectorIterator) value() any {
	return it.seg.value(it.m)
}

func (it *vectorIterator) coords() (i, j uint64) {
	return it.seg.coords(it.m, it.outer)
}

// RowIterator walks the stored entries of a single row in column order
// (spec §4.9 "row" cursor). It requires m to be stored RowMajor: a
// column-major object has no row-contiguous segment to walk without a full
// scan, so NewRowIterator rejects it rather than silently paying that cost.
type RowIterator struct {
	v vectorIterator
}

// NewRowIterator attaches a RowIterator to row of m. m must already be free
// of deferred work and stored RowMajor.
func NewRowIterator(m *Matrix, row uint64) (*RowIterator, error) {
	if m.orientation != RowMajor {
		return nil, ErrWrongOrientation
	}
	if row >= m.nrows {
		return nil, ErrIndexOutOfBounds
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.hasDeferredWorkLocked() {
		return nil, ErrNotMaterializable
	}

	it := &RowIterator{v: vectorIterator{m: m}}
	it.v.attachLocked(row)

	return it, nil
}

// Next advances the cursor within the current row.
func (it *RowIterator) Next() error { return it.v.next() }

// Seek repositions the cursor onto the k-th non-empty row, restarting the
// per-row entry walk from its first entry (spec §4.9: "seek(k) positions
// on the k-th non-empty outer vector").
func (it *RowIterator) Seek(k uint64) error {
	m := it.v.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, err := m.nthNonEmptyOuterLocked(k)
	if err != nil {
		return err
	}
	it.v.attachLocked(row)

	return nil
}

// Row returns the row this cursor is attached to.
func (it *RowIterator) Row() uint64 { return it.v.outer }

// Col returns the current entry's column index. Valid only after a
// nil-error Next.
func (it *RowIterator) Col() uint64 {
	_, j := it.v.coords()
	return j
}

// Value returns the current entry's value. Valid only after a nil-error Next.
func (it *RowIterator) Value() any { return it.v.value() }

// ColumnIterator walks the stored entries of a single column in row order
// (spec §4.9 "column" cursor). It requires m to be stored ColMajor, for the
// same reason NewRowIterator requires RowMajor.
type ColumnIterator struct {
	v vectorIterator
}

// NewColumnIterator attaches a ColumnIterator to col of m. m must already
// be free of deferred work and stored ColMajor.
func NewColumnIterator(m *Matrix, col uint64) (*ColumnIterator, error) {
	if m.orientation != ColMajor {
		return nil, ErrWrongOrientation
	}
	if col >= m.ncols {
		return nil, ErrIndexOutOfBounds
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.hasDeferredWorkLocked() {
		return nil, ErrNotMaterializable
	}

	it := &ColumnIterator{v: vectorIterator{m: m}}
	it.v.attachLocked(col)

	return it, nil
}

// Next advances the cursor within the current column.
func (it *ColumnIterator) Next() error { return it.v.next() }

// Seek repositions the cursor onto the k-th non-empty column, restarting
// the per-column entry walk from its first entry.
func (it *ColumnIterator) Seek(k uint64) error {
	m := it.v.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, err := m.nthNonEmptyOuterLocked(k)
	if err != nil {
		return err
	}
	it.v.attachLocked(col)

	return nil
}

// Col returns the column this cursor is attached to.
func (it *ColumnIterator) Col() uint64 { return it.v.outer }

// Row returns the current entry's row index. Valid only after a nil-error
// Next.
func (it *ColumnIterator) Row() uint64 {
	i, _ := it.v.coords()
	return i
}

// Value returns the current entry's value. Valid only after a nil-error Next.
func (it *ColumnIterator) Value() any { return it.v.value() }
