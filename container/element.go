package container

import (
	"sort"

	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/gbop"
)

func (m *Matrix) checkBounds(i, j uint64) error {
	if i >= m.nrows || j >= m.ncols {
		return ErrIndexOutOfBounds
	}

	return nil
}

// SetElement writes a value at (i,j), overwriting any prior value there.
//
// Bitmap and Full are already dense-shaped, so a set is applied directly
// (O(1)); Hypersparse and Sparse instead append a pending tuple tagged with
// the "overwrite" (SECOND) duplicate op, deferring the merge to Wait or the
// next operation that must drain — the mechanism spec §4.4 describes.
func (m *Matrix) SetElement(i, j uint64, v any) error {
	if err := m.checkBounds(i, j); err != nil {
		return err
	}
	if !dtype.GoTypeMatches(m.typ.Code, v) {
		return ErrTypeMismatch
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	outer, inner := m.outerInner(i, j)

	switch m.form {
	case Bitmap:
		pos := outer*m.innerDim() + inner
		m.present[pos] = true
		m.dense[pos] = v
		return nil
	case Full:
		pos := outer*m.innerDim() + inner
		m.dense[pos] = v
		return nil
	default:
		op, _ := overwriteOp(m.typ)
		m.pending = append(m.pending, pendingTuple{outer: outer, inner: inner, value: v, dupOp: op})
		return nil
	}
}

// overwriteOp builds the SECOND-style operator used to resolve a duplicate
// SetElement at the same position: the later write always wins.
func overwriteOp(typ *dtype.Type) (*gbop.Binary, error) {
	return gbop.NewBinary("SET_OVERWRITE", typ, typ, typ, func(_, y any) any { return y })
}

// ExtractElement returns the value stored at (i,j) and whether one exists.
// Performs a targeted scan of pending tuples intersecting (i,j) rather than
// a full materialize (spec §4.4).
// Complexity: O(log nvals + pending).
func (m *Matrix) ExtractElement(i, j uint64) (any, bool, error) {
	if err := m.checkBounds(i, j); err != nil {
		return nil, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	outer, inner := m.outerInner(i, j)

	switch m.form {
	case Bitmap:
		pos := outer*m.innerDim() + inner
		if !m.present[pos] {
			return m.resolvePendingOnly(outer, inner)
		}
		return m.dense[pos], true, nil
	case Full:
		pos := outer*m.innerDim() + inner
		return m.dense[pos], true, nil
	default:
		if v, found := m.findMaterializedLocked(outer, inner); found {
			return m.applyPendingOver(outer, inner, v, true)
		}
		return m.resolvePendingOnly(outer, inner)
	}
}

// findMaterializedLocked binary-searches the current (sorted, if not
// jumbled) sparse/hypersparse arrays for (outer,inner). A jumbled vector
// forces a linear scan of just that vector instead of the whole matrix.
func (m *Matrix) findMaterializedLocked(outer, inner uint64) (any, bool) {
	oi := m.outerSlotLocked(outer)
	if oi < 0 {
		return nil, false
	}
	lo, hi := m.ptr[oi], m.ptr[oi+1]

	if m.jumbled {
		for p := lo; p < hi; p++ {
			idx := m.innerIdx[p]
			if isZombie(idx) {
				continue
			}
			if realIndex(idx) == inner {
				if m.iso {
					return m.values[0], true
				}
				return m.values[p], true
			}
		}
		return nil, false
	}

	p := sort.Search(int(hi-lo), func(k int) bool {
		return realIndex(m.innerIdx[lo+uint64(k)]) >= inner
	})
	pos := lo + uint64(p)
	if pos >= hi || realIndex(m.innerIdx[pos]) != inner || isZombie(m.innerIdx[pos]) {
		return nil, false
	}
	if m.iso {
		return m.values[0], true
	}

	return m.values[pos], true
}

// outerSlotLocked maps an outer index to its ptr-array slot, or -1 if the
// outer vector has no materialized entries (Hypersparse) — note this does
// not distinguish "row absent" from "row empty" for Sparse, where every
// outer index has a slot by construction.
func (m *Matrix) outerSlotLocked(outer uint64) int {
	if m.form == Hypersparse {
		p := sort.Search(len(m.vecIDs), func(k int) bool { return m.vecIDs[k] >= outer })
		if p >= len(m.vecIDs) || m.vecIDs[p] != outer {
			return -1
		}
		return p
	}
	if outer >= uint64(len(m.ptr))-1 {
		return -1
	}

	return int(outer)
}

// applyPendingOver folds any pending tuples at (outer,inner) on top of a
// base value already known to exist (from materialized arrays).
func (m *Matrix) applyPendingOver(outer, inner uint64, base any, found bool) (any, bool, error) {
	v := base
	for _, pt := range m.pending {
		if pt.outer == outer && pt.inner == inner {
			if pt.dupOp != nil {
				v = pt.dupOp.Apply(v, pt.value)
			} else {
				v = pt.value
			}
			found = true
		}
	}

	return v, found, nil
}

// resolvePendingOnly looks only at the pending list for (outer,inner),
// used when the materialized arrays have no entry there.
func (m *Matrix) resolvePendingOnly(outer, inner uint64) (any, bool, error) {
	var v any
	found := false
	for _, pt := range m.pending {
		if pt.outer == outer && pt.inner == inner {
			if found && pt.dupOp != nil {
				v = pt.dupOp.Apply(v, pt.value)
			} else {
				v = pt.value
			}
			found = true
		}
	}

	return v, found, nil
}

// RemoveElement deletes any value at (i,j). Bitmap/Full clear the presence
// bit directly (Full degrades to Bitmap, since spec invariant 6 requires
// Full to have no holes). Hypersparse/Sparse drop any pending tuples at
// this position and zombie-mark a materialized entry if one exists (spec
// §4.4 "Zombies": "marks the entry by flipping a sentinel bit ... instead
// of shifting arrays").
func (m *Matrix) RemoveElement(i, j uint64) error {
	if err := m.checkBounds(i, j); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	outer, inner := m.outerInner(i, j)

	switch m.form {
	case Full:
		if err := m.convertToLocked(Bitmap); err != nil {
			return err
		}
		fallthrough
	case Bitmap:
		pos := outer*m.innerDim() + inner
		m.present[pos] = false
		return nil
	default:
		kept := m.pending[:0]
		for _, pt := range m.pending {
			if pt.outer == outer && pt.inner == inner {
				continue
			}
			kept = append(kept, pt)
		}
		m.pending = kept

		oi := m.outerSlotLocked(outer)
		if oi < 0 {
			return nil
		}
		lo, hi := m.ptr[oi], m.ptr[oi+1]
		for p := lo; p < hi; p++ {
			idx := m.innerIdx[p]
			if isZombie(idx) || realIndex(idx) != inner {
				continue
			}
			m.innerIdx[p] |= zombieBit
			m.zombieCount++
			break
		}

		return nil
	}
}
