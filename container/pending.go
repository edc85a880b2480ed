package container

import (
	"sort"

	"github.com/katalvlaran/graphblas/gbop"
)

// WaitMode selects how thoroughly Wait drains an object (spec §4.4).
type WaitMode int

const (
	// Complete is a lighter barrier: it only establishes a happens-before
	// point for observers and need not drain anything. This engine has no
	// internal concurrent-deferral queue beyond the caller's own pending
	// list (no background worker applies pending tuples asynchronously),
	// so Complete is a no-op — the pending list is already
	// linearizable from the calling goroutine's point of view.
	Complete WaitMode = iota
	// Materialize merges pending tuples, compacts zombies, sorts jumbled
	// vectors, and chooses a storage form.
	Materialize
)

// Wait drains deferred work per mode (spec §4.4).
// Complexity: Materialize is O(nvals log nvals) dominated by the merge
// sort; Complete is O(1).
func (m *Matrix) Wait(mode WaitMode) error {
	if mode == Complete {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.materializeLocked()
}

// hasDeferredWork reports whether m needs materialize before it can be
// safely iterated, packed, or serialized.
func (m *Matrix) hasDeferredWorkLocked() bool {
	return len(m.pending) > 0 || m.zombieCount > 0 || m.jumbled
}

// materializeLocked merges pending, compacts zombies, sorts jumbled order,
// then reselects a storage form. Caller must hold m.mu for writing.
func (m *Matrix) materializeLocked() error {
	if !m.hasDeferredWorkLocked() {
		return nil
	}

	type entry struct {
		outer, inner uint64
		value        any
		dupOp        *gbop.Binary
	}

	var all []entry

	switch m.form {
	case Bitmap, Full:
		// SetElement writes Bitmap/Full cells directly, but Build appends
		// pending tuples in any form, so the present cells are gathered
		// here and rebuilt together with them.
		inner := m.innerDim()
		for pos := range m.dense {
			if m.form == Full || m.present[pos] {
				all = append(all, entry{outer: uint64(pos) / inner, inner: uint64(pos) % inner, value: m.dense[pos]})
			}
		}
		m.present, m.dense = nil, nil
		m.form = Hypersparse
	default:
		for oi := 0; oi < len(m.ptr)-1; oi++ {
			o := oi
			if m.form == Hypersparse {
				o = int(m.vecIDs[oi])
			}
			for p := m.ptr[oi]; p < m.ptr[oi+1]; p++ {
				idx := m.innerIdx[p]
				if isZombie(idx) {
					continue
				}
				v := m.values[0]
				if !m.iso {
					v = m.values[p]
				}
				all = append(all, entry{outer: uint64(o), inner: realIndex(idx), value: v})
			}
		}
	}

	for _, pt := range m.pending {
		all = append(all, entry{outer: pt.outer, inner: pt.inner, value: pt.value, dupOp: pt.dupOp})
	}

	sort.SliceStable(all, func(a, b int) bool {
		if all[a].outer != all[b].outer {
			return all[a].outer < all[b].outer
		}

		return all[a].inner < all[b].inner
	})

	// Merge duplicates at the same (outer,inner), applying the later
	// tuple's dup op pairwise in append order (spec §4.4: "a per-pending-
	// list binary op for duplicate resolution").
	merged := make([]entry, 0, len(all))
	for _, e := range all {
		if n := len(merged); n > 0 && merged[n-1].outer == e.outer && merged[n-1].inner == e.inner {
			op := e.dupOp
			if op == nil {
				op = merged[n-1].dupOp
			}
			switch {
			case op != nil && op.IgnoreDup:
				// spec §6 "ignore duplicates" sentinel: keep an arbitrary
				// survivor instead of invoking any operator.
				merged[n-1].value = e.value
			case op != nil:
				merged[n-1].value = op.Apply(merged[n-1].value, e.value)
			default:
				merged[n-1].value = e.value // no dup op: last write wins
			}

			continue
		}
		merged = append(merged, e)
	}

	// Rebuild sparse/hypersparse arrays grouped by outer index.
	byOuter := make(map[uint64][]entry)
	outerSeen := make([]uint64, 0)
	for _, e := range merged {
		if _, ok := byOuter[e.outer]; !ok {
			outerSeen = append(outerSeen, e.outer)
		}
		byOuter[e.outer] = append(byOuter[e.outer], e)
	}
	sort.Slice(outerSeen, func(a, b int) bool { return outerSeen[a] < outerSeen[b] })

	newVecIDs := make([]uint64, 0, len(outerSeen))
	newPtr := make([]uint64, 0, len(outerSeen)+1)
	newInner := make([]uint64, 0, len(merged))
	newValues := make([]any, 0, len(merged))
	newPtr = append(newPtr, 0)
	for _, o := range outerSeen {
		newVecIDs = append(newVecIDs, o)
		for _, e := range byOuter[o] {
			newInner = append(newInner, e.inner)
			newValues = append(newValues, e.value)
		}
		newPtr = append(newPtr, uint64(len(newInner)))
	}

	m.vecIDs = newVecIDs
	m.ptr = newPtr
	m.innerIdx = newInner
	m.values = newValues
	m.pending = nil
	m.zombieCount = 0
	m.jumbled = false
	m.iso = false // a merge may have introduced distinct values; re-derive iso conservatively

	return m.selectFormLocked()
}

func isZombie(idx uint64) bool   { return idx&zombieBit != 0 }
func realIndex(idx uint64) uint64 { return idx &^ zombieBit }
