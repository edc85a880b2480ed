package container

import (
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/gbop"
)

// Build performs bulk construction from parallel (i[], j[], x[]) arrays
// (spec §6 "Build/extractTuples"): every triple becomes a pending tuple
// tagged with dupOp. d.Sort then decides whether the result is sorted into
// place before Build returns: SortEager materializes immediately, matching
// "sort immediately at the end of the triggering op"; SortLazy (the zero
// value) leaves the tuples pending and lets the next call that needs order
// — ExtractTuples, another Build, a pack/serialize — pay the materialize
// cost instead (spec §6 "Sort": "defer sort to next access that needs
// order"). Pass gbop.IgnoreDuplicates as dupOp to select arbitrary survival
// among duplicates instead of an associative reduction (spec §6: "a
// distinguished 'ignore duplicates' sentinel selects arbitrary survival").
// Complexity: O(n log n) for the materialize sort, paid eagerly or lazily
// depending on d.Sort.
func (m *Matrix) Build(i, j []uint64, x []any, dupOp *gbop.Binary, d descriptor.Descriptor) error {
	if len(i) != len(j) || len(i) != len(x) {
		return ErrLengthMismatch
	}
	if dupOp == nil {
		return ErrNilDupOp
	}

	m.mu.Lock()
	for k := range i {
		if i[k] >= m.nrows || j[k] >= m.ncols {
			m.mu.Unlock()
			return ErrIndexOutOfBounds
		}
		outer, inner := m.outerInner(i[k], j[k])
		m.pending = append(m.pending, pendingTuple{outer: outer, inner: inner, value: x[k], dupOp: dupOp})
	}
	var err error
	if d.Sort == descriptor.SortEager {
		err = m.materializeLocked()
	}
	m.mu.Unlock()

	return err
}

// ExtractTuples returns the matrix's stored entries as parallel (i, j, x)
// arrays, sorted by (outer,inner) order. Any of i, j, x may be requested as
// nil via the corresponding want flag to skip building that array (spec §6
// "any of i, j, x may be requested as null to skip").
// Materializes first if deferred work is pending.
func (m *Matrix) ExtractTuples(wantI, wantJ, wantX bool) (i, j []uint64, x []any, err error) {
	m.mu.Lock()
	if err := m.materializeLocked(); err != nil {
		m.mu.Unlock()
		return nil, nil, nil, err
	}
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	switch m.form {
	case Bitmap, Full:
		inner := m.innerDim()
		for pos, present := range m.presentOrAllTrue() {
			if !present {
				continue
			}
			o := uint64(pos) / inner
			inr := uint64(pos) % inner
			ii, jj := m.ijFromOuterInner(o, inr)
			if wantI {
				i = append(i, ii)
			}
			if wantJ {
				j = append(j, jj)
			}
			if wantX {
				x = append(x, m.dense[pos])
			}
		}
	default:
		for oi := 0; oi < len(m.ptr)-1; oi++ {
			o := uint64(oi)
			if m.form == Hypersparse {
				o = m.vecIDs[oi]
			}
			for p := m.ptr[oi]; p < m.ptr[oi+1]; p++ {
				idx := m.innerIdx[p]
				if isZombie(idx) {
					continue
				}
				ii, jj := m.ijFromOuterInner(o, realIndex(idx))
				if wantI {
					i = append(i, ii)
				}
				if wantJ {
					j = append(j, jj)
				}
				if wantX {
					if m.iso {
						x = append(x, m.values[0])
					} else {
						x = append(x, m.values[p])
					}
				}
			}
		}
	}

	return i, j, x, nil
}

func (m *Matrix) presentOrAllTrue() []bool {
	if m.form == Full {
		all := make([]bool, m.outerDim()*m.innerDim())
		for i := range all {
			all[i] = true
		}

		return all
	}

	return m.present
}
