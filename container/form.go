package container

// formBit maps a Form to its AllowX sparsity_control bit.
func formBit(f Form) uint8 {
	switch f {
	case Hypersparse:
		return AllowHypersparse
	case Sparse:
		return AllowSparse
	case Bitmap:
		return AllowBitmap
	case Full:
		return AllowFull
	default:
		return 0
	}
}

// nearestPermittedForm finds the closest form to target that
// sparsity_control permits (spec §4.3: "if the ideal target is disallowed,
// choose the nearest permitted form"). "Nearest" is approximated by trying
// target first, then the other forms in density order outward from it —
// good enough since the bitmask rarely forbids more than one or two forms
// in practice.
func (m *Matrix) nearestPermittedForm(target Form) (Form, error) {
	all := []Form{Hypersparse, Sparse, Bitmap, Full}
	t := 0
	for idx, f := range all {
		if f == target {
			t = idx
		}
	}
	order := []Form{target}
	for dist := 1; dist < len(all); dist++ {
		if t-dist >= 0 {
			order = append(order, all[t-dist])
		}
		if t+dist < len(all) {
			order = append(order, all[t+dist])
		}
	}
	for _, f := range order {
		if m.sparsityControl&formBit(f) != 0 {
			return f, nil
		}
	}

	return 0, ErrFormDisallowed
}

// nonEmptyOuterCountLocked returns k, the number of non-empty outer vectors,
// for whichever sparse/hypersparse layout m currently holds. Hypersparse's
// vecIDs already names exactly the non-empty outer vectors; Sparse has no
// vecIDs array (spec §3: "vecIDs is nil for Sparse"), so k must instead be
// counted from ptr's non-zero-length runs.
func (m *Matrix) nonEmptyOuterCountLocked() uint64 {
	if m.form == Hypersparse {
		return uint64(len(m.vecIDs))
	}

	var k uint64
	for oi := 0; oi+1 < len(m.ptr); oi++ {
		if m.ptr[oi+1] > m.ptr[oi] {
			k++
		}
	}

	return k
}

// selectFormLocked re-derives the ideal storage form from current density
// (spec §4.3) and converts the in-memory layout to match. Caller must hold
// m.mu and must have already called materializeLocked (or equivalent) so
// that vecIDs/ptr/innerIdx/values (or present/dense) reflect final content.
//
// The hypersparse<->sparse choice is asymmetric and keyed off the *current*
// form (spec §4.3): "If current form is hypersparse and k > 2*outer*
// hyper_switch (or outer<=1), convert to sparse" but "If current form is
// sparse and outer > 1 and k <= outer*hyper_switch, convert to hypersparse"
// — a band between hyper_switch and 2*hyper_switch deliberately keeps
// whichever form a matrix is already in, to avoid flapping back and forth
// on every materialize near the threshold. A matrix currently in Bitmap or
// Full has no sparse/hypersparse "current form" to anchor hysteresis on, so
// it falls back to the hypersparse-side rule as its baseline when density
// drops enough to leave the dense forms (spec's S5 scenario: "delete
// entries until density falls; assert form becomes sparse or hypersparse").
func (m *Matrix) selectFormLocked() error {
	outer := m.outerDim()
	inner := m.innerDim()

	var nvals uint64
	switch m.form {
	case Bitmap, Full:
		for _, p := range m.present {
			if p {
				nvals++
			}
		}
		if m.form == Full {
			nvals = outer * inner
		}
	default:
		nvals = uint64(len(m.innerIdx))
	}
	k := m.nonEmptyOuterCountLocked()

	var target Form
	switch m.form {
	case Sparse:
		if outer > 1 && float64(k) <= float64(outer)*m.hyperSwitch {
			target = Hypersparse
		} else {
			target = Sparse
		}
	default:
		if outer <= 1 || float64(k) > 2*float64(outer)*m.hyperSwitch {
			target = Sparse
		} else {
			target = Hypersparse
		}
	}

	if outer*inner > 0 {
		density := float64(nvals) / float64(outer*inner)
		if density > m.bitmapSwitch {
			target = Bitmap
		}
		if nvals == outer*inner {
			target = Full
		}
	}

	target, err := m.nearestPermittedForm(target)
	if err != nil {
		return err
	}

	return m.convertToLocked(target)
}

// convertToLocked rebuilds the matrix's interior layout for the target
// form. Complexity: O(nvals + outer + inner), matching spec §4.3's
// conversion-cost requirement.
func (m *Matrix) convertToLocked(target Form) error {
	if target == m.form && target != Sparse {
		// Sparse still needs a pass if arriving from the hypersparse-style
		// compacted layout materializeLocked always produces; every other
		// same-form case is already correct.
		return nil
	}

	outer := m.outerDim()
	inner := m.innerDim()

	switch target {
	case Hypersparse:
		// materializeLocked already leaves a k-compacted, vecIDs-tagged
		// layout; Bitmap/Full sources must first be lowered to tuples.
		if m.form == Bitmap || m.form == Full {
			m.lowerDenseToTuplesLocked()
		}
		m.form = Hypersparse

		return nil

	case Sparse:
		if m.form == Bitmap || m.form == Full {
			m.lowerDenseToTuplesLocked()
		}
		m.expandToDensePtrLocked(outer)
		m.form = Sparse

		return nil

	case Bitmap, Full:
		present := make([]bool, outer*inner)
		dense := make([]any, outer*inner)
		switch m.form {
		case Full:
			for i := range present {
				present[i] = true
			}
			copy(dense, m.dense)
		case Bitmap:
			copy(present, m.present)
			copy(dense, m.dense)
		default:
			for oi, o := range m.outerIndexListLocked() {
				for p := m.ptrForOuterLocked(oi); p < m.ptrForOuterLocked(oi+1); p++ {
					idx := m.innerIdx[p]
					if isZombie(idx) {
						continue
					}
					inr := realIndex(idx)
					pos := o*inner + inr
					present[pos] = true
					if m.iso {
						dense[pos] = m.values[0]
					} else {
						dense[pos] = m.values[p]
					}
				}
			}
		}
		m.vecIDs, m.ptr, m.innerIdx, m.values = nil, nil, nil, nil
		m.present = present
		m.dense = dense
		if target == Full {
			m.present = nil
			m.form = Full
		} else {
			m.form = Bitmap
		}

		return nil
	}

	return nil
}

// outerIndexListLocked returns, for the current sparse/hypersparse layout,
// the outer index corresponding to each ptr slot.
func (m *Matrix) outerIndexListLocked() []uint64 {
	n := len(m.ptr) - 1
	if n < 0 {
		n = 0
	}
	out := make([]uint64, n)
	for oi := 0; oi < n; oi++ {
		if m.vecIDs != nil && len(m.vecIDs) == n {
			out[oi] = m.vecIDs[oi]
		} else {
			out[oi] = uint64(oi)
		}
	}

	return out
}

func (m *Matrix) ptrForOuterLocked(oi int) uint64 {
	if oi < 0 || oi >= len(m.ptr) {
		return m.ptr[len(m.ptr)-1]
	}

	return m.ptr[oi]
}

// expandToDensePtrLocked rewrites a k-compacted (vecIDs+ptr) layout into a
// dense ptr array of length outer+1 with zero-length runs for empty outer
// vectors, then drops vecIDs (Sparse form has no vecIDs array, spec §3).
func (m *Matrix) expandToDensePtrLocked(outer uint64) {
	if m.vecIDs == nil {
		return // already dense (arrived here as Sparse already)
	}

	newPtr := make([]uint64, outer+1)
	vi := 0
	cum := uint64(0)
	for o := uint64(0); o < outer; o++ {
		newPtr[o] = cum
		if vi < len(m.vecIDs) && m.vecIDs[vi] == o {
			cum = m.ptr[vi+1]
			vi++
		}
	}
	newPtr[outer] = cum

	m.ptr = newPtr
	m.vecIDs = nil
}

// lowerDenseToTuplesLocked converts a Bitmap/Full present/dense layout back
// into a k-compacted hypersparse-style layout, used as the common
// intermediate before re-expanding to Sparse or staying Hypersparse.
func (m *Matrix) lowerDenseToTuplesLocked() {
	outer := m.outerDim()
	inner := m.innerDim()

	vecIDs := make([]uint64, 0, outer)
	ptr := make([]uint64, 0, outer+1)
	innerIdx := make([]uint64, 0)
	values := make([]any, 0)
	ptr = append(ptr, 0)

	for o := uint64(0); o < outer; o++ {
		start := len(innerIdx)
		for inr := uint64(0); inr < inner; inr++ {
			pos := o*inner + inr
			if m.form == Full || m.present[pos] {
				innerIdx = append(innerIdx, inr)
				values = append(values, m.dense[pos])
			}
		}
		if len(innerIdx) > start {
			vecIDs = append(vecIDs, o)
			ptr = append(ptr, uint64(len(innerIdx)))
		}
	}

	m.vecIDs = vecIDs
	m.ptr = ptr
	m.innerIdx = innerIdx
	m.values = values
	m.present = nil
	m.dense = nil
	m.iso = false
}

func allTrue(present []bool) bool {
	for _, p := range present {
		if !p {
			return false
		}
	}

	return true
}
