package container

// Clear empties m back to a zero-entry Hypersparse matrix, discarding all
// stored entries, pending tuples, and zombies while preserving dimensions,
// type, and options (orientation, sparsity_control, switches). Used by the
// masked-accumulate executor to replace a matrix's entire content in
// place without disturbing the caller's
// reference to it (spec §4.5: the executor "writes into C"; callers keep
// holding the same *Matrix across the call).
// Complexity: O(1).
func (m *Matrix) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.form = Hypersparse
	m.iso = false
	m.jumbled = false
	m.zombieCount = 0
	m.pending = nil
	m.vecIDs = []uint64{}
	m.ptr = []uint64{0}
	m.innerIdx = []uint64{}
	m.values = []any{}
	m.present = nil
	m.dense = nil

	return nil
}
