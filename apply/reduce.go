package apply

import (
	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/exec"
	"github.com/katalvlaran/graphblas/gbop"
	"github.com/katalvlaran/graphblas/monoid"
)

// fold folds one row's or column's values through m, returning m's identity
// when nothing was present (spec §4.8 "empty input yields the monoid
// identity") and honoring m's terminal value to stop early (spec §4.8
// "terminal-value short-circuit applies").
func fold(m *monoid.Monoid, values []any) any {
	if len(values) == 0 {
		return m.Identity
	}

	terminal, hasTerminal := m.Terminal()
	acc := values[0]
	if hasTerminal && acc == terminal {
		return acc
	}
	for _, v := range values[1:] {
		acc = m.Op.Apply(acc, v)
		if hasTerminal && acc == terminal {
			return acc
		}
	}

	return acc
}

// ReduceRows folds m across every row of a, writing the n-row×1 result
// vector into c via the masked-accumulate executor (spec §4.8 "folds a
// monoid across a matrix to a vector (row-wise ... per descriptor)").
func ReduceRows(c, mask *container.Matrix, accum *gbop.Binary, m *monoid.Monoid, a *container.Matrix, d descriptor.Descriptor) error {
	if m == nil {
		return ErrNilMonoid
	}

	i, _, x, err := a.ExtractTuples(true, true, true)
	if err != nil {
		return err
	}

	byRow := make(map[uint64][]any)
	for k := range i {
		byRow[i[k]] = append(byRow[i[k]], x[k])
	}

	// Only rows that actually had entries in a produce a T entry (standard
	// GrB_Matrix_reduce_Monoid semantics); a structurally empty row is left
	// absent from T so exec.Accumulate's mask/accum/replace machinery
	// decides what happens at that position in c, instead of this reducer
	// clobbering it with the monoid identity.
	entries := make(map[[2]uint64]any, len(byRow))
	for row, vals := range byRow {
		entries[[2]uint64{row, 0}] = fold(m, vals)
	}

	t, err := buildFromMap(c, a.NRows(), 1, entries, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}

// ReduceCols folds m across every column of a, writing the n-col×1 result
// vector into c.
func ReduceCols(c, mask *container.Matrix, accum *gbop.Binary, m *monoid.Monoid, a *container.Matrix, d descriptor.Descriptor) error {
	if m == nil {
		return ErrNilMonoid
	}

	_, j, x, err := a.ExtractTuples(true, true, true)
	if err != nil {
		return err
	}

	byCol := make(map[uint64][]any)
	for k := range j {
		byCol[j[k]] = append(byCol[j[k]], x[k])
	}

	// See ReduceRows: only columns with at least one entry produce a T
	// entry; structurally empty columns stay absent from T.
	entries := make(map[[2]uint64]any, len(byCol))
	for col, vals := range byCol {
		entries[[2]uint64{col, 0}] = fold(m, vals)
	}

	t, err := buildFromMap(c, a.NCols(), 1, entries, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}

// ReduceToScalar folds m across every present entry of a (matrix or
// vector) to a single scalar, returning m's identity for an empty input
// (spec §4.8).
func ReduceToScalar(m *monoid.Monoid, a *container.Matrix) (any, error) {
	if m == nil {
		return nil, ErrNilMonoid
	}

	_, _, x, err := a.ExtractTuples(false, false, true)
	if err != nil {
		return nil, err
	}

	return fold(m, x), nil
}
