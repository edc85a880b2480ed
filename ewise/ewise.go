package ewise

import (
	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/exec"
	"github.com/katalvlaran/graphblas/gbop"
)

type coord struct{ i, j uint64 }

// tupleMap extracts m's entries into a coord-keyed map, applying a logical
// transpose (swap i/j) without materializing a transposed copy, matching
// spec §4.6's "applied logically, without materializing the transpose when
// avoidable" — the same descriptor convention the multiply engine honors.
func tupleMap(m *container.Matrix, transpose bool) (map[coord]any, error) {
	i, j, x, err := m.ExtractTuples(true, true, true)
	if err != nil {
		return nil, err
	}

	out := make(map[coord]any, len(i))
	for k := range i {
		pos := coord{i[k], j[k]}
		if transpose {
			pos = coord{j[k], i[k]}
		}
		out[pos] = x[k]
	}

	return out, nil
}

func shapeOf(m *container.Matrix, transpose bool) (rows, cols uint64) {
	if transpose {
		return m.NCols(), m.NRows()
	}

	return m.NRows(), m.NCols()
}

func buildResult(typ *container.Matrix, nrows, ncols uint64, entries map[coord]any, d descriptor.Descriptor) (*container.Matrix, error) {
	t, err := container.New(typ.Type(), nrows, ncols)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return t, nil
	}

	i := make([]uint64, 0, len(entries))
	j := make([]uint64, 0, len(entries))
	x := make([]any, 0, len(entries))
	for pos, v := range entries {
		i = append(i, pos.i)
		j = append(j, pos.j)
		x = append(x, v)
	}

	overwrite, err := gbop.NewBinary("EWISE_OVERWRITE", typ.Type(), typ.Type(), typ.Type(), func(_, y any) any { return y })
	if err != nil {
		return nil, err
	}

	return t, t.Build(i, j, x, overwrite, d)
}

// EWiseMult computes the set-intersection element-wise product (spec
// §4.7): T is defined at (i,j) iff both A and B have an entry there, with
// value op(A,B).
func EWiseMult(c, mask *container.Matrix, accum *gbop.Binary, op *gbop.Binary, a, b *container.Matrix, d descriptor.Descriptor) error {
	if op == nil {
		return ErrNilOperator
	}

	aRows, aCols := shapeOf(a, d.Input0 == descriptor.InputTranspose)
	bRows, bCols := shapeOf(b, d.Input1 == descriptor.InputTranspose)
	if aRows != bRows || aCols != bCols {
		return ErrDimensionMismatch
	}

	am, err := tupleMap(a, d.Input0 == descriptor.InputTranspose)
	if err != nil {
		return err
	}
	bm, err := tupleMap(b, d.Input1 == descriptor.InputTranspose)
	if err != nil {
		return err
	}

	result := make(map[coord]any, len(am))
	for pos, av := range am {
		if bv, ok := bm[pos]; ok {
			result[pos] = op.Apply(av, bv)
		}
	}

	t, err := buildResult(c, aRows, aCols, result, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}

// EWiseAdd computes the set-union element-wise sum (spec §4.7): T is
// defined wherever A or B has (i,j); value is op(A,B) if both present, else
// the single present value with no operator applied.
func EWiseAdd(c, mask *container.Matrix, accum *gbop.Binary, op *gbop.Binary, a, b *container.Matrix, d descriptor.Descriptor) error {
	if op == nil {
		return ErrNilOperator
	}

	aRows, aCols := shapeOf(a, d.Input0 == descriptor.InputTranspose)
	bRows, bCols := shapeOf(b, d.Input1 == descriptor.InputTranspose)
	if aRows != bRows || aCols != bCols {
		return ErrDimensionMismatch
	}

	am, err := tupleMap(a, d.Input0 == descriptor.InputTranspose)
	if err != nil {
		return err
	}
	bm, err := tupleMap(b, d.Input1 == descriptor.InputTranspose)
	if err != nil {
		return err
	}

	result := make(map[coord]any, len(am)+len(bm))
	for pos, av := range am {
		result[pos] = av
	}
	for pos, bv := range bm {
		if av, ok := result[pos]; ok {
			result[pos] = op.Apply(av, bv)
		} else {
			result[pos] = bv
		}
	}

	t, err := buildResult(c, aRows, aCols, result, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}

// EWiseUnion computes the always-apply union (spec §4.7): like eWiseAdd,
// but a one-sided position still invokes op, pairing the present value with
// the other side's default scalar (alpha for A's default, beta for B's).
func EWiseUnion(c, mask *container.Matrix, accum *gbop.Binary, op *gbop.Binary, a *container.Matrix, alpha any, b *container.Matrix, beta any, d descriptor.Descriptor) error {
	if op == nil {
		return ErrNilOperator
	}

	aRows, aCols := shapeOf(a, d.Input0 == descriptor.InputTranspose)
	bRows, bCols := shapeOf(b, d.Input1 == descriptor.InputTranspose)
	if aRows != bRows || aCols != bCols {
		return ErrDimensionMismatch
	}

	am, err := tupleMap(a, d.Input0 == descriptor.InputTranspose)
	if err != nil {
		return err
	}
	bm, err := tupleMap(b, d.Input1 == descriptor.InputTranspose)
	if err != nil {
		return err
	}

	result := make(map[coord]any, len(am)+len(bm))
	for pos, av := range am {
		if bv, ok := bm[pos]; ok {
			result[pos] = op.Apply(av, bv)
		} else {
			result[pos] = op.Apply(av, beta)
		}
	}
	for pos, bv := range bm {
		if _, ok := am[pos]; !ok {
			result[pos] = op.Apply(alpha, bv)
		}
	}

	t, err := buildResult(c, aRows, aCols, result, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}
