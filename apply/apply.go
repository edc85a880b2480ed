package apply

import (
	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/exec"
	"github.com/katalvlaran/graphblas/gbop"
)

// buildFromMap constructs a matrix of typ's shape from a position->value
// map, mirroring ewise.buildResult and mxm's result assembly — every writer
// in this package goes through the same compute-T/accumulate-into-C split.
func buildFromMap(typ *container.Matrix, nrows, ncols uint64, entries map[[2]uint64]any, d descriptor.Descriptor) (*container.Matrix, error) {
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
		i = append(i, pos[0])
		j = append(j, pos[1])
		x = append(x, v)
	}

	overwrite, err := gbop.NewBinary("APPLY_OVERWRITE", typ.Type(), typ.Type(), typ.Type(), func(_, y any) any { return y })
	if err != nil {
		return nil, err
	}

	return t, t.Build(i, j, x, overwrite, d)
}

// Apply computes T[i,j]=f(A[i,j]) for every present entry of A (spec §4.8),
// then writes T into C via the masked-accumulate executor.
func Apply(c, mask *container.Matrix, accum *gbop.Binary, f *gbop.Unary, a *container.Matrix, d descriptor.Descriptor) error {
	if f == nil {
		return ErrNilOperator
	}

	i, j, x, err := a.ExtractTuples(true, true, true)
	if err != nil {
		return err
	}

	entries := make(map[[2]uint64]any, len(i))
	for k := range i {
		if f.Positional {
			entries[[2]uint64{i[k], j[k]}] = f.ApplyPositional(i[k], j[k])
		} else {
			entries[[2]uint64{i[k], j[k]}] = f.Apply(x[k])
		}
	}

	t, err := buildFromMap(c, a.NRows(), a.NCols(), entries, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}

// ApplyBindFirst computes T[i,j]=f(x,A[i,j]), binding f's first argument to
// the scalar x (spec §4.8 "bound-binary: T[i,j]=f(x,A[i,j])").
func ApplyBindFirst(c, mask *container.Matrix, accum *gbop.Binary, f *gbop.Binary, x any, a *container.Matrix, d descriptor.Descriptor) error {
	if f == nil {
		return ErrNilOperator
	}

	i, j, av, err := a.ExtractTuples(true, true, true)
	if err != nil {
		return err
	}

	entries := make(map[[2]uint64]any, len(i))
	for k := range i {
		entries[[2]uint64{i[k], j[k]}] = f.Apply(x, av[k])
	}

	t, err := buildFromMap(c, a.NRows(), a.NCols(), entries, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}

// ApplyBindSecond computes T[i,j]=f(A[i,j],y), binding f's second argument
// to the scalar y (spec §4.8 "or f(A[i,j],y)").
func ApplyBindSecond(c, mask *container.Matrix, accum *gbop.Binary, f *gbop.Binary, a *container.Matrix, y any, d descriptor.Descriptor) error {
	if f == nil {
		return ErrNilOperator
	}

	i, j, av, err := a.ExtractTuples(true, true, true)
	if err != nil {
		return err
	}

	entries := make(map[[2]uint64]any, len(i))
	for k := range i {
		entries[[2]uint64{i[k], j[k]}] = f.Apply(av[k], y)
	}

	t, err := buildFromMap(c, a.NRows(), a.NCols(), entries, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}

// ApplyIndexUnary computes T[i,j]=f(A[i,j],i,j,y) for every present entry
// (spec §4.8 "index-unary: T[i,j]=f(A[i,j],i,j,y)").
func ApplyIndexUnary(c, mask *container.Matrix, accum *gbop.Binary, f *gbop.IndexUnary, a *container.Matrix, y any, d descriptor.Descriptor) error {
	if f == nil {
		return ErrNilOperator
	}

	i, j, av, err := a.ExtractTuples(true, true, true)
	if err != nil {
		return err
	}

	entries := make(map[[2]uint64]any, len(i))
	for k := range i {
		entries[[2]uint64{i[k], j[k]}] = f.Apply(av[k], i[k], j[k], y)
	}

	t, err := buildFromMap(c, a.NRows(), a.NCols(), entries, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}
