package apply

import (
	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/exec"
	"github.com/katalvlaran/graphblas/gbop"
)

// Select keeps exactly those entries of A where the index-unary predicate
// f returns true (spec §4.8 "select uses an index-unary op returning a
// boolean; T contains exactly those entries where the op returns true").
func Select(c, mask *container.Matrix, accum *gbop.Binary, f *gbop.IndexUnary, a *container.Matrix, y any, d descriptor.Descriptor) error {
	if f == nil {
		return ErrNilOperator
	}

	i, j, av, err := a.ExtractTuples(true, true, true)
	if err != nil {
		return err
	}

	entries := make(map[[2]uint64]any, len(i))
	for k := range i {
		if f.Apply(av[k], i[k], j[k], y).(bool) {
			entries[[2]uint64{i[k], j[k]}] = av[k]
		}
	}

	t, err := buildFromMap(c, a.NRows(), a.NCols(), entries, d)
	if err != nil {
		return err
	}

	return exec.Accumulate(c, mask, accum, t, d)
}
