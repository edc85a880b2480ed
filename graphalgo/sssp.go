package graphalgo

import (
	"context"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/monoid"
	"github.com/katalvlaran/graphblas/mxm"
)

// SSSPOptions tunes an SSSP run. The zero value relaxes until convergence
// with no iteration cap.
type SSSPOptions struct {
	// Ctx allows cancellation between relaxation rounds.
	Ctx context.Context

	// MaxIterations caps the number of relaxation rounds; 0 means run
	// until convergence or n-1 rounds (the longest possible shortest path
	// has at most n-1 edges, matching Bellman-Ford's bound).
	MaxIterations int
}

// SSSPOption configures SSSPOptions via functional arguments.
type SSSPOption func(*SSSPOptions)

// WithMaxIterations caps relaxation to n rounds.
func WithMaxIterations(n int) SSSPOption {
	return func(o *SSSPOptions) { o.MaxIterations = n }
}

// SSSPResult holds per-vertex shortest-path distances from the source.
type SSSPResult struct {
	// Distance[i] is the shortest-path weight from source to i, or the
	// MIN-PLUS identity (math.MaxFloat64) if i is unreachable.
	Distance []float64

	// Iterations is the number of relaxation rounds actually performed.
	Iterations int
}

// SSSP computes single-source shortest paths over the FP64-weighted
// adjacency matrix a using the MIN-PLUS tropical semiring (spec.md §8
// scenario S2): `d = A' ⊗_{min,plus} d`, relaxing iteratively until the
// distance vector stops changing. Edge weights must be non-negative;
// absent entries are treated as "no edge" (the MIN-PLUS additive
// identity), not zero-weight.
func SSSP(a *container.Matrix, source uint64, opts ...SSSPOption) (*SSSPResult, error) {
	if a == nil {
		return nil, ErrGraphNil
	}
	if a.NRows() != a.NCols() {
		return nil, ErrNotSquare
	}
	n := a.NRows()
	if source >= n {
		return nil, ErrStartOutOfRange
	}

	o := SSSPOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	maxIter := o.MaxIterations
	if maxIter <= 0 {
		maxIter = int(n) - 1
		if maxIter < 1 {
			maxIter = 1
		}
	}

	fp64 := dtype.MustBuiltin(dtype.FP64)
	semi := monoid.MinPlus[dtype.FP64]
	identity := semi.Add.Identity.(float64)

	d, err := container.New(fp64, n, 1)
	if err != nil {
		return nil, err
	}
	if err := d.SetElement(source, 0, 0.0); err != nil {
		return nil, err
	}
	if err := d.Wait(container.Materialize); err != nil {
		return nil, err
	}

	transposeDesc, err := descriptor.New(descriptor.WithInput0(descriptor.InputTranspose))
	if err != nil {
		return nil, err
	}

	iterations := 0
	for ; iterations < maxIter; iterations++ {
		if o.Ctx != nil {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
		}

		before, err := snapshot(d, n, identity)
		if err != nil {
			return nil, err
		}

		if err := mxm.MxV(d, nil, semi.Add.Op, semi, a, d, transposeDesc); err != nil {
			return nil, err
		}

		after, err := snapshot(d, n, identity)
		if err != nil {
			return nil, err
		}

		changed := false
		for i := range before {
			if before[i] != after[i] {
				changed = true
				break
			}
		}
		if !changed {
			iterations++
			break
		}
	}

	dist, err := snapshot(d, n, identity)
	if err != nil {
		return nil, err
	}

	return &SSSPResult{Distance: dist, Iterations: iterations}, nil
}

// snapshot reads d's current values into a dense []float64, filling
// unreached vertices with the MIN-PLUS identity.
func snapshot(d *container.Matrix, n uint64, identity float64) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		out[i] = identity
	}

	i, _, x, err := d.ExtractTuples(true, false, true)
	if err != nil {
		return nil, err
	}
	for k := range i {
		out[i[k]] = x[k].(float64)
	}

	return out, nil
}
