package graphalgo

import (
	"context"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/exec"
	"github.com/katalvlaran/graphblas/gbop"
	"github.com/katalvlaran/graphblas/monoid"
	"github.com/katalvlaran/graphblas/mxm"
)

// BFSOptions tunes a BFS run. The zero value explores the full graph with
// no depth cap and no parent tracking.
type BFSOptions struct {
	// Ctx allows cancellation between frontier steps.
	Ctx context.Context

	// MaxDepth caps the number of frontier-expansion steps; 0 means
	// unlimited (explore until the frontier goes empty).
	MaxDepth int

	// TrackParents additionally computes a predecessor witness per
	// discovered vertex via the AnyPair semiring (spec glossary
	// "positional operator ... used for returning node ids through a
	// semiring").
	TrackParents bool
}

// Option configures BFSOptions via functional arguments.
type Option func(*BFSOptions)

// WithMaxDepth caps frontier expansion to n steps.
func WithMaxDepth(n int) Option {
	return func(o *BFSOptions) { o.MaxDepth = n }
}

// WithParents enables predecessor tracking.
func WithParents() Option {
	return func(o *BFSOptions) { o.TrackParents = true }
}

// BFSResult holds per-vertex BFS outcomes, indexed by vertex id.
type BFSResult struct {
	// Distance[i] is the hop count from start to i, or -1 if unreached.
	Distance []int64

	// Parent[i] is a predecessor witness on a shortest path to i, or -1 if
	// i is the start vertex, unreached, or TrackParents was not set.
	Parent []int64

	// Order lists vertices in the order they were first discovered.
	Order []uint64
}

// BFS runs breadth-first search over the BOOL adjacency matrix a, starting
// from start, by repeatedly propagating the frontier through A' with the
// LOR-LAND semiring under a NOT(visited) mask (spec.md §8 scenario S1):
// `next = A' ⊗_{lor,land} frontier`, mask = NOT(visited), descriptor
// transposes A.
func BFS(a *container.Matrix, start uint64, opts ...Option) (*BFSResult, error) {
	if a == nil {
		return nil, ErrGraphNil
	}
	if a.NRows() != a.NCols() {
		return nil, ErrNotSquare
	}
	n := a.NRows()
	if start >= n {
		return nil, ErrStartOutOfRange
	}

	o := BFSOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	boolTy := dtype.MustBuiltin(dtype.BOOL)
	int64Ty := dtype.MustBuiltin(dtype.INT64)

	visited, err := container.New(boolTy, n, 1)
	if err != nil {
		return nil, err
	}
	if err := visited.SetElement(start, 0, true); err != nil {
		return nil, err
	}

	frontier, err := container.New(boolTy, n, 1)
	if err != nil {
		return nil, err
	}
	if err := frontier.SetElement(start, 0, true); err != nil {
		return nil, err
	}

	result := &BFSResult{
		Distance: make([]int64, n),
		Parent:   make([]int64, n),
		Order:    []uint64{start},
	}
	for i := range result.Distance {
		result.Distance[i] = -1
		result.Parent[i] = -1
	}
	result.Distance[start] = 0

	frontierDesc, err := descriptor.New(
		descriptor.WithInput0(descriptor.InputTranspose),
		descriptor.WithMask(descriptor.MaskComplement),
		descriptor.WithOutput(descriptor.OutputReplace),
	)
	if err != nil {
		return nil, err
	}

	depth := int64(0)
	for {
		if o.Ctx != nil {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
		}
		if o.MaxDepth > 0 && int(depth) >= o.MaxDepth {
			break
		}

		next, err := container.New(boolTy, n, 1)
		if err != nil {
			return nil, err
		}
		if err := mxm.MxV(next, visited, nil, monoid.LOrLAnd, a, frontier, frontierDesc); err != nil {
			return nil, err
		}

		i, _, _, err := next.ExtractTuples(true, false, false)
		if err != nil {
			return nil, err
		}
		if len(i) == 0 {
			break
		}

		depth++
		if o.TrackParents {
			ids, err := frontierIDs(frontier, int64Ty)
			if err != nil {
				return nil, err
			}
			predDesc, err := descriptor.New(
				descriptor.WithInput0(descriptor.InputTranspose),
				descriptor.WithMask(descriptor.MaskComplement),
				descriptor.WithOutput(descriptor.OutputReplace),
			)
			if err != nil {
				return nil, err
			}
			pred, err := container.New(int64Ty, n, 1)
			if err != nil {
				return nil, err
			}
			if err := mxm.MxV(pred, visited, nil, monoid.AnyPairInt64, a, ids, predDesc); err != nil {
				return nil, err
			}
			for _, v := range i {
				p, has, err := pred.ExtractElement(v, 0)
				if err != nil {
					return nil, err
				}
				if has {
					result.Parent[v] = p.(int64)
				}
			}
		}

		for _, v := range i {
			result.Distance[v] = depth
			result.Order = append(result.Order, v)
		}

		if err := exec.Accumulate(visited, nil, gbop.LOr, next, descriptor.Default); err != nil {
			return nil, err
		}

		frontier = next
	}

	return result, nil
}

// frontierIDs builds an INT64 vector that is non-zombie only at frontier's
// present positions, value = the vertex's own index — the seed vector
// AnyPair propagates through A' to discover each new vertex's predecessor.
func frontierIDs(frontier *container.Matrix, int64Ty *dtype.Type) (*container.Matrix, error) {
	i, _, _, err := frontier.ExtractTuples(true, false, false)
	if err != nil {
		return nil, err
	}

	ids, err := container.New(int64Ty, frontier.NRows(), 1)
	if err != nil {
		return nil, err
	}
	for _, v := range i {
		if err := ids.SetElement(v, 0, int64(v)); err != nil {
			return nil, err
		}
	}
	if err := ids.Wait(container.Materialize); err != nil {
		return nil, err
	}

	return ids, nil
}
