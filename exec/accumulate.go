package exec

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/gbcontext"
	"github.com/katalvlaran/graphblas/gbop"
)

type coord struct{ i, j uint64 }

// Accumulate is the universal update C⟨M,z,r⟩ ← C ⊕ T (spec §4.5). c is
// mutated in place; mask and accum may be nil (nil mask = all-true, spec;
// nil accum = T replaces C at every allowed position). t is the operation's
// raw result; reading it materializes any pending tuples it holds, but its
// entries are not changed.
//
// Mask semantics: at every (i,j) present in c or t, the mask is consulted
// (spec §4.5 "Mask M"). Where the mask allows: both present → accum (or
// replace if accum is nil); only t present → c takes t's value; only c
// present → c is unchanged. Where the mask excludes: c's existing value
// survives unless d.Output is OutputReplace, in which case it is cleared
// (spec §4.5 "Replace r... after the accum step").
// Complexity: O(nvals(c) + nvals(t) + nvals(mask)) for the tuple extraction
// and merge; the production engine would instead walk sorted arrays, but
// this reference executor favors a map-based merge for clarity over a
// tuned in-place array merge.
func Accumulate(c *container.Matrix, mask *container.Matrix, accum *gbop.Binary, t *container.Matrix, d descriptor.Descriptor) error {
	if t == nil {
		return ErrNilResult
	}
	if c.NRows() != t.NRows() || c.NCols() != t.NCols() {
		return ErrShapeMismatch
	}
	if mask != nil && (mask.NRows() != c.NRows() || mask.NCols() != c.NCols()) {
		return ErrShapeMismatch
	}

	ci, cj, cx, err := c.ExtractTuples(true, true, true)
	if err != nil {
		return err
	}
	ti, tj, tx, err := t.ExtractTuples(true, true, true)
	if err != nil {
		return err
	}

	cMap := make(map[coord]any, len(ci))
	for k := range ci {
		cMap[coord{ci[k], cj[k]}] = cx[k]
	}
	tMap := make(map[coord]any, len(ti))
	for k := range ti {
		tMap[coord{ti[k], tj[k]}] = tx[k]
	}

	replace := d.Output == descriptor.OutputReplace

	seen := make(map[coord]bool, len(cMap)+len(tMap))
	positions := make([]coord, 0, len(cMap)+len(tMap))
	for pos := range cMap {
		seen[pos] = true
		positions = append(positions, pos)
	}
	for pos := range tMap {
		if !seen[pos] {
			seen[pos] = true
			positions = append(positions, pos)
		}
	}

	// Each position's mask/accum/replace decision is independent of every
	// other (spec §4.5), so the merge fans out across errgroup workers
	// partitioned by chunk (spec §5 "partitions its work across nthreads
	// workers"); each worker owns a disjoint slice range, so results are
	// written race-free without a shared-map mutex. nWorkers and chunk come
	// from d.NThreads/d.Chunk when the caller set them, falling back to the
	// gbcontext process-wide defaults otherwise.
	type entry struct {
		pos coord
		v   any
		ok  bool
	}
	entries := make([]entry, len(positions))

	nWorkers := gbcontext.ResolveThreads(d.NThreads)
	chunk := gbcontext.ResolveChunk(d.Chunk)
	if nWorkers <= 1 || len(positions) <= chunk {
		for idx, pos := range positions {
			v, ok, err := resolvePosition(mask, d.Mask, accum, cMap, tMap, pos, replace)
			if err != nil {
				return err
			}
			entries[idx] = entry{pos: pos, v: v, ok: ok}
		}
	} else {
		var g errgroup.Group
		for start := 0; start < len(positions); start += chunk {
			start := start
			end := start + chunk
			if end > len(positions) {
				end = len(positions)
			}
			g.Go(func() error {
				for idx := start; idx < end; idx++ {
					pos := positions[idx]
					v, ok, err := resolvePosition(mask, d.Mask, accum, cMap, tMap, pos, replace)
					if err != nil {
						return err
					}
					entries[idx] = entry{pos: pos, v: v, ok: ok}
				}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	outI := make([]uint64, 0, len(entries))
	outJ := make([]uint64, 0, len(entries))
	outX := make([]any, 0, len(entries))
	for _, e := range entries {
		if !e.ok {
			continue
		}
		outI = append(outI, e.pos.i)
		outJ = append(outJ, e.pos.j)
		outX = append(outX, e.v)
	}

	if err := c.Clear(); err != nil {
		return err
	}
	if len(outI) == 0 {
		return nil
	}

	overwrite, err := gbop.NewBinary("EXEC_OVERWRITE", c.Type(), c.Type(), c.Type(), func(_, y any) any { return y })
	if err != nil {
		return err
	}

	if err := c.Build(outI, outJ, outX, overwrite, d); err != nil {
		return err
	}
	if gbcontext.CurrentMode() == gbcontext.Blocking {
		return c.Wait(container.Materialize)
	}

	return nil
}

// resolvePosition decides whether pos survives into the merged output and,
// if so, its value — the single-position slice of Accumulate's mask/accum/
// replace contract, split out so it can run identically whether invoked
// inline or from an errgroup worker.
func resolvePosition(mask *container.Matrix, mode descriptor.MaskMode, accum *gbop.Binary, cMap, tMap map[coord]any, pos coord, replace bool) (any, bool, error) {
	cv, cHas := cMap[pos]
	tv, tHas := tMap[pos]

	allow, err := maskAllows(mask, mode, pos.i, pos.j)
	if err != nil {
		return nil, false, err
	}

	switch {
	case allow && cHas && tHas:
		if accum != nil {
			return accum.Apply(cv, tv), true, nil
		}

		return tv, true, nil
	case allow && tHas:
		return tv, true, nil
	case allow && cHas:
		return cv, true, nil
	case !allow && cHas && !replace:
		return cv, true, nil
	}

	// !allow && !replace && !cHas: nothing to write.
	// !allow && replace: position stays cleared, regardless of cHas.
	return nil, false, nil
}
