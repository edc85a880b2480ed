package mxm

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/exec"
	"github.com/katalvlaran/graphblas/gbcontext"
	"github.com/katalvlaran/graphblas/gbop"
	"github.com/katalvlaran/graphblas/monoid"
)

type coord struct{ i, j uint64 }

// sparseVecSet is an outer-index-keyed set of sparse vectors: outer ->
// (inner -> value). Built once per operand per MxM call and reused by
// whichever kernel the selector picks.
type sparseVecSet map[uint64]map[uint64]any

// operand bundles the two orientations of the same logical matrix content
// an MxM kernel needs: rows (for dot's A side) and columns (for saxpy's
// scatter source and dot's B side), plus its iso state.
type operand struct {
	rows, cols sparseVecSet
	nrows, ncols uint64
	iso        bool
	isoVal     any
}

func buildOperand(m *container.Matrix, transpose bool) (operand, error) {
	i, j, x, err := m.ExtractTuples(true, true, true)
	if err != nil {
		return operand{}, err
	}

	nrows, ncols := m.NRows(), m.NCols()
	if transpose {
		nrows, ncols = ncols, nrows
	}

	rows := make(sparseVecSet)
	cols := make(sparseVecSet)
	for k := range i {
		ii, jj := i[k], j[k]
		if transpose {
			ii, jj = jj, ii
		}
		if rows[ii] == nil {
			rows[ii] = make(map[uint64]any)
		}
		rows[ii][jj] = x[k]
		if cols[jj] == nil {
			cols[jj] = make(map[uint64]any)
		}
		cols[jj][ii] = x[k]
	}

	var isoVal any
	if m.IsIso() && len(x) > 0 {
		isoVal = x[0]
	}

	return operand{rows: rows, cols: cols, nrows: nrows, ncols: ncols, iso: m.IsIso(), isoVal: isoVal}, nil
}

// MxM computes C⟨M⟩ ⊕= A ⊗_semiring B (spec §4.6). c is written via
// exec.Accumulate; a and b are read-only. Transposition of either input is
// applied logically per d.Input0/d.Input1 (spec: "without materializing the
// transpose when avoidable").
func MxM(c, mask *container.Matrix, accum *gbop.Binary, semi *monoid.Semiring, a, b *container.Matrix, d descriptor.Descriptor) error {
	if semi == nil {
		return ErrNilSemiring
	}

	opA, err := buildOperand(a, d.Input0 == descriptor.InputTranspose)
	if err != nil {
		return err
	}
	opB, err := buildOperand(b, d.Input1 == descriptor.InputTranspose)
	if err != nil {
		return err
	}
	if opA.ncols != opB.nrows {
		return ErrDimensionMismatch
	}
	if c.NRows() != opA.nrows || c.NCols() != opB.ncols {
		return ErrDimensionMismatch
	}

	alg := selectAlgorithm(d, mask, opA, opB)

	var result map[coord]any
	switch alg {
	case descriptor.MxMDot:
		// A complemented mask admits the positions it does not store, so
		// only a non-complemented mask may restrict dot's visits.
		dotMask := mask
		if d.Mask == descriptor.MaskComplement || d.Mask == descriptor.MaskComplementStructure {
			dotMask = nil
		}
		result = dotProduct(opA, opB, semi, dotMask)
	case descriptor.MxMHash:
		result = saxpy(opA, opB, semi, true, d)
	default: // MxMGustavson, MxMSaxpy, MxMDefault
		result = saxpy(opA, opB, semi, false, d)
	}

	t, err := container.New(semi.Add.Type, opA.nrows, opB.ncols)
	if err != nil {
		return err
	}
	if len(result) > 0 {
		i := make([]uint64, 0, len(result))
		j := make([]uint64, 0, len(result))
		x := make([]any, 0, len(result))
		for pos, v := range result {
			i = append(i, pos.i)
			j = append(j, pos.j)
			x = append(x, v)
		}
		overwrite, err := gbop.NewBinary("MXM_OVERWRITE", semi.Add.Type, semi.Add.Type, semi.Add.Type, func(_, y any) any { return y })
		if err != nil {
			return err
		}
		if err := t.Build(i, j, x, overwrite, d); err != nil {
			return err
		}
	}

	return exec.Accumulate(c, mask, accum, t, d)
}

// selectAlgorithm implements spec §4.6's selector heuristic: the
// descriptor's hint always wins; absent a hint, a mask steers toward dot
// ("used when a mask is present and sparse"), and a wide outer dimension
// relative to expected output steers toward the hash kernel over plain
// Gustavson scatter ("best when outer is huge and output per column is
// small").
func selectAlgorithm(d descriptor.Descriptor, mask *container.Matrix, a, b operand) descriptor.MxMAlgorithm {
	if d.MxM != descriptor.MxMDefault {
		return d.MxM
	}
	if mask != nil {
		return descriptor.MxMDot
	}
	if a.nrows > 64*uint64(len(b.cols)+1) {
		return descriptor.MxMHash
	}

	return descriptor.MxMGustavson
}

// multiply evaluates the semiring's multiplicative operator for one
// (i,k,j) contribution, honoring a positional multiplier (spec §4.6
// "positional multiplier specialization": "the value arrays of A and B are
// untouched; only indices flow through").
func multiply(mul *gbop.Binary, i, k, j uint64, av, bv any) any {
	if mul.Positional {
		return mul.ApplyPositional(i, k, j)
	}

	return mul.Apply(av, bv)
}

// saxpy implements both saxpy-Gustavson and saxpy-hash (spec §4.6): for
// each nonempty column j of B, scatter A's column-k contributions into a
// map-backed accumulator keyed by output row i, then emit. The hash variant
// differs only in pre-sizing its per-column workspace from an output
// estimate (spec: "workspace sized to next_pow2(est_nnz_out*load_factor)");
// Go's map already resizes itself, so hashSized only changes the initial
// capacity hint, not the algorithm.
func saxpy(a, b operand, semi *monoid.Semiring, hashSized bool, d descriptor.Descriptor) map[coord]any {
	both := a.iso && b.iso
	var isoOut any
	if both {
		isoOut = multiply(semi.Mul, 0, 0, 0, a.isoVal, b.isoVal)
	}

	terminal, hasTerminal := semi.Add.Terminal()

	saxpyColumn := func(j uint64, colJ map[uint64]any, out map[coord]any) {
		estOut := len(colJ)
		if hashSized {
			estOut = nextPow2(estOut * 2)
		}
		workspace := make(map[uint64]any, estOut)
		done := make(map[uint64]bool, estOut)

		for k, bv := range colJ {
			colK := a.cols[k]
			for i, av := range colK {
				if done[i] {
					continue
				}
				var contribution any
				if both {
					contribution = isoOut
				} else {
					contribution = multiply(semi.Mul, i, k, j, av, bv)
				}
				if cur, ok := workspace[i]; ok {
					workspace[i] = semi.Add.Op.Apply(cur, contribution)
				} else {
					workspace[i] = contribution
				}
				if hasTerminal && workspace[i] == terminal {
					done[i] = true
				}
			}
		}

		for i, v := range workspace {
			out[coord{i, j}] = v
		}
	}

	// Each output column is computed independently (spec §4.6 "Pick
	// per-task independently under saxpy"), so columns fan out across
	// errgroup workers once there are enough of them to be worth the
	// dispatch; each worker owns a private result map merged in afterward,
	// so no shared mutable state crosses goroutines mid-flight. nWorkers and
	// the fan-out threshold both come from d.NThreads/d.Chunk when the
	// caller set them, falling back to the gbcontext process-wide defaults
	// otherwise (spec §5 "chunk hint sets the smallest problem size for
	// which parallelism is attempted").
	nWorkers := gbcontext.ResolveThreads(d.NThreads)
	parallelMin := gbcontext.ResolveChunk(d.Chunk)
	if nWorkers <= 1 || len(b.cols) < parallelMin {
		result := make(map[coord]any)
		for j, colJ := range b.cols {
			saxpyColumn(j, colJ, result)
		}

		return result
	}

	cols := make([]uint64, 0, len(b.cols))
	for j := range b.cols {
		cols = append(cols, j)
	}
	partials := make([]map[coord]any, nWorkers)
	var g errgroup.Group
	for w := 0; w < nWorkers; w++ {
		w := w
		partials[w] = make(map[coord]any)
		g.Go(func() error {
			for idx := w; idx < len(cols); idx += nWorkers {
				j := cols[idx]
				saxpyColumn(j, b.cols[j], partials[w])
			}

			return nil
		})
	}
	_ = g.Wait() // saxpyColumn never returns an error

	result := make(map[coord]any)
	for _, p := range partials {
		for pos, v := range p {
			result[pos] = v
		}
	}

	return result
}

// dotProduct implements the dot kernel (spec §4.6): each output entry is a
// merge of a row of A and a column of B. When a mask is supplied, only
// mask-structural positions are visited (spec: "used when a mask is present
// and sparse"); otherwise every row of A crossed with every column of B is
// considered, skipping pairs with no shared index (an empty dot product).
func dotProduct(a, b operand, semi *monoid.Semiring, mask *container.Matrix) map[coord]any {
	result := make(map[coord]any)

	both := a.iso && b.iso
	var isoOut any
	if both {
		isoOut = multiply(semi.Mul, 0, 0, 0, a.isoVal, b.isoVal)
	}

	terminal, hasTerminal := semi.Add.Terminal()

	compute := func(i, j uint64) {
		rowI, ok := a.rows[i]
		if !ok {
			return
		}
		colJ, ok := b.cols[j]
		if !ok {
			return
		}

		var acc any
		has := false
		for k, av := range rowI {
			bv, ok := colJ[k]
			if !ok {
				continue
			}
			var contribution any
			if both {
				contribution = isoOut
			} else {
				contribution = multiply(semi.Mul, i, k, j, av, bv)
			}
			if !has {
				acc = contribution
				has = true
			} else {
				acc = semi.Add.Op.Apply(acc, contribution)
			}
			if hasTerminal && acc == terminal {
				break
			}
		}
		if has {
			result[coord{i, j}] = acc
		}
	}

	if mask != nil {
		mi, mj, _, err := mask.ExtractTuples(true, true, false)
		if err == nil {
			for k := range mi {
				compute(mi[k], mj[k])
			}
			return result
		}
	}

	for i := range a.rows {
		for j := range b.cols {
			compute(i, j)
		}
	}

	return result
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
