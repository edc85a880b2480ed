package mxm

import (
	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/gbop"
	"github.com/katalvlaran/graphblas/monoid"
)

// MxV computes y⟨M⟩ ⊕= A ⊗_semiring v, the matrix-vector specialization of
// MxM where v and y are modeled as n×1 matrices (spec §1: "graph algorithms
// are expressed as matrix-matrix and matrix-vector products"). It is a
// thin naming wrapper: the engine does not distinguish a vector from a
// single-column matrix.
func MxV(y, mask *container.Matrix, accum *gbop.Binary, semi *monoid.Semiring, a *container.Matrix, v *container.Matrix, d descriptor.Descriptor) error {
	return MxM(y, mask, accum, semi, a, v, d)
}
