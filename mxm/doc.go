// Package mxm implements the matrix multiply engine (spec §4.6): C⟨M⟩ ⊕= A
// ⊗_semiring B, with three interchangeable kernels (saxpy-Gustavson,
// saxpy-hash, dot), a cost-model selector, iso fast paths, terminal
// short-circuit, and positional-multiplier specialization. The raw product
// is handed to exec.Accumulate for the masked-accumulate write into C.
package mxm
