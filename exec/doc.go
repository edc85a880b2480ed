// Package exec implements the masked-accumulate executor (spec §4.5), the
// single dispatcher through which every other component writes its raw
// result T into an output matrix C: C⟨M,z,r⟩ = C ⊕ T.
//
// Every producer in this module — mxm, ewise, apply — builds a fresh T
// and hands it to Accumulate along with the caller's mask,
// accumulator, and descriptor; none of them interpret mask/accum/replace
// themselves (spec §4.5: "The executor is the single point where mask/
// accum/replace are interpreted; every other component emits a raw T and
// hands it here").
package exec
