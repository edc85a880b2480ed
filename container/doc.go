// Package container implements the polymorphic sparse Matrix — the central
// entity of the engine (spec §3, §4.3). A Matrix holds typed entries over an
// m×n index space in one of four interchangeable storage forms (hypersparse,
// sparse, bitmap, full), tracks deferred work (pending tuples, zombies,
// jumbled order) so element-wise updates stay cheap, and exposes the
// iterator protocol used by higher packages (exec, mxm, ewise, apply).
//
// A Vector is modeled exactly as the spec requires: an n×1 Matrix in a
// single-vector storage form. This package does not define a separate
// Vector type; callers construct an n×1 or 1×n Matrix and the same code
// path handles it. A Scalar is a 1×1 Matrix.
package container
