// Package graphblas is a sparse linear-algebra engine implementing the
// GraphBLAS algebra: sparse matrices and vectors over user-selectable
// semirings, with masked, accumulated assignment as the universal update
// pattern for every operation.
//
// What is graphblas?
//
//	A pure-Go sparse matrix engine that brings together:
//
//	  - A polymorphic sparse container with four storage forms (hypersparse,
//	    sparse, bitmap, full) chosen automatically by density.
//	  - A masked-accumulate executor: C⟨M,z,r⟩ = C ⊕ f(A,B), the single
//	    update pattern every operation funnels through.
//	  - A matrix-multiply engine with three kernels (saxpy-Gustavson,
//	    saxpy-hash, dot) and a cost-model selector.
//	  - A type/operator/monoid/semiring object system so graph algorithms
//	    can be expressed as matrix products over non-standard semirings
//	    (min-plus for shortest paths, or-and for BFS frontiers).
//
// Everything is organized under one package per concern:
//
//	dtype/      — scalar type registry (13 built-ins + user-defined types)
//	gbop/       — unary/binary/index-unary operator objects
//	monoid/     — monoids and semirings, built from operators
//	descriptor/ — per-call settings (mask mode, replace, transpose, algorithm hint)
//	gbcontext/  — thread/chunk configuration and stackable contexts
//	status/     — the GraphBLAS error-code taxonomy
//	container/  — Matrix/Vector/Scalar, storage forms, deferred work, iterators, serialization
//	exec/       — the masked-accumulate executor
//	mxm/        — the matrix-multiply engine
//	ewise/      — eWiseAdd, eWiseMult, eWiseUnion
//	apply/      — Apply, Select, Reduce
//	graphalgo/  — graph algorithms expressed as semiring matrix products
//
// Quick sketch — one step of breadth-first search as a matrix-vector
// product over the LOR-LAND semiring:
//
//	err := mxm.MxV(next, visited, nil, monoid.LOrLAnd, a, frontier, d)
//
// where d transposes a and complements the visited mask.
//
// See graphalgo.BFS for the full, tested version of this example.
package graphblas
