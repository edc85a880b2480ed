// Package graphalgo provides graph traversals expressed as matrix products
// over non-standard semirings (spec.md §1: "Graph algorithms are expressed
// as matrix-matrix and matrix-vector products over non-standard
// semirings"). BFS uses the LOR-LAND semiring over a BOOL adjacency matrix
// (spec.md §8 scenario S1); SSSP uses the MIN-PLUS tropical semiring over a
// weighted adjacency matrix (spec.md §8 scenario S2). Both are thin
// wrappers around mxm.MxV and exec.Accumulate — all the actual linear
// algebra lives in those packages.
package graphalgo
