package graphalgo

import "errors"

// Sentinel errors for BFS and SSSP execution.
var (
	// ErrGraphNil is returned if a nil adjacency matrix is passed.
	ErrGraphNil = errors.New("graphalgo: adjacency matrix is nil")

	// ErrNotSquare is returned when the adjacency matrix is not square.
	ErrNotSquare = errors.New("graphalgo: adjacency matrix must be square")

	// ErrStartOutOfRange is returned when the start vertex index is outside
	// the adjacency matrix's dimensions.
	ErrStartOutOfRange = errors.New("graphalgo: start vertex out of range")
)
