package gbcontext

import "errors"

// Sentinel errors for gbcontext.
var (
	// ErrStackEmpty indicates Disengage was called on a Handle with no
	// engaged Context.
	ErrStackEmpty = errors.New("gbcontext: disengage called with no engaged context")

	// ErrNilContext indicates Engage was called with a nil *Context.
	ErrNilContext = errors.New("gbcontext: cannot engage a nil context")

	// ErrNegativeThreads indicates a negative thread count was requested.
	ErrNegativeThreads = errors.New("gbcontext: nthreads must be >= 0")

	// ErrNegativeChunk indicates a negative chunk size was requested.
	ErrNegativeChunk = errors.New("gbcontext: chunk must be >= 0")
)
