package gbcontext

import "sync"

// Context overrides the process-wide thread/chunk defaults for the extent
// it is engaged (spec §5: "A context object may override thread/chunk").
// Zero fields mean "no override" rather than "force to zero": the
// process-wide default applies, and contexts further down the stack are
// not consulted.
type Context struct {
	NThreads int
	Chunk    int
}

// New constructs a Context. nthreads and chunk of 0 mean "no override at
// this level".
func New(nthreads, chunk int) (*Context, error) {
	if nthreads < 0 {
		return nil, ErrNegativeThreads
	}
	if chunk < 0 {
		return nil, ErrNegativeChunk
	}

	return &Context{NThreads: nthreads, Chunk: chunk}, nil
}

// Handle is a per-worker stack of engaged Contexts. Spec §5 describes
// contexts as "stackable per thread via engage/disengage"; since Go has no
// implicit thread-local storage, a Handle is the explicit stand-in a caller
// creates once per goroutine (or per logical worker) and threads through
// its own call chain — see package doc for why this is a documented
// deviation rather than an oversight.
type Handle struct {
	mu    sync.Mutex
	stack []*Context
}

// NewHandle constructs an empty Handle (no context engaged).
func NewHandle() *Handle {
	return &Handle{}
}

// Engage pushes ctx onto the handle's stack; it becomes the effective
// context until a matching Disengage.
// Complexity: O(1).
func (h *Handle) Engage(ctx *Context) error {
	if ctx == nil {
		return ErrNilContext
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.stack = append(h.stack, ctx)

	return nil
}

// Disengage pops and returns the most recently engaged Context.
// Complexity: O(1).
func (h *Handle) Disengage() (*Context, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.stack)
	if n == 0 {
		return nil, ErrStackEmpty
	}

	ctx := h.stack[n-1]
	h.stack = h.stack[:n-1]

	return ctx, nil
}

// Current returns the innermost engaged Context, or nil if none is engaged.
func (h *Handle) Current() *Context {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.stack) == 0 {
		return nil
	}

	return h.stack[len(h.stack)-1]
}

// EffectiveThreads resolves the thread count an operation should use: the
// innermost engaged context's NThreads if non-zero, else the process-wide
// default.
func (h *Handle) EffectiveThreads() int {
	if ctx := h.Current(); ctx != nil && ctx.NThreads != 0 {
		return ctx.NThreads
	}
	n, _ := Defaults()

	return n
}

// EffectiveChunk resolves the chunk size an operation should use, mirroring
// EffectiveThreads.
func (h *Handle) EffectiveChunk() int {
	if ctx := h.Current(); ctx != nil && ctx.Chunk != 0 {
		return ctx.Chunk
	}
	_, c := Defaults()

	return c
}
