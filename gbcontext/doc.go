// Package gbcontext implements the engine's process-wide settings plus the
// stackable per-thread Context override described in spec §5 ("Shared-
// resource policy"): "The engine itself holds process-wide state: global
// sparsity switches, JIT settings, thread/chunk defaults, and the memory-
// allocator vtable installed at init. A context object may override
// thread/chunk; contexts are stackable per thread via engage/disengage."
//
// Go has no goroutine-local storage, so "per thread" cannot be implicit the
// way it is in the source API: there is no ambient slot a goroutine can
// consult without being handed something. This package makes that explicit
// instead of faking it — callers that want a stackable context obtain a
// *Handle (one per logical worker/goroutine) and call Engage/Disengage on
// it directly; nothing here reaches into goroutine-local state, because Go
// does not have any. This is a deliberate, documented deviation from the
// ambient-TLS model, not a silent simplification.
package gbcontext
