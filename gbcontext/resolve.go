package gbcontext

import "runtime"

// ResolveThreads picks the worker count an operation should use: the
// caller's explicit override (e.g. a descriptor's NThreads field) if
// non-zero, else the process-wide default installed via SetDefaults, else
// GOMAXPROCS as the last resort (spec §5: "A context object may override
// thread/chunk"; §6 descriptor table: "NThreads | 0 means engine default").
func ResolveThreads(override int) int {
	if override > 0 {
		return override
	}
	if n, _ := Defaults(); n > 0 {
		return n
	}

	return runtime.GOMAXPROCS(0)
}

// ResolveChunk picks the chunk size an operation should use, mirroring
// ResolveThreads (spec §6 descriptor table: "Chunk | 0 means engine
// default").
func ResolveChunk(override int) int {
	if override > 0 {
		return override
	}
	_, c := Defaults()

	return c
}
