package dtype

import "sync"

// castFn converts a value of one registered type to another. Implementations
// must not panic on values legally constructed by this package's Zero/typed
// constructors.
type castFn func(any) any

var castTable = struct {
	mu sync.RWMutex
	m  map[[2]Code]castFn
}{m: make(map[[2]Code]castFn)}

// RegisterCast installs a conversion from -> to. Re-registering the same
// pair overwrites the previous entry (last-writer-wins, matching the
// functional-options resolution style used across this module).
// Complexity: O(1).
func RegisterCast(from, to Code, fn castFn) {
	castTable.mu.Lock()
	defer castTable.mu.Unlock()
	castTable.m[[2]Code{from, to}] = fn
}

// Cast converts v (a value of type `from`) to type `to`. Identity casts
// (from == to) always succeed without a table lookup.
// Complexity: O(1).
func Cast(v any, from, to Code) (any, error) {
	if from == to {
		return v, nil
	}

	castTable.mu.RLock()
	fn, ok := castTable.m[[2]Code{from, to}]
	castTable.mu.RUnlock()

	if !ok {
		return nil, ErrNoCast
	}

	return fn(v), nil
}

func init() {
	// Numeric casts across the built-in type lattice: widenings plus the
	// FP64->FP32 and INT64->INT32 narrowings. Only the
	// casts needed by the built-in operator/monoid tables (gbop, monoid) and
	// by apply-time type coercion are pre-registered; a UDT caller wires
	// its own via RegisterCast.
	RegisterCast(BOOL, INT32, func(v any) any {
		if v.(bool) {
			return int32(1)
		}
		return int32(0)
	})
	RegisterCast(BOOL, FP64, func(v any) any {
		if v.(bool) {
			return float64(1)
		}
		return float64(0)
	})
	RegisterCast(INT32, FP64, func(v any) any { return float64(v.(int32)) })
	RegisterCast(INT64, FP64, func(v any) any { return float64(v.(int64)) })
	RegisterCast(FP32, FP64, func(v any) any { return float64(v.(float32)) })
	RegisterCast(FP64, FP32, func(v any) any { return float32(v.(float64)) })
	RegisterCast(INT32, INT64, func(v any) any { return int64(v.(int32)) })
	RegisterCast(UINT32, UINT64, func(v any) any { return uint64(v.(uint32)) })
	RegisterCast(INT64, INT32, func(v any) any { return int32(v.(int64)) })
}
