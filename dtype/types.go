package dtype

import (
	"fmt"
	"sync"
)

// Code identifies a scalar type. The built-in codes mirror the GraphBLAS
// value-type enum (spec §6); Code 0 is reserved for user-defined types (UDTs),
// each of which gets a distinct Code >= firstUDTCode at registration time.
type Code int

// Built-in scalar type codes (spec §6).
const (
	UDT Code = iota
	BOOL
	INT8
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
	FP32
	FP64
	FC32
	FC64

	firstUDTCode Code = 1000 // user types start well clear of built-ins
)

// Type is an opaque handle into the registry. Built-in Types are
// process-lifetime singletons; user types additionally carry Size and,
// optionally, a C name/definition consumed by a JIT backend this package
// does not implement (spec: "the JIT compiler pipeline ... treated as
// pluggable backends").
type Type struct {
	Code Code
	Name string
	Size int // bytes per element

	cDef string // non-empty only for JIT-eligible UDTs
}

// JITEligible reports whether the type carries a C definition usable by a
// JIT backend. Built-in types are always JIT-eligible; UDTs are eligible
// only if registered via NewUDT with a non-empty cdef.
func (t *Type) JITEligible() bool {
	if t == nil {
		return false
	}
	if t.Code < firstUDTCode {
		return true
	}

	return t.cDef != ""
}

// String implements fmt.Stringer for debugging and log messages.
func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}

	return t.Name
}

var builtins = map[Code]*Type{
	BOOL:  {Code: BOOL, Name: "BOOL", Size: 1},
	INT8:  {Code: INT8, Name: "INT8", Size: 1},
	INT16: {Code: INT16, Name: "INT16", Size: 2},
	INT32: {Code: INT32, Name: "INT32", Size: 4},
	INT64: {Code: INT64, Name: "INT64", Size: 8},
	UINT8: {Code: UINT8, Name: "UINT8", Size: 1},
	UINT16: {Code: UINT16, Name: "UINT16", Size: 2},
	UINT32: {Code: UINT32, Name: "UINT32", Size: 4},
	UINT64: {Code: UINT64, Name: "UINT64", Size: 8},
	FP32:  {Code: FP32, Name: "FP32", Size: 4},
	FP64:  {Code: FP64, Name: "FP64", Size: 8},
	FC32:  {Code: FC32, Name: "FC32", Size: 8},
	FC64:  {Code: FC64, Name: "FC64", Size: 16},
}

// registry guards user-defined type registration; built-ins never mutate
// after package init so they need no lock.
var registry = struct {
	mu       sync.RWMutex
	byCode   map[Code]*Type
	byName   map[string]*Type
	nextCode Code
}{
	byCode:   make(map[Code]*Type),
	byName:   make(map[string]*Type),
	nextCode: firstUDTCode,
}

// Builtin returns the singleton Type for a built-in Code, or ErrUnknownType
// if code does not name a built-in.
// Complexity: O(1).
func Builtin(code Code) (*Type, error) {
	t, ok := builtins[code]
	if !ok {
		return nil, ErrUnknownType
	}

	return t, nil
}

// MustBuiltin is Builtin but panics on an unknown code; reserved for
// package-init-time table construction where the code is a compile-time
// constant and an error would indicate a programmer mistake.
func MustBuiltin(code Code) *Type {
	t, err := Builtin(code)
	if err != nil {
		panic(fmt.Sprintf("dtype: MustBuiltin(%d): %v", code, err))
	}

	return t
}

// NewUDT registers a user-defined type and returns its handle.
// Stage 1 (Validate): size must be > 0, name must be non-empty and unique.
// Stage 2 (Register): assign the next UDT code and record it under both maps.
// cdef may be empty; a type registered without one is not JIT-eligible
// (spec §4.1) and must fall back to an interpreted path.
// Complexity: O(1) amortized, guarded by registry.mu.
func NewUDT(name string, size int, cdef string) (*Type, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.byName[name]; exists {
		return nil, ErrDuplicateName
	}

	t := &Type{Code: registry.nextCode, Name: name, Size: size, cDef: cdef}
	registry.byCode[t.Code] = t
	registry.byName[name] = t
	registry.nextCode++

	return t, nil
}

// Lookup resolves a Code to its Type, built-in or user-defined.
// Complexity: O(1).
func Lookup(code Code) (*Type, error) {
	if t, ok := builtins[code]; ok {
		return t, nil
	}

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	if t, ok := registry.byCode[code]; ok {
		return t, nil
	}

	return nil, ErrUnknownType
}

// LookupByName resolves a user type by its registered name.
// Complexity: O(1).
func LookupByName(name string) (*Type, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	if t, ok := registry.byName[name]; ok {
		return t, nil
	}

	return nil, ErrUnknownType
}

// GoTypeMatches reports whether v's dynamic Go type is the one this package
// uses to represent code. UDT codes always report true: a UDT's Go
// representation is a matter between its registrant and its callers, not
// something this package can check.
// Complexity: O(1).
func GoTypeMatches(code Code, v any) bool {
	switch code {
	case BOOL:
		_, ok := v.(bool)
		return ok
	case INT8:
		_, ok := v.(int8)
		return ok
	case INT16:
		_, ok := v.(int16)
		return ok
	case INT32:
		_, ok := v.(int32)
		return ok
	case INT64:
		_, ok := v.(int64)
		return ok
	case UINT8:
		_, ok := v.(uint8)
		return ok
	case UINT16:
		_, ok := v.(uint16)
		return ok
	case UINT32:
		_, ok := v.(uint32)
		return ok
	case UINT64:
		_, ok := v.(uint64)
		return ok
	case FP32:
		_, ok := v.(float32)
		return ok
	case FP64:
		_, ok := v.(float64)
		return ok
	case FC32:
		_, ok := v.(complex64)
		return ok
	case FC64:
		_, ok := v.(complex128)
		return ok
	default:
		return true
	}
}

// Zero returns the logical zero/identity-shaped value for a built-in type,
// used as a safe default when a bitmap/full cell's presence bit is unset.
// Complexity: O(1).
func Zero(code Code) any {
	switch code {
	case BOOL:
		return false
	case INT8:
		return int8(0)
	case INT16:
		return int16(0)
	case INT32:
		return int32(0)
	case INT64:
		return int64(0)
	case UINT8:
		return uint8(0)
	case UINT16:
		return uint16(0)
	case UINT32:
		return uint32(0)
	case UINT64:
		return uint64(0)
	case FP32:
		return float32(0)
	case FP64:
		return float64(0)
	case FC32:
		return complex64(0)
	case FC64:
		return complex128(0)
	default:
		return nil
	}
}
