// Package dtype implements the scalar type registry (spec §4.1).
//
// Types are opaque handles. Built-in types are process-lifetime singletons
// reachable by Code; user-defined types (UDTs) carry a size and, optionally,
// a C name/definition used by a JIT backend — this package never compiles
// anything, but it records whether a type is JIT-eligible so callers can
// detect and route around it (spec §4.1: "operators created without a
// definition are unusable by JIT; the engine must detect and route around
// this").
package dtype
