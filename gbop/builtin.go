package gbop

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/graphblas/dtype"
)

// numericCodes lists the built-in scalar types arithmetic operators are
// generated for; spec §1 treats built-in scalar operators abstractly
// ("their per-type implementations are mechanical") — this file realizes
// that as one generic function per operator family plus a type-code-indexed
// table, instead of a hand-written file per GrB_*_INT8/.../FP64 entry point.
var numericCodes = []dtype.Code{
	dtype.INT8, dtype.INT16, dtype.INT32, dtype.INT64,
	dtype.UINT8, dtype.UINT16, dtype.UINT32, dtype.UINT64,
	dtype.FP32, dtype.FP64,
}

// arith builds a *Binary over Go type T for a given built-in code, wrapping
// a generic arithmetic function bound by constraints.Integer|constraints.Float.
func arith[T constraints.Integer | constraints.Float](name string, code dtype.Code, fn func(a, b T) T) *Binary {
	ty := dtype.MustBuiltin(code)
	op, err := NewBinary(name, ty, ty, ty, func(x, y any) any {
		return fn(x.(T), y.(T))
	})
	if err != nil {
		panic(err) // programmer error: table construction at init time only
	}

	return op
}

// compare builds a *Binary returning BOOL over Go type T bound by
// constraints.Ordered.
func compare[T constraints.Ordered](name string, code dtype.Code, fn func(a, b T) bool) *Binary {
	ty := dtype.MustBuiltin(code)
	boolTy := dtype.MustBuiltin(dtype.BOOL)
	op, err := NewBinary(name, ty, ty, boolTy, func(x, y any) any {
		return fn(x.(T), y.(T))
	})
	if err != nil {
		panic(err)
	}

	return op
}

func buildArithTable(name string, build func(code dtype.Code) *Binary) map[dtype.Code]*Binary {
	table := make(map[dtype.Code]*Binary, len(numericCodes))
	for _, code := range numericCodes {
		table[code] = build(code)
	}

	return table
}

// Per-type-code operator tables for the standard GraphBLAS arithmetic
// binary operators (spec §1, §9 "kernel code is templated/monomorphized on
// the three type parameters of a semiring").
var (
	Plus  = buildArithTable("PLUS", func(code dtype.Code) *Binary { return dispatchArith(code, "PLUS") })
	Minus = buildArithTable("MINUS", func(code dtype.Code) *Binary { return dispatchArith(code, "MINUS") })
	Times = buildArithTable("TIMES", func(code dtype.Code) *Binary { return dispatchArith(code, "TIMES") })
	Div   = buildArithTable("DIV", func(code dtype.Code) *Binary { return dispatchArith(code, "DIV") })
	Min   = buildArithTable("MIN", func(code dtype.Code) *Binary { return dispatchArith(code, "MIN") })
	Max   = buildArithTable("MAX", func(code dtype.Code) *Binary { return dispatchArith(code, "MAX") })
	First = buildArithTable("FIRST", func(code dtype.Code) *Binary { return dispatchArith(code, "FIRST") })
	Second = buildArithTable("SECOND", func(code dtype.Code) *Binary { return dispatchArith(code, "SECOND") })
	Pair  = buildArithTable("PAIR", func(code dtype.Code) *Binary { return dispatchArith(code, "PAIR") })
	Any   = buildArithTable("ANY", func(code dtype.Code) *Binary { return dispatchArith(code, "ANY") })

	Eq = buildArithTable("EQ", func(code dtype.Code) *Binary { return dispatchCompare(code, "EQ") })
	Ne = buildArithTable("NE", func(code dtype.Code) *Binary { return dispatchCompare(code, "NE") })
	Lt = buildArithTable("LT", func(code dtype.Code) *Binary { return dispatchCompare(code, "LT") })
	Le = buildArithTable("LE", func(code dtype.Code) *Binary { return dispatchCompare(code, "LE") })
	Gt = buildArithTable("GT", func(code dtype.Code) *Binary { return dispatchCompare(code, "GT") })
	Ge = buildArithTable("GE", func(code dtype.Code) *Binary { return dispatchCompare(code, "GE") })
)

// dispatchArith instantiates the generic arith[T] helper for the Go type
// backing `code`, for one of the named arithmetic families. Integer division
// follows spec §7's saturating contract via intDivSaturate; floating
// division follows IEEE-754 (±Inf, NaN) through Go's native operator.
func dispatchArith(code dtype.Code, family string) *Binary {
	switch code {
	case dtype.INT8:
		return arithInt8(family)
	case dtype.INT16:
		return arithInt16(family)
	case dtype.INT32:
		return arithInt32(family)
	case dtype.INT64:
		return arithInt64(family)
	case dtype.UINT8:
		return arithUint8(family)
	case dtype.UINT16:
		return arithUint16(family)
	case dtype.UINT32:
		return arithUint32(family)
	case dtype.UINT64:
		return arithUint64(family)
	case dtype.FP32:
		return arithFloat32(family)
	case dtype.FP64:
		return arithFloat64(family)
	default:
		panic("gbop: unsupported numeric code")
	}
}

func dispatchCompare(code dtype.Code, family string) *Binary {
	switch code {
	case dtype.INT8:
		return compareInt8(family)
	case dtype.INT16:
		return compareInt16(family)
	case dtype.INT32:
		return compareInt32(family)
	case dtype.INT64:
		return compareInt64(family)
	case dtype.UINT8:
		return compareUint8(family)
	case dtype.UINT16:
		return compareUint16(family)
	case dtype.UINT32:
		return compareUint32(family)
	case dtype.UINT64:
		return compareUint64(family)
	case dtype.FP32:
		return compareFloat32(family)
	case dtype.FP64:
		return compareFloat64(family)
	default:
		panic("gbop: unsupported numeric code")
	}
}

// intDivSaturate implements spec §7's deliberate integer-division contract:
// max on positive/zero overflow, min on negative overflow, zero for 0/0.
// maxV/minV are the concrete type's bounds, supplied by the caller because
// Go generics have no portable way to derive math.MaxInt8-style constants
// from a type parameter alone.
func intDivSaturate[T constraints.Integer](a, b, maxV, minV T) T {
	if b == 0 {
		if a == 0 {
			return 0
		}
		if a > 0 {
			return maxV
		}
		return minV
	}

	return a / b
}

func fam[T constraints.Integer | constraints.Float](family string, code dtype.Code, isFloat bool, maxV, minV T) *Binary {
	switch family {
	case "PLUS":
		return arith[T]("PLUS", code, func(a, b T) T { return a + b })
	case "MINUS":
		return arith[T]("MINUS", code, func(a, b T) T { return a - b })
	case "TIMES":
		return arith[T]("TIMES", code, func(a, b T) T { return a * b })
	case "DIV":
		if isFloat {
			return arith[T]("DIV", code, func(a, b T) T { return a / b })
		}
		return arith[T]("DIV", code, func(a, b T) T { return intDivSaturate(a, b, maxV, minV) })
	case "MIN":
		return arith[T]("MIN", code, func(a, b T) T {
			if a < b {
				return a
			}
			return b
		})
	case "MAX":
		return arith[T]("MAX", code, func(a, b T) T {
			if a > b {
				return a
			}
			return b
		})
	case "FIRST":
		return arith[T]("FIRST", code, func(a, b T) T { return a })
	case "SECOND":
		return arith[T]("SECOND", code, func(a, b T) T { return b })
	case "PAIR":
		return arith[T]("PAIR", code, func(a, b T) T { return 1 })
	case "ANY":
		return arith[T]("ANY", code, func(a, b T) T { return b })
	default:
		panic("gbop: unknown arithmetic family " + family)
	}
}

func cmpFam[T constraints.Ordered](family string, code dtype.Code) *Binary {
	switch family {
	case "EQ":
		return compare[T]("EQ", code, func(a, b T) bool { return a == b })
	case "NE":
		return compare[T]("NE", code, func(a, b T) bool { return a != b })
	case "LT":
		return compare[T]("LT", code, func(a, b T) bool { return a < b })
	case "LE":
		return compare[T]("LE", code, func(a, b T) bool { return a <= b })
	case "GT":
		return compare[T]("GT", code, func(a, b T) bool { return a > b })
	case "GE":
		return compare[T]("GE", code, func(a, b T) bool { return a >= b })
	default:
		panic("gbop: unknown comparison family " + family)
	}
}

func arithInt8(f string) *Binary {
	return fam[int8](f, dtype.INT8, false, math.MaxInt8, math.MinInt8)
}
func arithInt16(f string) *Binary {
	return fam[int16](f, dtype.INT16, false, math.MaxInt16, math.MinInt16)
}
func arithInt32(f string) *Binary {
	return fam[int32](f, dtype.INT32, false, math.MaxInt32, math.MinInt32)
}
func arithInt64(f string) *Binary {
	return fam[int64](f, dtype.INT64, false, math.MaxInt64, math.MinInt64)
}
func arithUint8(f string) *Binary {
	return fam[uint8](f, dtype.UINT8, false, math.MaxUint8, 0)
}
func arithUint16(f string) *Binary {
	return fam[uint16](f, dtype.UINT16, false, math.MaxUint16, 0)
}
func arithUint32(f string) *Binary {
	return fam[uint32](f, dtype.UINT32, false, math.MaxUint32, 0)
}
func arithUint64(f string) *Binary {
	return fam[uint64](f, dtype.UINT64, false, math.MaxUint64, 0)
}
func arithFloat32(f string) *Binary {
	return fam[float32](f, dtype.FP32, true, math.MaxFloat32, -math.MaxFloat32)
}
func arithFloat64(f string) *Binary {
	return fam[float64](f, dtype.FP64, true, math.MaxFloat64, -math.MaxFloat64)
}

func compareInt8(f string) *Binary    { return cmpFam[int8](f, dtype.INT8) }
func compareInt16(f string) *Binary   { return cmpFam[int16](f, dtype.INT16) }
func compareInt32(f string) *Binary   { return cmpFam[int32](f, dtype.INT32) }
func compareInt64(f string) *Binary   { return cmpFam[int64](f, dtype.INT64) }
func compareUint8(f string) *Binary   { return cmpFam[uint8](f, dtype.UINT8) }
func compareUint16(f string) *Binary  { return cmpFam[uint16](f, dtype.UINT16) }
func compareUint32(f string) *Binary  { return cmpFam[uint32](f, dtype.UINT32) }
func compareUint64(f string) *Binary  { return cmpFam[uint64](f, dtype.UINT64) }
func compareFloat32(f string) *Binary { return cmpFam[float32](f, dtype.FP32) }
func compareFloat64(f string) *Binary { return cmpFam[float64](f, dtype.FP64) }

// Logical operators over BOOL (spec's LOR/LAND/LXOR monoid operators).
var (
	LOr = mustBinary("LOR", dtype.BOOL, func(x, y any) any { return x.(bool) || y.(bool) })

	LAnd = mustBinary("LAND", dtype.BOOL, func(x, y any) any { return x.(bool) && y.(bool) })

	LXor = mustBinary("LXOR", dtype.BOOL, func(x, y any) any { return x.(bool) != y.(bool) })
)

func mustBinary(name string, code dtype.Code, fn func(x, y any) any) *Binary {
	ty := dtype.MustBuiltin(code)
	op, err := NewBinary(name, ty, ty, ty, fn)
	if err != nil {
		panic(err)
	}

	return op
}

// Positional binary operators (spec §4.6 "positional multiplier
// specialization"): FIRSTI/FIRSTJ return the row/col of A's contribution,
// SECONDI/SECONDJ the row/col of B's; each comes in an INT32 and INT64
// output flavor, matching the historical GrB_FIRSTI_INT32/_INT64 pair.
var (
	FirstI32  = mustPositional("FIRSTI_INT32", dtype.INT32, func(i, _, _ uint64) any { return int32(i) })
	FirstI64  = mustPositional("FIRSTI_INT64", dtype.INT64, func(i, _, _ uint64) any { return int64(i) })
	FirstJ32  = mustPositional("FIRSTJ_INT32", dtype.INT32, func(_, k, _ uint64) any { return int32(k) })
	FirstJ64  = mustPositional("FIRSTJ_INT64", dtype.INT64, func(_, k, _ uint64) any { return int64(k) })
	SecondI32 = mustPositional("SECONDI_INT32", dtype.INT32, func(_, k, _ uint64) any { return int32(k) })
	SecondI64 = mustPositional("SECONDI_INT64", dtype.INT64, func(_, k, _ uint64) any { return int64(k) })
	SecondJ32 = mustPositional("SECONDJ_INT32", dtype.INT32, func(_, _, j uint64) any { return int32(j) })
	SecondJ64 = mustPositional("SECONDJ_INT64", dtype.INT64, func(_, _, j uint64) any { return int64(j) })
)

func mustPositional(name string, outCode dtype.Code, fn func(i, k, j uint64) any) *Binary {
	op, err := NewPositionalBinary(name, dtype.MustBuiltin(outCode), fn)
	if err != nil {
		panic(err)
	}

	return op
}
