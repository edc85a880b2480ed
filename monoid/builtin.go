package monoid

import (
	"math"

	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/gbop"
)

var numericCodes = []dtype.Code{
	dtype.INT8, dtype.INT16, dtype.INT32, dtype.INT64,
	dtype.UINT8, dtype.UINT16, dtype.UINT32, dtype.UINT64,
	dtype.FP32, dtype.FP64,
}

func mustMonoid(op *gbop.Binary, identity any) *Monoid {
	m, err := New(op, identity)
	if err != nil {
		panic(err) // programmer error: built-in table construction only
	}

	return m
}

func buildTable(ops map[dtype.Code]*gbop.Binary, identity func(code dtype.Code) any) map[dtype.Code]*Monoid {
	table := make(map[dtype.Code]*Monoid, len(numericCodes))
	for _, code := range numericCodes {
		table[code] = mustMonoid(ops[code], identity(code))
	}

	return table
}

func buildTerminalTable(ops map[dtype.Code]*gbop.Binary, identity func(dtype.Code) any, terminal func(dtype.Code) any) map[dtype.Code]*Monoid {
	table := buildTable(ops, identity)
	for code, m := range table {
		table[code] = ptr(m.WithTerminal(terminal(code)))
	}

	return table
}

func ptr(m Monoid) *Monoid { return &m }

// PlusMonoid, TimesMonoid: classic additive/multiplicative monoids, keyed
// by built-in numeric type code. No terminal value (summation never
// short-circuits).
var (
	PlusMonoid  = buildTable(gbop.Plus, func(dtype.Code) any { return dtype.Zero(0) })
	TimesMonoid = buildTable(gbop.Times, oneOf)
)

func init() {
	// PlusMonoid's identity must be the type's own zero value, not the
	// placeholder above; fix up per-code since dtype.Zero needs the code.
	for code, m := range PlusMonoid {
		m.Identity = dtype.Zero(code)
	}
}

func oneOf(code dtype.Code) any {
	switch code {
	case dtype.INT8:
		return int8(1)
	case dtype.INT16:
		return int16(1)
	case dtype.INT32:
		return int32(1)
	case dtype.INT64:
		return int64(1)
	case dtype.UINT8:
		return uint8(1)
	case dtype.UINT16:
		return uint16(1)
	case dtype.UINT32:
		return uint32(1)
	case dtype.UINT64:
		return uint64(1)
	case dtype.FP32:
		return float32(1)
	case dtype.FP64:
		return float64(1)
	default:
		return nil
	}
}

func typeMax(code dtype.Code) any {
	switch code {
	case dtype.INT8:
		return int8(math.MaxInt8)
	case dtype.INT16:
		return int16(math.MaxInt16)
	case dtype.INT32:
		return int32(math.MaxInt32)
	case dtype.INT64:
		return int64(math.MaxInt64)
	case dtype.UINT8:
		return uint8(math.MaxUint8)
	case dtype.UINT16:
		return uint16(math.MaxUint16)
	case dtype.UINT32:
		return uint32(math.MaxUint32)
	case dtype.UINT64:
		return uint64(math.MaxUint64)
	case dtype.FP32:
		return float32(math.MaxFloat32)
	case dtype.FP64:
		return math.MaxFloat64
	default:
		return nil
	}
}

func typeMin(code dtype.Code) any {
	switch code {
	case dtype.INT8:
		return int8(math.MinInt8)
	case dtype.INT16:
		return int16(math.MinInt16)
	case dtype.INT32:
		return int32(math.MinInt32)
	case dtype.INT64:
		return int64(math.MinInt64)
	case dtype.UINT8:
		return uint8(0)
	case dtype.UINT16:
		return uint16(0)
	case dtype.UINT32:
		return uint32(0)
	case dtype.UINT64:
		return uint64(0)
	case dtype.FP32:
		return float32(-math.MaxFloat32)
	case dtype.FP64:
		return -math.MaxFloat64
	default:
		return nil
	}
}

// MinMonoid/MaxMonoid: terminal value is the type's min/max respectively —
// once a reduction sees it, no smaller/larger value can change the result
// (spec §4.2, §4.8 terminal short-circuit).
var (
	MinMonoid = buildTerminalTable(gbop.Min, typeMax, typeMin)
	MaxMonoid = buildTerminalTable(gbop.Max, typeMin, typeMax)
)

// LOrMonoid, LAndMonoid, LXorMonoid, AnyMonoid: boolean monoids. LOR's
// terminal is true (an OR-reduction can stop at the first true, spec §8 S3);
// LAND's terminal is false.
var (
	LOrMonoid  = mustMonoid(gbop.LOr, false)
	LAndMonoid = mustMonoid(gbop.LAnd, true)
	LXorMonoid = mustMonoid(gbop.LXor, false)
	AnyMonoid  = mustMonoid(mustAnyBoolOp(), false)
)

func mustAnyBoolOp() *gbop.Binary {
	boolTy := dtype.MustBuiltin(dtype.BOOL)
	op, err := gbop.NewBinary("ANY_BOOL", boolTy, boolTy, boolTy, func(x, y any) any { return y })
	if err != nil {
		panic(err)
	}

	return op
}

func init() {
	LOrMonoid.hasTerminal, LOrMonoid.terminal = true, true
	LAndMonoid.hasTerminal, LAndMonoid.terminal = true, false
	// ANY has no fixed terminal in the classic sense, since any value is an
	// acceptable result; this engine models it as terminal=identity
	// (false), so a reducer stops once its running value is false and keeps
	// scanning while it is true.
	AnyMonoid.hasTerminal, AnyMonoid.terminal = true, false
}

// Semiring table, keyed by numeric type code.
var (
	// PlusTimes is the classic numeric semiring (ordinary matrix product).
	PlusTimes = buildSemiringTable(PlusMonoid, gbop.Times)

	// MinPlus is the tropical (shortest-path) semiring (spec §8 S2).
	MinPlus = buildSemiringTable(MinMonoid, gbop.Plus)

	// MaxPlus is the longest-path tropical semiring.
	MaxPlus = buildSemiringTable(MaxMonoid, gbop.Plus)

	// MinFirst/MaxFirst: multiplier ignores B's value entirely.
	MinFirst = buildSemiringTable(MinMonoid, gbop.First)
	MaxFirst = buildSemiringTable(MaxMonoid, gbop.First)
)

func buildSemiringTable(add map[dtype.Code]*Monoid, mul map[dtype.Code]*gbop.Binary) map[dtype.Code]*Semiring {
	table := make(map[dtype.Code]*Semiring, len(numericCodes))
	for _, code := range numericCodes {
		s, err := NewSemiring(add[code], mul[code])
		if err != nil {
			panic(err)
		}
		table[code] = s
	}

	return table
}

// MinMax, with a non-numeric-table structure (scalar monoid pair, reused
// across any orderable numeric type via MinMonoid/MaxMonoid directly), is
// intentionally omitted as a named table: MinMonoid's operator already is
// MIN, so MinMax (min-of-max products) composes as
// NewSemiring(MinMonoid[code], gbop.Max[code]) at the call site — adding a
// third parallel table here would not teach anything the two existing
// tables don't already show.

// LOrLAnd is the boolean reachability semiring used for BFS frontier
// propagation (spec §8 S1): the additive monoid is LOR (terminal=true), the
// multiplier is LAND.
var LOrLAnd = func() *Semiring {
	s, err := NewSemiring(LOrMonoid, gbop.LAnd)
	if err != nil {
		panic(err)
	}

	return s
}()

// AnyPair is the any-pair semiring used to propagate a single witness value
// (e.g. a predecessor id) through a BFS frontier: the additive side is ANY
// (first write wins) and the multiplier is PAIR's positional analogue,
// FIRSTJ_INT64, so the contributing vertex's own index flows through
// instead of a value (spec glossary "positional operator ... used for
// returning node ids through a semiring").
var AnyPairInt64 = func() *Semiring {
	int64Ty := dtype.MustBuiltin(dtype.INT64)
	anyInt64Op, err := gbop.NewBinary("ANY_INT64", int64Ty, int64Ty, int64Ty, func(x, y any) any { return y })
	if err != nil {
		panic(err)
	}
	anyInt64 := mustMonoid(anyInt64Op, int64(0))

	s, err := NewSemiring(anyInt64, gbop.FirstJ64)
	if err != nil {
		panic(err)
	}

	return s
}()
