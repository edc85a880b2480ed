package gbop

import (
	"github.com/katalvlaran/graphblas/dtype"
)

// valueCmp builds a BOOL-valued IndexUnary comparing the entry's value
// against the bound scalar y, ignoring position — the value-side half of
// the select family (spec §4.8 "select uses an index-unary op returning a
// boolean"). The comparison itself runs in float64: exact for every
// built-in code up to 32 bits and for the float types, while INT64/UINT64
// values beyond 2^53 in magnitude are rounded first and can compare equal
// when they differ.
func valueCmp(name string, code dtype.Code, cmp func(x, y float64) bool) *IndexUnary {
	ty := dtype.MustBuiltin(code)
	boolTy := dtype.MustBuiltin(dtype.BOOL)
	iu, err := NewIndexUnary(name, ty, ty, boolTy, false, func(x any, _, _ uint64, y any) any {
		return cmp(toFloat64(x), toFloat64(y))
	})
	if err != nil {
		panic(err)
	}

	return iu
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		panic(ErrTypeMismatch)
	}
}

func buildValueCmpTable(name string, cmp func(x, y float64) bool) map[dtype.Code]*IndexUnary {
	table := make(map[dtype.Code]*IndexUnary, len(numericCodes))
	for _, code := range numericCodes {
		table[code] = valueCmp(name, code, cmp)
	}

	return table
}

// Per-type-code select predicates over the entry's value, mirroring the
// GraphBLAS GrB_VALUEGT/VALUELT/VALUEEQ/VALUENE family (spec §4.8 select).
var (
	ValueGT = buildValueCmpTable("VALUEGT", func(x, y float64) bool { return x > y })
	ValueLT = buildValueCmpTable("VALUELT", func(x, y float64) bool { return x < y })
	ValueEQ = buildValueCmpTable("VALUEEQ", func(x, y float64) bool { return x == y })
	ValueNE = buildValueCmpTable("VALUENE", func(x, y float64) bool { return x != y })
)

// boolTy is the BOOL type handle positional index-unary predicates return.
var boolTy = dtype.MustBuiltin(dtype.BOOL)

// newPositionalIndexUnary builds a positional index-unary predicate that
// ignores the entry's value entirely, reading only (i,j) — used by the
// TRIL/TRIU/OFFDIAG select family (spec §4.8 select; spec §4.1 positional
// operator family generalized to IndexUnary).
func newPositionalIndexUnary(name string, fn func(i, j uint64, y any) bool) *IndexUnary {
	iu, err := NewIndexUnary(name, nil, nil, boolTy, true, func(_ any, i, j uint64, y any) any {
		return fn(i, j, y)
	})
	if err != nil {
		panic(err)
	}

	return iu
}

// RowIndexLE selects the lower triangle offset by the bound int64 scalar y
// (TRIL-style): true iff j-i <= y.
var RowIndexLE = newPositionalIndexUnary("TRIL", func(i, j uint64, y any) bool {
	return int64(j)-int64(i) <= y.(int64)
})

// RowIndexGE selects the upper triangle offset by the bound int64 scalar y
// (TRIU-style): true iff j-i >= y.
var RowIndexGE = newPositionalIndexUnary("TRIU", func(i, j uint64, y any) bool {
	return int64(j)-int64(i) >= y.(int64)
})

// OffDiag selects every entry not on the main diagonal.
var OffDiag = newPositionalIndexUnary("OFFDIAG", func(i, j uint64, _ any) bool {
	return i != j
})
