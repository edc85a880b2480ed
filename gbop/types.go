package gbop

import "github.com/katalvlaran/graphblas/dtype"

// Unary is a function object z=f(x). Non-positional unary operators invoke
// fn; this package currently only generates positional families for binary
// operators (FIRSTI/FIRSTJ/SECONDI/SECONDJ, spec §4.6), since those are the
// ones a semiring multiplier needs, but the Positional flag and
// ApplyPositional path are defined here too so a caller-supplied positional
// unary (e.g. a row-index-only relabeling op) composes the same way.
type Unary struct {
	Name       string
	In, Out    *dtype.Type
	Positional bool

	fn    func(x any) any
	posFn func(i, j uint64) any
}

// NewUnary constructs a value-taking unary operator.
func NewUnary(name string, in, out *dtype.Type, fn func(any) any) (*Unary, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if in == nil || out == nil {
		return nil, ErrNilType
	}

	return &Unary{Name: name, In: in, Out: out, fn: fn}, nil
}

// NewPositionalUnary constructs a positional unary operator: it reads (i,j)
// and ignores any value. Out should be an integer type (spec: "implicit
// integer output type (32- or 64-bit)").
func NewPositionalUnary(name string, out *dtype.Type, posFn func(i, j uint64) any) (*Unary, error) {
	if posFn == nil {
		return nil, ErrNilFunc
	}
	if out == nil {
		return nil, ErrNilType
	}

	return &Unary{Name: name, Out: out, Positional: true, posFn: posFn}, nil
}

// Apply evaluates a non-positional unary operator. Calling Apply on a
// positional operator is a programmer error and panics, matching the
// teacher's convention of panicking only on misuse, never on user data.
func (u *Unary) Apply(x any) any {
	if u.Positional {
		panic(ErrPositionalMisuse)
	}

	return u.fn(x)
}

// ApplyPositional evaluates a positional unary operator from (row, col).
func (u *Unary) ApplyPositional(i, j uint64) any {
	if !u.Positional {
		panic(ErrPositionalMisuse)
	}

	return u.posFn(i, j)
}

// Binary is a function object z=f(x,y). See Unary for the positional split.
//
// A positional Binary's posFn takes (i, k, j): i is the row of A's
// contributing entry, k is the shared reduction index (A's column / B's
// row), and j is the column of B's contributing entry — the three indices
// a matrix-multiply inner step has in hand. FIRSTI reads i, FIRSTJ reads k,
// SECONDI reads k, SECONDJ reads j (spec §4.6, "positional multiplier
// specialization").
type Binary struct {
	Name          string
	In0, In1, Out *dtype.Type
	Positional    bool

	// IgnoreDup marks the distinguished "ignore duplicates" sentinel (spec
	// §6 "Build/extractTuples": "a distinguished 'ignore duplicates'
	// sentinel selects arbitrary survival"). Only IgnoreDuplicates below
	// ever sets this; a caller-constructed Binary never has it set.
	IgnoreDup bool

	fn    func(x, y any) any
	posFn func(i, k, j uint64) any
}

// IgnoreDuplicates is the sentinel dup-resolution operator Build accepts in
// place of a real associative reduction when the caller does not care which
// of several duplicate (i,j) writes survives (spec §6). It carries no
// function body; container.Build/materializeLocked detect IgnoreDup and
// keep an arbitrary survivor instead of calling Apply.
var IgnoreDuplicates = &Binary{Name: "GrB_IGNORE_DUP", IgnoreDup: true}

// NewBinary constructs a value-taking binary operator.
func NewBinary(name string, in0, in1, out *dtype.Type, fn func(x, y any) any) (*Binary, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if in0 == nil || in1 == nil || out == nil {
		return nil, ErrNilType
	}

	return &Binary{Name: name, In0: in0, In1: in1, Out: out, fn: fn}, nil
}

// NewPositionalBinary constructs a positional binary operator (FIRSTI,
// FIRSTJ, SECONDI, SECONDJ and similar): it reads the multiply's (i, k, j)
// index triple and ignores A/B's values entirely.
func NewPositionalBinary(name string, out *dtype.Type, posFn func(i, k, j uint64) any) (*Binary, error) {
	if posFn == nil {
		return nil, ErrNilFunc
	}
	if out == nil {
		return nil, ErrNilType
	}

	return &Binary{Name: name, Out: out, Positional: true, posFn: posFn}, nil
}

// Apply evaluates a non-positional binary operator.
func (b *Binary) Apply(x, y any) any {
	if b.IgnoreDup {
		panic(ErrIgnoreDupMisuse)
	}
	if b.Positional {
		panic(ErrPositionalMisuse)
	}

	return b.fn(x, y)
}

// ApplyPositional evaluates a positional binary operator from the
// multiply's (i, k, j) index triple.
func (b *Binary) ApplyPositional(i, k, j uint64) any {
	if !b.Positional {
		panic(ErrPositionalMisuse)
	}

	return b.posFn(i, k, j)
}

// IndexUnary is a function object z=f(x,i,j,y): apply reads the entry's
// value x, its coordinates, and a bound scalar y. Select (spec §4.8) uses
// index-unary operators that return bool.
type IndexUnary struct {
	Name               string
	InX, InY, Out      *dtype.Type
	Positional         bool

	fn func(x any, i, j uint64, y any) any
}

// NewIndexUnary constructs an index-unary operator. Positional index-unary
// operators (e.g. ROWINDEX, COLINDEX) simply ignore x and y in fn; they are
// not split into a second call path because, unlike the multiply hot loop,
// select/apply over index-unary ops is not performance-critical enough in
// this engine to warrant a value-free variant.
func NewIndexUnary(name string, inX, inY, out *dtype.Type, positional bool, fn func(x any, i, j uint64, y any) any) (*IndexUnary, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if out == nil {
		return nil, ErrNilType
	}

	return &IndexUnary{Name: name, InX: inX, InY: inY, Out: out, Positional: positional, fn: fn}, nil
}

// Apply evaluates the operator.
func (iu *IndexUnary) Apply(x any, i, j uint64, y any) any {
	return iu.fn(x, i, j, y)
}
