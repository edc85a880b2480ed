package monoid

import (
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/gbop"
)

// Monoid is a binary operator restricted to T×T→T, plus an identity value
// and an optional terminal value (spec §4.2).
type Monoid struct {
	Type     *dtype.Type
	Op       *gbop.Binary
	Identity any

	hasTerminal bool
	terminal    any
}

// New validates and constructs a Monoid.
// Stage 1 (Validate): op non-nil, non-positional, and T×T→T for a single T.
// Stage 2 (Validate): identity's declared type matches T (spec §4.2:
// "identity must have type T").
// Complexity: O(1).
func New(op *gbop.Binary, identity any) (*Monoid, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if op.Positional {
		return nil, ErrPositionalOperator
	}
	if op.In0 != op.In1 || op.In0 != op.Out {
		return nil, ErrNotEndoFunction
	}
	if identity != nil && !dtype.GoTypeMatches(op.Out.Code, identity) {
		return nil, ErrIdentityTypeMismatch
	}

	return &Monoid{Type: op.Out, Op: op, Identity: identity}, nil
}

// WithTerminal attaches a terminal value z such that op(z, x) == z for all
// x, enabling early exit during reductions (spec glossary). Returns a new
// Monoid value; the receiver is not mutated, matching the functional-update
// discipline used throughout this module's construction APIs.
func (m Monoid) WithTerminal(terminal any) Monoid {
	m.hasTerminal = true
	m.terminal = terminal

	return m
}

// Terminal returns the monoid's terminal value and whether one was set.
func (m Monoid) Terminal() (any, bool) {
	return m.terminal, m.hasTerminal
}

// operator exposes the underlying binary operator, degrading a monoid op
// to a plain binary op.
func (m Monoid) operator() *gbop.Binary { return m.Op }

// Semiring pairs an additive Monoid with a multiplicative binary operator
// whose output type equals the monoid's type (spec §4.2).
type Semiring struct {
	Add *Monoid
	Mul *gbop.Binary
}

// NewSemiring validates and constructs a Semiring.
// Complexity: O(1).
func NewSemiring(add *Monoid, mul *gbop.Binary) (*Semiring, error) {
	if add == nil {
		return nil, ErrNilOperator
	}
	if mul == nil {
		return nil, ErrNilOperator
	}
	if mul.Out != add.Type {
		return nil, ErrSemiringTypeMismatch
	}

	return &Semiring{Add: add, Mul: mul}, nil
}

// multiplication exposes the multiplicative operator, mirroring Monoid's
// unexported operator() accessor.
func (s *Semiring) multiplication() *gbop.Binary { return s.Mul }
