// Package monoid implements Monoid and Semiring construction (spec §4.2).
//
// A Monoid restricts a binary operator to T×T→T and adds an identity value
// plus an optional terminal value that lets a reduction exit early once seen
// (spec §4.2, §4.8 terminal short-circuit). A Semiring pairs an additive
// Monoid with a multiplicative binary operator whose output type equals the
// monoid's type; it defines both operations of a generalized matrix product
// (spec glossary).
package monoid
