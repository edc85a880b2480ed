// Package gbop implements the operator object system (spec §4.1): unary
// z=f(x), binary z=f(x,y), and index-unary z=f(x,i,j,y) function objects,
// each carrying input/output dtype.Type handles and a callable body.
//
// A distinguished positional family ignores values entirely and reads only
// the (row, col) indices; positional operators carry an implicit integer
// output type and are statically forbidden as monoid operators (see
// package monoid). Kernels check the Positional flag once per operator and
// dispatch to a value-free path (spec §4.6 "positional multiplier
// specialization").
package gbop
