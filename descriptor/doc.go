// Package descriptor implements the Descriptor settings record (spec §6):
// a per-call set of optional switches that modify how an operation treats
// its output, its mask, its inputs, which matrix-multiply kernel it prefers,
// when it sorts deferred work, how it compresses serialized blobs, and how
// much it trusts imported arrays.
//
// Every field defaults to "do nothing" — calling an operation with the
// zero-value Descriptor (Default) reproduces the operation's base semantics. The
// functional-options constructors (WithX) only ever change one field each,
// following the same pattern used throughout this module for configuration
// objects.
package descriptor
