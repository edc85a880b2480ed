// Package status defines the engine's result-code taxonomy and the Error
// type that carries a code plus a human-readable message (spec §6 "Error
// codes", §7 "Error Handling Design").
//
// Every exported entry point elsewhere in this module returns a plain Go
// error; callers that need the underlying code use errors.As to recover an
// *Error and inspect its Code. Two codes are informational rather than
// failures — NoValue and Exhausted — and are returned as sentinel errors
// (via errors.Is) so a caller can check them without a type assertion.
package status
