// Package ewise implements the element-wise family (spec §4.7): eWiseAdd
// (set union), eWiseMult (set intersection), and eWiseUnion (always-apply
// union with per-side defaults). Each builds a raw result T and hands it to
// exec.Accumulate for the masked-accumulate write into C.
package ewise
