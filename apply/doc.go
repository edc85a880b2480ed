// Package apply implements the apply/select/reduce family (spec §4.8):
// entrywise unary/bound-binary/index-unary transforms, index-unary boolean
// filtering, and monoid folds to a vector or scalar. Every writer in this
// package builds its transformed content as a fresh matrix and hands it to
// exec.Accumulate for the masked-accumulate write, matching mxm and ewise's
// division of labor between "compute T" and "write T into C".
package apply
