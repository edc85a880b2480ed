package exec

import (
	"github.com/katalvlaran/graphblas/container"
	"github.com/katalvlaran/graphblas/descriptor"
)

// isTruthy reports whether a value mask entry's stored value counts as
// "true" for a valued (non-structural) mask (spec §4.5, glossary "Mask
// (structural vs valued)"). BOOL entries use their literal value; every
// other built-in numeric type follows the conventional "nonzero is true"
// rule any GraphBLAS-style valued mask needs. A UDT or unrecognized Go type
// is treated as always-truthy when present, since this package has no
// principled notion of "zero" for an opaque user type.
func isTruthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case complex64:
		return x != 0
	case complex128:
		return x != 0
	default:
		return true
	}
}

// maskAllows evaluates the mask predicate at (i,j) per the descriptor's
// MaskMode (spec §4.5). A nil mask means "mask is all-true" regardless of
// complement/structure flags (spec: "Absence of M means mask is all-true").
func maskAllows(mask *container.Matrix, mode descriptor.MaskMode, i, j uint64) (bool, error) {
	if mask == nil {
		return true, nil
	}

	v, has, err := mask.ExtractElement(i, j)
	if err != nil {
		return false, err
	}

	structural := mode == descriptor.MaskStructure || mode == descriptor.MaskComplementStructure
	complement := mode == descriptor.MaskComplement || mode == descriptor.MaskComplementStructure

	var allow bool
	if structural {
		allow = has
	} else {
		allow = has && isTruthy(v)
	}
	if complement {
		allow = !allow
	}

	return allow, nil
}
