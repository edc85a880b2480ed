package container

import (
	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/dtype"
)

// PackedFormat names one of the spec's six matrix formats (CSR, CSC,
// HyperCSR, HyperCSC, BitmapR, BitmapC) plus Full, shared by matrices and
// by n×1/1×n vectors (spec §6 "Pack/unpack surface").
type PackedFormat int

const (
	FormatCSR PackedFormat = iota
	FormatCSC
	FormatHyperCSR
	FormatHyperCSC
	FormatBitmapR
	FormatBitmapC
	FormatFull
)

func (f PackedFormat) orientation() Orientation {
	switch f {
	case FormatCSC, FormatHyperCSC, FormatBitmapC:
		return ColMajor
	default:
		return RowMajor
	}
}

func (f PackedFormat) form() Form {
	switch f {
	case FormatCSR, FormatCSC:
		return Sparse
	case FormatHyperCSR, FormatHyperCSC:
		return Hypersparse
	case FormatBitmapR, FormatBitmapC:
		return Bitmap
	default:
		return Full
	}
}

// PackedSparse is the raw-array payload for CSR/CSC/HyperCSR/HyperCSC: Ptr,
// InnerIdx, Values in CSR-style lockstep (spec §3 "Hypersparse"/"Sparse"),
// plus VecIDs for the two hyper variants.
type PackedSparse struct {
	VecIDs   []uint64 // only for HyperCSR/HyperCSC
	Ptr      []uint64
	InnerIdx []uint64
	Values   []any
	Iso      bool
}

// PackedBitmap is the raw-array payload for BitmapR/BitmapC.
type PackedBitmap struct {
	Present []bool
	Values  []any
}

// PackedFull is the raw-array payload for Full.
type PackedFull struct {
	Values []any
}

// PackSparse builds a Matrix directly from caller-owned CSR/CSC/HyperCSR/
// HyperCSC arrays (spec §6: "pack = caller gives arrays"). Zero-copy: the
// slices are adopted as-is, not copied, matching the spec's ownership-
// transfer contract (spec §3 "Ownership"). trust is the same
// descriptor.ImportTrust a caller sets on its Descriptor's Trust field
// (spec §6 "Import trust"): descriptor.ImportSecure validates Ptr's
// monotonicity before adoption, descriptor.ImportFast skips that check.
func PackSparse(typ *dtype.Type, nrows, ncols uint64, format PackedFormat, data PackedSparse, trust descriptor.ImportTrust) (*Matrix, error) {
	if typ == nil {
		return nil, ErrNilType
	}
	if len(data.InnerIdx) != len(data.Values) && !data.Iso {
		return nil, ErrBadPackedArrays
	}
	if data.Iso && len(data.Values) != 1 {
		return nil, ErrBadPackedArrays
	}

	f := format.form()
	outer := nrows
	if format.orientation() == ColMajor {
		outer = ncols
	}

	if f == Hypersparse {
		if len(data.Ptr) != len(data.VecIDs)+1 {
			return nil, ErrBadPackedArrays
		}
	} else if uint64(len(data.Ptr)) != outer+1 {
		return nil, ErrBadPackedArrays
	}

	if trust == descriptor.ImportSecure {
		if err := validatePtrMonotone(data.Ptr); err != nil {
			return nil, err
		}
	}

	m := &Matrix{
		nrows: nrows, ncols: ncols, typ: typ,
		orientation: format.orientation(), form: f, iso: data.Iso,
		vecIDs: data.VecIDs, ptr: data.Ptr, innerIdx: data.InnerIdx, values: data.Values,
		sparsityControl: AllowAllForms, hyperSwitch: DefaultHyperSwitch, bitmapSwitch: DefaultBitmapSwitch,
	}

	return m, nil
}

// PackBitmap builds a Matrix directly from caller-owned BitmapR/BitmapC
// arrays.
func PackBitmap(typ *dtype.Type, nrows, ncols uint64, format PackedFormat, data PackedBitmap) (*Matrix, error) {
	if typ == nil {
		return nil, ErrNilType
	}
	if len(data.Present) != len(data.Values) || uint64(len(data.Present)) != nrows*ncols {
		return nil, ErrBadPackedArrays
	}

	m := &Matrix{
		nrows: nrows, ncols: ncols, typ: typ,
		orientation: format.orientation(), form: Bitmap,
		present: data.Present, dense: data.Values,
		sparsityControl: AllowAllForms, hyperSwitch: DefaultHyperSwitch, bitmapSwitch: DefaultBitmapSwitch,
	}

	return m, nil
}

// PackFull builds a Matrix directly from a caller-owned dense values array.
func PackFull(typ *dtype.Type, nrows, ncols uint64, data PackedFull) (*Matrix, error) {
	if typ == nil {
		return nil, ErrNilType
	}
	if uint64(len(data.Values)) != nrows*ncols {
		return nil, ErrBadPackedArrays
	}

	m := &Matrix{
		nrows: nrows, ncols: ncols, typ: typ,
		form: Full, dense: data.Values,
		sparsityControl: AllowAllForms, hyperSwitch: DefaultHyperSwitch, bitmapSwitch: DefaultBitmapSwitch,
	}

	return m, nil
}

func validatePtrMonotone(ptr []uint64) error {
	for k := 1; k < len(ptr); k++ {
		if ptr[k] < ptr[k-1] {
			return ErrBadPackedArrays
		}
	}

	return nil
}

// UnpackSparse materializes m (if needed) then transfers ownership of its
// CSR/CSC/HyperCSR/HyperCSC arrays to the caller; m is left with no content
// arrays (spec §3 "Ownership": "after a successful unpack the matrix still
// exists but holds no content arrays").
func (m *Matrix) UnpackSparse() (PackedSparse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.materializeLocked(); err != nil {
		return PackedSparse{}, err
	}
	if m.form == Bitmap || m.form == Full {
		return PackedSparse{}, ErrUnsupportedFormat
	}

	out := PackedSparse{VecIDs: m.vecIDs, Ptr: m.ptr, InnerIdx: m.innerIdx, Values: m.values, Iso: m.iso}
	m.vecIDs, m.ptr, m.innerIdx, m.values = nil, nil, nil, nil

	return out, nil
}

// UnpackBitmap transfers ownership of m's Bitmap arrays to the caller.
func (m *Matrix) UnpackBitmap() (PackedBitmap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.materializeLocked(); err != nil {
		return PackedBitmap{}, err
	}
	if m.form != Bitmap {
		return PackedBitmap{}, ErrUnsupportedFormat
	}

	out := PackedBitmap{Present: m.present, Values: m.dense}
	m.present, m.dense = nil, nil

	return out, nil
}

// UnpackFull transfers ownership of m's Full dense array to the caller.
func (m *Matrix) UnpackFull() (PackedFull, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.materializeLocked(); err != nil {
		return PackedFull{}, err
	}
	if m.form != Full {
		return PackedFull{}, ErrUnsupportedFormat
	}

	out := PackedFull{Values: m.dense}
	m.dense = nil

	return out, nil
}
