package container

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/katalvlaran/graphblas/descriptor"
	"github.com/katalvlaran/graphblas/dtype"
	"github.com/katalvlaran/graphblas/status"
)

const blobFormatVersion = 1

// gob requires every concrete type that will cross an interface{} boundary
// to be registered up front; these are the Go types dtype.Zero/GoTypeMatches
// recognize for the built-in scalar codes.
func init() {
	gob.Register(bool(false))
	gob.Register(int8(0))
	gob.Register(int16(0))
	gob.Register(int32(0))
	gob.Register(int64(0))
	gob.Register(uint8(0))
	gob.Register(uint16(0))
	gob.Register(uint32(0))
	gob.Register(uint64(0))
	gob.Register(float32(0))
	gob.Register(float64(0))
	gob.Register(complex64(0))
	gob.Register(complex128(0))
}

// blobHeader mirrors spec §6 "Serialization blob": "its header encodes
// format version, type code (plus type name for UDT), dimensions, form,
// iso flag, and compression method".
type blobHeader struct {
	Version     uint32
	TypeCode    int
	TypeName    string
	NRows       uint64
	NCols       uint64
	Orientation int
	Form        int
	Iso         bool
	Compression int
}

// blobBody carries the interior arrays needed to reconstruct content,
// encoded with encoding/gob (the standard library's self-describing binary
// codec — no third-party serialization format appears anywhere in the
// example corpus, so gob is this module's one stdlib-only concession here,
// alongside compress/flate for the body compression itself).
type blobBody struct {
	VecIDs   []uint64
	Ptr      []uint64
	InnerIdx []uint64
	Values   []any
	Present  []bool
	Dense    []any
}

// Serialize produces a self-describing byte blob (spec §6). Materializes
// first: a blob always describes a fully resolved matrix, never one with
// pending/zombie/jumbled state.
func (m *Matrix) Serialize(d descriptor.Descriptor) ([]byte, error) {
	m.mu.Lock()
	if err := m.materializeLocked(); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	method := d.Compression.Method
	if method != descriptor.CompressionNone && method != descriptor.CompressionFlate {
		return nil, status.New(status.NotImplemented, "container.Serialize",
			fmt.Sprintf("compression backend %s has no Go implementation in this engine", method))
	}

	header := blobHeader{
		Version:     blobFormatVersion,
		TypeCode:    int(m.typ.Code),
		TypeName:    m.typ.Name,
		NRows:       m.nrows,
		NCols:       m.ncols,
		Orientation: int(m.orientation),
		Form:        int(m.form),
		Iso:         m.iso,
		Compression: int(method),
	}
	body := blobBody{
		VecIDs:   m.vecIDs,
		Ptr:      m.ptr,
		InnerIdx: m.innerIdx,
		Values:   m.values,
		Present:  m.present,
		Dense:    m.dense,
	}

	var bodyBuf bytes.Buffer
	if err := gob.NewEncoder(&bodyBuf).Encode(body); err != nil {
		return nil, status.Wrap(status.InvalidObject, "container.Serialize", err)
	}

	bodyBytes := bodyBuf.Bytes()
	if method == descriptor.CompressionFlate {
		var compressed bytes.Buffer
		w, err := flate.NewWriter(&compressed, flate.DefaultCompression)
		if err != nil {
			return nil, status.Wrap(status.Panic, "container.Serialize", err)
		}
		if _, err := w.Write(bodyBytes); err != nil {
			return nil, status.Wrap(status.Panic, "container.Serialize", err)
		}
		if err := w.Close(); err != nil {
			return nil, status.Wrap(status.Panic, "container.Serialize", err)
		}
		bodyBytes = compressed.Bytes()
	}

	var out bytes.Buffer
	if err := gob.NewEncoder(&out).Encode(header); err != nil {
		return nil, status.Wrap(status.InvalidObject, "container.Serialize", err)
	}

	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(out.Len()))

	full := make([]byte, 0, 4+out.Len()+len(bodyBytes))
	full = append(full, lenPrefix[:]...)
	full = append(full, out.Bytes()...)
	full = append(full, bodyBytes...)

	return full, nil
}

// Deserialize rebuilds a Matrix from a blob produced by Serialize. typeHint
// must be supplied for UDT blobs (spec §6: "a UDT blob requires the caller
// to supply a matching type handle"); it is ignored for built-in types,
// where the blob's own TypeCode is authoritative.
//
// Compatibility contract (spec §6): "any blob produced by version N can be
// read by version >= N" — this engine is version 1 and has no older format
// to accept, so Deserialize only ever checks Version <= blobFormatVersion.
func Deserialize(blob []byte, typeHint *dtype.Type) (*Matrix, error) {
	if len(blob) < 4 {
		return nil, status.New(status.InvalidValue, "container.Deserialize", "blob too short")
	}

	headerLen := binary.BigEndian.Uint32(blob[:4])
	rest := blob[4:]
	if uint32(len(rest)) < headerLen {
		return nil, status.New(status.InvalidValue, "container.Deserialize", "truncated header")
	}

	var header blobHeader
	if err := gob.NewDecoder(bytes.NewReader(rest[:headerLen])).Decode(&header); err != nil {
		return nil, status.Wrap(status.InvalidObject, "container.Deserialize", err)
	}
	if header.Version > blobFormatVersion {
		return nil, status.New(status.NotImplemented, "container.Deserialize", "blob version newer than this engine")
	}

	bodyBytes := rest[headerLen:]
	if descriptor.CompressionMethod(header.Compression) == descriptor.CompressionFlate {
		r := flate.NewReader(bytes.NewReader(bodyBytes))
		defer r.Close()
		decompressed, err := io.ReadAll(r)
		if err != nil {
			return nil, status.Wrap(status.InvalidObject, "container.Deserialize", err)
		}
		bodyBytes = decompressed
	}

	var body blobBody
	if err := gob.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&body); err != nil {
		return nil, status.Wrap(status.InvalidObject, "container.Deserialize", err)
	}

	typ, err := resolveBlobType(header, typeHint)
	if err != nil {
		return nil, err
	}

	return buildFromBlob(typ, header, body)
}

func resolveBlobType(header blobHeader, typeHint *dtype.Type) (*dtype.Type, error) {
	if header.TypeCode < 1000 {
		return dtype.Builtin(dtype.Code(header.TypeCode))
	}
	if typeHint == nil {
		return nil, status.New(status.InvalidValue, "container.Deserialize", "UDT blob requires a type hint")
	}
	if typeHint.Name != header.TypeName {
		return nil, status.New(status.DomainMismatch, "container.Deserialize", "type hint does not match blob's UDT name")
	}

	return typeHint, nil
}

func buildFromBlob(typ *dtype.Type, header blobHeader, body blobBody) (*Matrix, error) {
	m := &Matrix{
		nrows:           header.NRows,
		ncols:           header.NCols,
		typ:             typ,
		orientation:     Orientation(header.Orientation),
		form:            Form(header.Form),
		iso:             header.Iso,
		vecIDs:          body.VecIDs,
		ptr:             body.Ptr,
		innerIdx:        body.InnerIdx,
		values:          body.Values,
		present:         body.Present,
		dense:           body.Dense,
		sparsityControl: AllowAllForms,
		hyperSwitch:      DefaultHyperSwitch,
		bitmapSwitch:     DefaultBitmapSwitch,
	}

	return m, nil
}
