// Package thriftwire reads the Thrift compact protocol primitives that the
// Parquet footer and page headers are encoded with.
//
// The Reader is a forward-only cursor over an in-memory byte slice. It has no
// state besides the cursor position, which is always queryable so that callers
// can attribute byte ranges to the values they decode.
package thriftwire

import (
	"encoding/binary"
	"math"
)

// Wire type nibbles of the compact protocol. The low nibble of every field
// header byte carries one of these values.
const (
	TypeStop   byte = 0
	TypeTrue   byte = 1
	TypeFalse  byte = 2
	TypeI8     byte = 3
	TypeI16    byte = 4
	TypeI32    byte = 5
	TypeI64    byte = 6
	TypeDouble byte = 7
	TypeBinary byte = 8
	TypeList   byte = 9
	TypeSet    byte = 10
	TypeMap    byte = 11
	TypeStruct byte = 12
)

// TypeName returns the canonical name of a wire type nibble.
func TypeName(typ byte) string {
	switch typ {
	case TypeStop:
		return "stop"
	case TypeTrue, TypeFalse:
		return "bool"
	case TypeI8:
		return "i8"
	case TypeI16:
		return "i16"
	case TypeI32:
		return "i32"
	case TypeI64:
		return "i64"
	case TypeDouble:
		return "double"
	case TypeBinary:
		return "string"
	case TypeList:
		return "list"
	case TypeSet:
		return "set"
	case TypeMap:
		return "map"
	case TypeStruct:
		return "struct"
	}
	return "unknown"
}

// IsValidType reports whether typ is a wire type nibble this package defines.
// TypeStop is not a value type.
func IsValidType(typ byte) bool {
	return typ >= TypeTrue && typ <= TypeStruct
}

// Reader decodes compact protocol primitives from a byte slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current cursor position in bytes from the start of the
// slice. Every byte range recorded by the decode engine is derived from it.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total length of the underlying slice.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Slice returns the bytes in [start, end) of the underlying data without
// moving the cursor.
func (r *Reader) Slice(start, end int) ([]byte, error) {
	if start < 0 || end > len(r.data) || start > end {
		return nil, ErrTruncated
	}
	return r.data[start:end], nil
}

// ReadByte reads one raw byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrTruncated
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadUvarint reads an unsigned LEB128 varint.
func (r *Reader) ReadUvarint() (uint64, error) {
	var x uint64
	var s uint
	for i := 0; ; i++ {
		if r.pos >= len(r.data) {
			return 0, ErrTruncated
		}
		v := r.data[r.pos]
		r.pos++
		if v < 0x80 {
			if i >= binary.MaxVarintLen64 || i == binary.MaxVarintLen64-1 && v > 1 {
				return 0, ErrMalformedVarint
			}
			return x | uint64(v)<<s, nil
		}
		if i >= binary.MaxVarintLen64-1 {
			return 0, ErrMalformedVarint
		}
		x |= uint64(v&0x7f) << s
		s += 7
	}
}

// ReadZigZag64 reads a zig-zag encoded signed varint.
func (r *Reader) ReadZigZag64() (int64, error) {
	ux, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}
	x := int64(ux >> 1)
	if ux&1 != 0 {
		x = ^x
	}
	return x, nil
}

// ReadZigZag32 reads a zig-zag encoded signed varint and truncates it to 32
// bits, matching how the compact protocol carries i16 and i32 values.
func (r *Reader) ReadZigZag32() (int32, error) {
	v, err := r.ReadZigZag64()
	return int32(v), err
}

// ReadBool interprets a wire type nibble as a boolean value. In the compact
// protocol a bool field carries its value in the type nibble itself.
func (r *Reader) ReadBool(typ byte) (bool, error) {
	switch typ {
	case TypeTrue:
		return true, nil
	case TypeFalse:
		return false, nil
	}
	return false, &UnknownTypeError{Type: typ}
}

// ReadBoolByte reads a boolean encoded as a standalone byte, as list and map
// elements are.
func (r *Reader) ReadBoolByte() (bool, error) {
	v, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	// Writers disagree on the false byte: 0 and the TypeFalse nibble are both
	// in the wild.
	return v != 0 && v != TypeFalse, nil
}

// ReadDouble reads a fixed 8-byte little-endian float64.
func (r *Reader) ReadDouble() (float64, error) {
	if r.pos+8 > len(r.data) {
		r.pos = len(r.data)
		return 0, ErrTruncated
	}
	bits := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

// ReadBinary reads a varint length prefix followed by that many raw bytes.
// The returned slice aliases the underlying data.
func (r *Reader) ReadBinary() ([]byte, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if n > uint64(len(r.data)-r.pos) {
		r.pos = len(r.data)
		return nil, ErrTruncated
	}
	if n == 0 {
		return nil, nil
	}
	b := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

// FieldHeader is the decoded form of one compact field header.
type FieldHeader struct {
	ID   int16
	Type byte
	Stop bool
}

// ReadFieldHeader reads a field header. The header byte carries the wire type
// in its low nibble and, in its high nibble, either a delta from the previous
// field ID at the same nesting level or zero, which signals that the ID
// follows as an explicit zig-zag varint. A TypeStop nibble terminates the
// enclosing struct.
func (r *Reader) ReadFieldHeader(lastID int16) (FieldHeader, error) {
	v, err := r.ReadByte()
	if err != nil {
		return FieldHeader{}, err
	}

	typ := v & 0x0F
	if typ == TypeStop {
		return FieldHeader{Stop: true}, nil
	}
	if !IsValidType(typ) {
		return FieldHeader{}, &UnknownTypeError{Type: typ}
	}

	h := FieldHeader{Type: typ}
	if delta := v >> 4; delta != 0 {
		h.ID = lastID + int16(delta)
	} else {
		id, err := r.ReadZigZag64()
		if err != nil {
			return FieldHeader{}, err
		}
		h.ID = int16(id)
	}
	return h, nil
}

// ListHeader is the decoded form of a list or set header.
type ListHeader struct {
	Size int
	Type byte
}

// ReadListHeader reads a list or set header: element type in the low nibble,
// size in the high nibble with 0xF signalling a varint-encoded size.
func (r *Reader) ReadListHeader() (ListHeader, error) {
	v, err := r.ReadByte()
	if err != nil {
		return ListHeader{}, err
	}

	h := ListHeader{Type: v & 0x0F, Size: int(v >> 4)}
	if !IsValidType(h.Type) {
		return ListHeader{}, &UnknownTypeError{Type: h.Type}
	}
	if h.Size == 0x0F {
		n, err := r.ReadUvarint()
		if err != nil {
			return ListHeader{}, err
		}
		h.Size = int(n)
	}
	return h, nil
}

// MapHeader is the decoded form of a map header.
type MapHeader struct {
	Size      int
	KeyType   byte
	ValueType byte
}

// ReadMapHeader reads a map header: varint size followed, when the map is not
// empty, by a byte carrying the key type in the high nibble and the value
// type in the low nibble.
func (r *Reader) ReadMapHeader() (MapHeader, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return MapHeader{}, err
	}
	h := MapHeader{Size: int(n)}
	if h.Size == 0 {
		return h, nil
	}

	kv, err := r.ReadByte()
	if err != nil {
		return MapHeader{}, err
	}
	h.KeyType = kv >> 4
	h.ValueType = kv & 0x0F
	if !IsValidType(h.KeyType) {
		return MapHeader{}, &UnknownTypeError{Type: h.KeyType}
	}
	if !IsValidType(h.ValueType) {
		return MapHeader{}, &UnknownTypeError{Type: h.ValueType}
	}
	return h, nil
}
