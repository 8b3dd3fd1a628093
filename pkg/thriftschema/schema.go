// Package thriftschema models the static schema that drives decoding: the
// wire format carries only numeric field IDs, so field names, nested struct
// types, and enum symbol tables all come from tables registered here.
package thriftschema

import "fmt"

// Kind is the schema-level type of a field, mirroring the compact protocol
// value types.
type Kind int

const (
	KindBool Kind = iota
	KindByte
	KindI16
	KindI32
	KindI64
	KindDouble
	KindBinary
	KindList
	KindMap
	KindStruct
)

// TypeDesc is a tagged, immutable descriptor of a field type. Elem, Key, and
// Struct are populated only for the container kinds.
type TypeDesc struct {
	Kind   Kind
	Elem   *TypeDesc
	Key    *TypeDesc
	Struct *StructSchema
}

// Primitive descriptors shared by every field table.
var (
	Bool   = &TypeDesc{Kind: KindBool}
	Byte   = &TypeDesc{Kind: KindByte}
	I16    = &TypeDesc{Kind: KindI16}
	I32    = &TypeDesc{Kind: KindI32}
	I64    = &TypeDesc{Kind: KindI64}
	Double = &TypeDesc{Kind: KindDouble}
	Binary = &TypeDesc{Kind: KindBinary}
)

// ListOf returns a list descriptor with the given element type.
func ListOf(elem *TypeDesc) *TypeDesc {
	return &TypeDesc{Kind: KindList, Elem: elem}
}

// MapOf returns a map descriptor with the given key and value types.
func MapOf(key, value *TypeDesc) *TypeDesc {
	return &TypeDesc{Kind: KindMap, Key: key, Elem: value}
}

// StructOf returns a struct descriptor referencing the given schema.
func StructOf(s *StructSchema) *TypeDesc {
	return &TypeDesc{Kind: KindStruct, Struct: s}
}

// Name renders the canonical human-readable name of the type: primitives by
// wire name, lists as list<ElementName>, maps as map<Key,Value>, and structs
// by their declaring type name.
func (t *TypeDesc) Name() string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindByte:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindDouble:
		return "double"
	case KindBinary:
		return "string"
	case KindList:
		return fmt.Sprintf("list<%s>", t.Elem.Name())
	case KindMap:
		return fmt.Sprintf("map<%s,%s>", t.Key.Name(), t.Elem.Name())
	case KindStruct:
		if t.Struct == nil {
			return "struct"
		}
		return t.Struct.Name
	}
	return "unknown"
}

// FieldDef describes one field of a structured type.
type FieldDef struct {
	ID       int16
	Name     string
	Type     *TypeDesc
	Required bool
	// Enum references the symbol table for integer fields that are
	// enumerations. The wire schema cannot distinguish them from plain
	// integers, so the reference is authored here.
	Enum *EnumTable
}

// StructSchema is the ordered field table of one structured type. Field IDs
// are sparse and small, so lookup is a linear scan.
type StructSchema struct {
	Name   string
	Fields []FieldDef
}

// FieldByID returns the definition for a field ID, or nil when the ID is not
// part of the schema (for example a field retired from the format).
func (s *StructSchema) FieldByID(id int16) *FieldDef {
	if s == nil {
		return nil
	}
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i]
		}
	}
	return nil
}

// EnumTable maps integer codes to symbolic names for one enumeration.
type EnumTable struct {
	Name  string
	Names map[int64]string
}

// Lookup returns the symbolic name for a code and whether the code is mapped.
func (e *EnumTable) Lookup(code int64) (string, bool) {
	if e == nil {
		return "", false
	}
	name, ok := e.Names[code]
	return name, ok
}

// Symbol returns the symbolic name for a code, rendering unmapped codes as
// UNKNOWN(<code>). An unmapped code is never an error: newer writers emit
// codes older tables do not know.
func (e *EnumTable) Symbol(code int64) string {
	if name, ok := e.Lookup(code); ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", code)
}
