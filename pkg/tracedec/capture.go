package tracedec

import (
	"github.com/eunmann/parquet-lens/pkg/thriftschema"
)

// Range is an absolute half-open byte range [start, end) in the source file.
type Range [2]int64

// Start returns the first byte of the range.
func (r Range) Start() int64 { return r[0] }

// End returns the byte one past the last byte of the range.
func (r Range) End() int64 { return r[1] }

// Len returns the range length in bytes.
func (r Range) Len() int64 { return r[1] - r[0] }

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r[0] <= other[0] && other[1] <= r[1]
}

// Capture records where one decoded construct came from. Struct and list
// captures own their members as Children, built bottom-up during the decode
// walk: a parent is finalized only after all of its children are.
type Capture struct {
	FieldID int16
	Name    string
	Wire    byte

	// Type and the schema-derived attributes are nil for fields whose ID is
	// not in the active schema.
	Type     *thriftschema.TypeDesc
	Required bool
	Enum     *thriftschema.EnumTable
	// Struct is the resolved schema of a struct-valued capture, kept so the
	// segment builder can enumerate fields absent from the wire.
	Struct *thriftschema.StructSchema

	// HeaderRange covers the field header bytes; for constructs without a
	// header (struct roots, container elements) it is empty, anchored at the
	// value start.
	HeaderRange Range
	ValueRange  Range

	// Value holds the decoded scalar for primitive captures: bool, int64,
	// float64, or []byte. Container captures leave it nil.
	Value any

	// ListSize is the declared element count of a list, set, or map capture.
	ListSize int
	// Index is the position of a container element, -1 elsewhere.
	Index int

	Children []*Capture

	// Err is the decode error that terminated this subtree, if any. Children
	// committed before the failure remain valid.
	Err error
}

// Total returns the byte range spanning the header and value.
func (c *Capture) Total() Range {
	return Range{c.HeaderRange[0], c.ValueRange[1]}
}

// Child returns the first child capture with the given field name, or nil.
func (c *Capture) Child(name string) *Capture {
	if c == nil {
		return nil
	}
	for _, ch := range c.Children {
		if ch.Name == name {
			return ch
		}
	}
	return nil
}

// Int returns the value of the named integer child field.
func (c *Capture) Int(name string) (int64, bool) {
	ch := c.Child(name)
	if ch == nil {
		return 0, false
	}
	v, ok := ch.Value.(int64)
	return v, ok
}

// Str returns the value of the named string child field.
func (c *Capture) Str(name string) (string, bool) {
	ch := c.Child(name)
	if ch == nil {
		return "", false
	}
	b, ok := ch.Value.([]byte)
	if !ok {
		return "", false
	}
	return string(b), true
}

// Elements returns the element captures of a list child field.
func (c *Capture) Elements(name string) []*Capture {
	ch := c.Child(name)
	if ch == nil {
		return nil
	}
	return ch.Children
}
