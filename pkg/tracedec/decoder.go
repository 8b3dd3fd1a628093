// Package tracedec decodes compact-protocol structures while recording the
// byte range every field, struct, list, and map was decoded from.
//
// The decoder is a depth-first walk driven by the input bytes and the schema
// tables: the wire format carries only numeric field IDs, so the active
// schema is swapped on every struct boundary to resolve names and types.
// A Decoder carries mutable per-decode state and must not be shared across
// concurrent decodes.
package tracedec

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eunmann/parquet-lens/pkg/thriftschema"
	"github.com/eunmann/parquet-lens/pkg/thriftwire"
)

// ErrMaxDepth indicates nesting beyond the configured ceiling. The input is
// untrusted and the format permits arbitrarily deep nesting, so the walk is
// depth-bounded.
var ErrMaxDepth = errors.New("max nesting depth exceeded")

// DefaultMaxDepth bounds schema recursion on adversarial input.
const DefaultMaxDepth = 64

// Config carries the explicit decode options. Engine behavior is controlled
// only through it, never through globals.
type Config struct {
	// Debug enables per-event decode tracing on Logger.
	Debug  bool
	Logger zerolog.Logger

	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Decoder walks one buffer once. Base is added to every recorded offset so
// ranges are absolute within the containing file rather than relative to the
// slice being decoded.
type Decoder struct {
	cfg      Config
	r        *thriftwire.Reader
	base     int64
	maxDepth int
	depth    int
}

// NewDecoder returns a Decoder over data. base is the absolute file offset of
// data[0].
func NewDecoder(data []byte, base int64, cfg Config) *Decoder {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Decoder{
		cfg:      cfg,
		r:        thriftwire.NewReader(data),
		base:     base,
		maxDepth: maxDepth,
	}
}

// Pos returns the absolute position of the cursor.
func (d *Decoder) Pos() int64 {
	return d.base + int64(d.r.Pos())
}

// DecodeStruct decodes one struct of the given schema from the current
// position. On error the returned capture holds every field committed before
// the failure, so partial results are never lost.
func (d *Decoder) DecodeStruct(name string, schema *thriftschema.StructSchema) (*Capture, error) {
	start := d.Pos()
	c := &Capture{
		Name:        name,
		Wire:        thriftwire.TypeStruct,
		Struct:      schema,
		Index:       -1,
		HeaderRange: Range{start, start},
	}
	if schema != nil {
		c.Type = thriftschema.StructOf(schema)
	}
	err := d.decodeStructBody(c, schema)
	c.ValueRange = Range{start, d.Pos()}
	if err != nil {
		c.Err = err
		return c, err
	}
	return c, nil
}

// decodeStructBody reads field headers until the STOP marker, committing one
// child capture per field. The last-field-ID delta base is local to this
// struct, per the compact protocol's scope rules.
func (d *Decoder) decodeStructBody(c *Capture, schema *thriftschema.StructSchema) error {
	if d.depth >= d.maxDepth {
		return ErrMaxDepth
	}
	d.depth++
	defer func() { d.depth-- }()

	var lastID int16
	for {
		headerStart := d.Pos()
		h, err := d.r.ReadFieldHeader(lastID)
		if err != nil {
			return err
		}
		if h.Stop {
			return nil
		}
		lastID = h.ID

		child := &Capture{
			FieldID:     h.ID,
			Wire:        h.Type,
			Index:       -1,
			HeaderRange: Range{headerStart, d.Pos()},
		}

		def := schema.FieldByID(h.ID)
		if def != nil {
			child.Name = def.Name
			child.Type = def.Type
			child.Required = def.Required
			child.Enum = def.Enum
		} else {
			// Unknown or retired field: decode by the wire type alone.
			child.Name = fmt.Sprintf("field_%d", h.ID)
		}

		if d.cfg.Debug {
			d.cfg.Logger.Debug().
				Str("struct", c.Name).
				Str("field", child.Name).
				Int16("id", h.ID).
				Str("wire_type", thriftwire.TypeName(h.Type)).
				Int64("offset", headerStart).
				Msg("field begin")
		}

		valueStart := d.Pos()
		err = d.decodeValue(child, h.Type, fieldType(def, h.Type))
		child.ValueRange = Range{valueStart, d.Pos()}

		// Commit even a failed child: its committed descendants are valid
		// and the partial state is wanted for diagnostics.
		c.Children = append(c.Children, child)
		if err != nil {
			child.Err = err
			return err
		}
	}
}

// fieldType returns the schema type for a field when it agrees with the wire,
// or nil to force schema-less decoding on a mismatch.
func fieldType(def *thriftschema.FieldDef, wire byte) *thriftschema.TypeDesc {
	if def == nil || def.Type == nil {
		return nil
	}
	if kindMatchesWire(def.Type.Kind, wire) {
		return def.Type
	}
	return nil
}

func kindMatchesWire(k thriftschema.Kind, wire byte) bool {
	switch wire {
	case thriftwire.TypeTrue, thriftwire.TypeFalse:
		return k == thriftschema.KindBool
	case thriftwire.TypeI8:
		return k == thriftschema.KindByte
	case thriftwire.TypeI16:
		return k == thriftschema.KindI16
	case thriftwire.TypeI32:
		return k == thriftschema.KindI32
	case thriftwire.TypeI64:
		return k == thriftschema.KindI64
	case thriftwire.TypeDouble:
		return k == thriftschema.KindDouble
	case thriftwire.TypeBinary:
		return k == thriftschema.KindBinary
	case thriftwire.TypeList, thriftwire.TypeSet:
		return k == thriftschema.KindList
	case thriftwire.TypeMap:
		return k == thriftschema.KindMap
	case thriftwire.TypeStruct:
		return k == thriftschema.KindStruct
	}
	return false
}

// decodeValue decodes one value of the given wire type into c. td is the
// schema type when known and wire-compatible, nil for schema-less decoding.
func (d *Decoder) decodeValue(c *Capture, wire byte, td *thriftschema.TypeDesc) error {
	switch wire {
	case thriftwire.TypeTrue, thriftwire.TypeFalse:
		v, err := d.r.ReadBool(wire)
		if err != nil {
			return err
		}
		c.Value = v
		return nil

	case thriftwire.TypeI8:
		v, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		c.Value = int64(int8(v))
		return nil

	case thriftwire.TypeI16, thriftwire.TypeI32, thriftwire.TypeI64:
		v, err := d.r.ReadZigZag64()
		if err != nil {
			return err
		}
		c.Value = v
		return nil

	case thriftwire.TypeDouble:
		v, err := d.r.ReadDouble()
		if err != nil {
			return err
		}
		c.Value = v
		return nil

	case thriftwire.TypeBinary:
		v, err := d.r.ReadBinary()
		if err != nil {
			return err
		}
		c.Value = v
		return nil

	case thriftwire.TypeList, thriftwire.TypeSet:
		return d.decodeList(c, td)

	case thriftwire.TypeMap:
		return d.decodeMap(c, td)

	case thriftwire.TypeStruct:
		var schema *thriftschema.StructSchema
		if td != nil {
			schema = td.Struct
		}
		c.Struct = schema
		return d.decodeStructBody(c, schema)
	}

	return &thriftwire.UnknownTypeError{Type: wire}
}

// decodeList decodes the elements of a list or set, capturing each element's
// exact byte range by recursing on it. When the declared element type is a
// struct, the element schema replaces the enclosing field's schema for the
// duration of each element.
func (d *Decoder) decodeList(c *Capture, td *thriftschema.TypeDesc) error {
	h, err := d.r.ReadListHeader()
	if err != nil {
		return err
	}
	c.ListSize = h.Size

	var elemTD *thriftschema.TypeDesc
	if td != nil && kindMatchesWire(td.Elem.Kind, h.Type) {
		elemTD = td.Elem
	}

	for i := 0; i < h.Size; i++ {
		elem := &Capture{
			Name:  "element",
			Wire:  h.Type,
			Type:  elemTD,
			Index: i,
			// Elements carry their enumeration from the list field itself:
			// the side table keys list-of-enum fields the same as scalars.
			Enum: c.Enum,
		}
		start := d.Pos()
		elem.HeaderRange = Range{start, start}

		var err error
		if h.Type == thriftwire.TypeTrue || h.Type == thriftwire.TypeFalse {
			// List elements encode bools as standalone bytes, unlike fields.
			var v bool
			v, err = d.r.ReadBoolByte()
			elem.Value = v
		} else {
			err = d.decodeValue(elem, h.Type, elemTD)
		}
		elem.ValueRange = Range{start, d.Pos()}
		c.Children = append(c.Children, elem)
		if err != nil {
			elem.Err = err
			return err
		}
	}
	return nil
}

// decodeMap decodes map entries as alternating key and value captures.
func (d *Decoder) decodeMap(c *Capture, td *thriftschema.TypeDesc) error {
	h, err := d.r.ReadMapHeader()
	if err != nil {
		return err
	}
	c.ListSize = h.Size

	var keyTD, valTD *thriftschema.TypeDesc
	if td != nil {
		if kindMatchesWire(td.Key.Kind, h.KeyType) {
			keyTD = td.Key
		}
		if kindMatchesWire(td.Elem.Kind, h.ValueType) {
			valTD = td.Elem
		}
	}

	for i := 0; i < h.Size; i++ {
		if err := d.decodeMapEntry(c, "key", i, h.KeyType, keyTD); err != nil {
			return err
		}
		if err := d.decodeMapEntry(c, "value", i, h.ValueType, valTD); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) decodeMapEntry(c *Capture, name string, i int, wire byte, td *thriftschema.TypeDesc) error {
	entry := &Capture{
		Name:  name,
		Wire:  wire,
		Type:  td,
		Index: i,
	}
	start := d.Pos()
	entry.HeaderRange = Range{start, start}

	var err error
	if wire == thriftwire.TypeTrue || wire == thriftwire.TypeFalse {
		var v bool
		v, err = d.r.ReadBoolByte()
		entry.Value = v
	} else {
		err = d.decodeValue(entry, wire, td)
	}
	entry.ValueRange = Range{start, d.Pos()}
	c.Children = append(c.Children, entry)
	if err != nil {
		entry.Err = err
	}
	return err
}
