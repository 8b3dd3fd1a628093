package segment

import (
	"encoding/hex"
	"sort"
	"unicode/utf8"

	"github.com/eunmann/parquet-lens/pkg/thriftschema"
	"github.com/eunmann/parquet-lens/pkg/thriftwire"
	"github.com/eunmann/parquet-lens/pkg/tracedec"
)

// Segment type tags for decoded Thrift constructs.
const (
	TypeField  = "thrift_field"
	TypeStruct = "thrift_struct"
)

// Policy controls which captures become segments.
type Policy struct {
	// EmitUndefinedOptional emits optional fields absent from the wire bytes
	// with a null value instead of omitting them.
	EmitUndefinedOptional bool
}

// TopLevel converts the children of a root struct capture into segments,
// ordered by file appearance: ascending header start, with fields absent from
// the wire (which have no recorded range) last, in schema declaration order.
func TopLevel(c *tracedec.Capture, policy Policy) []*Segment {
	captured, synthesized := structFields(c, policy)
	sort.SliceStable(captured, func(i, j int) bool {
		return captured[i].Range[0] < captured[j].Range[0]
	})
	return append(captured, synthesized...)
}

// Fields converts the children of a struct capture into segments, preserving
// the depth-first capture order; fields absent from the wire follow.
func Fields(c *tracedec.Capture, policy Policy) []*Segment {
	captured, synthesized := structFields(c, policy)
	return append(captured, synthesized...)
}

func structFields(c *tracedec.Capture, policy Policy) (captured, synthesized []*Segment) {
	seen := make(map[int16]bool, len(c.Children))
	for _, child := range c.Children {
		captured = append(captured, Field(child, policy))
		seen[child.FieldID] = true
	}

	if c.Struct == nil {
		return captured, nil
	}
	for i := range c.Struct.Fields {
		def := &c.Struct.Fields[i]
		if seen[def.ID] {
			continue
		}
		if !def.Required && !policy.EmitUndefinedOptional {
			continue
		}
		synthesized = append(synthesized, undefinedField(def, c.ValueRange.End()))
	}
	return captured, synthesized
}

// Field converts one field capture into a segment.
func Field(c *tracedec.Capture, policy Policy) *Segment {
	total := c.Total()
	s := New(total.Start(), total.End(), TypeField, nil)
	s.Metadata = fieldMetadata(c)

	switch c.Wire {
	case thriftwire.TypeStruct:
		s.Value = map[string]any{
			"field_name":  c.Name,
			"field_id":    c.FieldID,
			"struct_type": structTypeName(c),
		}
		s.Children = Fields(c, policy)

	case thriftwire.TypeList, thriftwire.TypeSet, thriftwire.TypeMap:
		s.Value = map[string]any{
			"field_name":  c.Name,
			"field_id":    c.FieldID,
			"list_length": c.ListSize,
		}
		s.Children = elements(c, policy)

	default:
		s.Value = map[string]any{
			"field_name": c.Name,
			"field_id":   c.FieldID,
			"data":       primitiveValue(c),
		}
	}
	return s
}

// elements converts container element captures, recursing per element so each
// child carries its exact byte range.
func elements(c *tracedec.Capture, policy Policy) []*Segment {
	out := make([]*Segment, 0, len(c.Children))
	for _, elem := range c.Children {
		out = append(out, element(elem, policy))
	}
	return out
}

func element(c *tracedec.Capture, policy Policy) *Segment {
	r := c.ValueRange
	switch c.Wire {
	case thriftwire.TypeStruct:
		s := New(r.Start(), r.End(), TypeStruct, map[string]any{
			"struct_type": structTypeName(c),
			"index":       c.Index,
		})
		s.Children = Fields(c, policy)
		if c.Err != nil {
			s.Metadata = map[string]any{"error": c.Err.Error()}
		}
		return s
	case thriftwire.TypeList, thriftwire.TypeSet, thriftwire.TypeMap:
		s := New(r.Start(), r.End(), TypeField, map[string]any{
			"index":       c.Index,
			"list_length": c.ListSize,
		})
		s.Children = elements(c, policy)
		return s
	default:
		s := New(r.Start(), r.End(), primitiveTypeName(c), primitiveValue(c))
		if c.Err != nil {
			s.Metadata = map[string]any{"error": c.Err.Error()}
		}
		return s
	}
}

func undefinedField(def *thriftschema.FieldDef, at int64) *Segment {
	s := New(at, at, TypeField, map[string]any{
		"field_name": def.Name,
		"field_id":   def.ID,
		"data":       nil,
	})
	s.Metadata = map[string]any{
		"thrift_type": def.Type.Name(),
		"required":    def.Required,
		"undefined":   true,
	}
	return s
}

func fieldMetadata(c *tracedec.Capture) map[string]any {
	m := map[string]any{
		"thrift_type": typeName(c),
		"required":    c.Required,
	}
	if c.Err != nil {
		m["error"] = c.Err.Error()
	}
	return m
}

func typeName(c *tracedec.Capture) string {
	if c.Type != nil {
		return c.Type.Name()
	}
	return thriftwire.TypeName(c.Wire)
}

func structTypeName(c *tracedec.Capture) string {
	if c.Struct != nil {
		return c.Struct.Name
	}
	return "struct"
}

func primitiveTypeName(c *tracedec.Capture) string {
	if c.Enum != nil {
		return "enum"
	}
	switch v := c.Value.(type) {
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "double"
	case []byte:
		if utf8.Valid(v) {
			return "string"
		}
		return "binary"
	}
	return thriftwire.TypeName(c.Wire)
}

// primitiveValue renders a decoded scalar for output. Enum-typed integers
// resolve to a {enum_value, enum_name} pair, with unmapped codes rendered as
// UNKNOWN(<code>). Byte strings render as UTF-8 text when valid and as
// lowercase hex otherwise; a non-textual payload is a legitimate value, not
// an error.
func primitiveValue(c *tracedec.Capture) any {
	switch v := c.Value.(type) {
	case nil:
		return nil
	case bool:
		return v
	case float64:
		return v
	case int64:
		if c.Enum != nil {
			return map[string]any{
				"enum_value": v,
				"enum_name":  c.Enum.Symbol(v),
			}
		}
		return v
	case []byte:
		if utf8.Valid(v) {
			return string(v)
		}
		return hex.EncodeToString(v)
	}
	return c.Value
}
