package thriftschema

// EnumKey identifies an enum-typed field by its declaring type name and field
// name. The pair is the only handle available when decoding without a field
// definition in hand.
type EnumKey struct {
	Type  string
	Field string
}

// Registry holds the schemas of a container format and a side index of its
// enum-typed fields. It is built once from the published format definition
// and immutable afterwards.
type Registry struct {
	schemas map[string]*StructSchema
	enums   map[EnumKey]*EnumTable
}

// NewRegistry indexes the given schemas. The enum side index is derived from
// the Enum references embedded on the field definitions, so the field tables
// stay the single source of truth.
func NewRegistry(schemas ...*StructSchema) *Registry {
	r := &Registry{
		schemas: make(map[string]*StructSchema, len(schemas)),
		enums:   make(map[EnumKey]*EnumTable),
	}
	for _, s := range schemas {
		r.schemas[s.Name] = s
		for i := range s.Fields {
			f := &s.Fields[i]
			if f.Enum != nil {
				r.enums[EnumKey{Type: s.Name, Field: f.Name}] = f.Enum
			}
		}
	}
	return r
}

// Schema returns the schema for a type name, or nil.
func (r *Registry) Schema(name string) *StructSchema {
	return r.schemas[name]
}

// EnumFor is the fallback enum lookup keyed by (declaring type, field name),
// used when a caller holds a field name but not its definition.
func (r *Registry) EnumFor(typeName, fieldName string) *EnumTable {
	return r.enums[EnumKey{Type: typeName, Field: fieldName}]
}
