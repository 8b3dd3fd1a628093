package parquetschema

import (
	"testing"

	ts "github.com/eunmann/parquet-lens/pkg/thriftschema"
)

func TestRegistryContainsCoreTypes(t *testing.T) {
	for _, name := range []string{
		"FileMetaData",
		"RowGroup",
		"ColumnChunk",
		"ColumnMetaData",
		"SchemaElement",
		"PageHeader",
		"ColumnIndex",
		"OffsetIndex",
		"BloomFilterHeader",
	} {
		if Registry.Schema(name) == nil {
			t.Errorf("Registry missing schema %s", name)
		}
	}
}

func TestFileMetaDataFields(t *testing.T) {
	tests := []struct {
		id   int16
		name string
	}{
		{1, "version"},
		{2, "schema"},
		{3, "num_rows"},
		{4, "row_groups"},
		{5, "key_value_metadata"},
		{6, "created_by"},
		{7, "column_orders"},
	}
	for _, tt := range tests {
		f := FileMetaData.FieldByID(tt.id)
		if f == nil || f.Name != tt.name {
			t.Errorf("FileMetaData field %d = %+v, want %s", tt.id, f, tt.name)
		}
	}
}

func TestSchemaElementListTypeName(t *testing.T) {
	f := FileMetaData.FieldByID(2)
	if f == nil {
		t.Fatal("missing schema field")
	}
	if got := f.Type.Name(); got != "list<SchemaElement>" {
		t.Errorf("schema field type = %q, want list<SchemaElement>", got)
	}
}

func TestColumnMetaDataEnumRefs(t *testing.T) {
	tests := []struct {
		field string
		enum  *ts.EnumTable
	}{
		{"type", TypeEnum},
		{"encodings", EncodingEnum},
		{"codec", CompressionCodecEnum},
	}
	for _, tt := range tests {
		if got := Registry.EnumFor("ColumnMetaData", tt.field); got != tt.enum {
			t.Errorf("EnumFor(ColumnMetaData, %s) = %v, want %v", tt.field, got, tt.enum)
		}
	}
	if got := Registry.EnumFor("ColumnMetaData", "num_values"); got != nil {
		t.Errorf("EnumFor(ColumnMetaData, num_values) = %v, want nil", got)
	}
}

func TestEnumSymbols(t *testing.T) {
	tests := []struct {
		table *ts.EnumTable
		code  int64
		want  string
	}{
		{TypeEnum, 0, "BOOLEAN"},
		{TypeEnum, 6, "BYTE_ARRAY"},
		{CompressionCodecEnum, 0, "UNCOMPRESSED"},
		{CompressionCodecEnum, 1, "SNAPPY"},
		{CompressionCodecEnum, 7, "LZ4_RAW"},
		{EncodingEnum, 0, "PLAIN"},
		{EncodingEnum, 8, "RLE_DICTIONARY"},
		{PageTypeEnum, 0, "DATA_PAGE"},
		{PageTypeEnum, 2, "DICTIONARY_PAGE"},
		{PageTypeEnum, 3, "DATA_PAGE_V2"},
		{FieldRepetitionTypeEnum, 1, "OPTIONAL"},
		{CompressionCodecEnum, 42, "UNKNOWN(42)"},
	}
	for _, tt := range tests {
		if got := tt.table.Symbol(tt.code); got != tt.want {
			t.Errorf("%s.Symbol(%d) = %q, want %q", tt.table.Name, tt.code, got, tt.want)
		}
	}
}

func TestRequiredFieldsMarked(t *testing.T) {
	if f := SchemaElement.FieldByID(4); f == nil || !f.Required {
		t.Error("SchemaElement.name should be required")
	}
	if f := SchemaElement.FieldByID(5); f == nil || f.Required {
		t.Error("SchemaElement.num_children should be optional")
	}
	if f := ColumnMetaData.FieldByID(11); f == nil || f.Required {
		t.Error("ColumnMetaData.dictionary_page_offset should be optional")
	}
}
