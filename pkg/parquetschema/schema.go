// Package parquetschema carries the field tables of the Parquet Thrift
// metadata types, transcribed from the published parquet.thrift definition.
// The tables drive schema-aware decoding of the file footer, page headers,
// and the auxiliary index structures.
package parquetschema

import (
	ts "github.com/eunmann/parquet-lens/pkg/thriftschema"
)

// Statistics per page or column chunk.
var Statistics = &ts.StructSchema{Name: "Statistics", Fields: []ts.FieldDef{
	{ID: 1, Name: "max", Type: ts.Binary},
	{ID: 2, Name: "min", Type: ts.Binary},
	{ID: 3, Name: "null_count", Type: ts.I64},
	{ID: 4, Name: "distinct_count", Type: ts.I64},
	{ID: 5, Name: "max_value", Type: ts.Binary},
	{ID: 6, Name: "min_value", Type: ts.Binary},
	{ID: 7, Name: "is_max_value_exact", Type: ts.Bool},
	{ID: 8, Name: "is_min_value_exact", Type: ts.Bool},
}}

var SizeStatistics = &ts.StructSchema{Name: "SizeStatistics", Fields: []ts.FieldDef{
	{ID: 1, Name: "unencoded_byte_array_data_bytes", Type: ts.I64},
	{ID: 2, Name: "repetition_level_histogram", Type: ts.ListOf(ts.I64)},
	{ID: 3, Name: "definition_level_histogram", Type: ts.ListOf(ts.I64)},
}}

var BoundingBox = &ts.StructSchema{Name: "BoundingBox", Fields: []ts.FieldDef{
	{ID: 1, Name: "xmin", Type: ts.Double, Required: true},
	{ID: 2, Name: "xmax", Type: ts.Double, Required: true},
	{ID: 3, Name: "ymin", Type: ts.Double, Required: true},
	{ID: 4, Name: "ymax", Type: ts.Double, Required: true},
	{ID: 5, Name: "zmin", Type: ts.Double},
	{ID: 6, Name: "zmax", Type: ts.Double},
	{ID: 7, Name: "mmin", Type: ts.Double},
	{ID: 8, Name: "mmax", Type: ts.Double},
}}

var GeospatialStatistics = &ts.StructSchema{Name: "GeospatialStatistics", Fields: []ts.FieldDef{
	{ID: 1, Name: "bbox", Type: ts.StructOf(BoundingBox)},
	{ID: 2, Name: "geospatial_types", Type: ts.ListOf(ts.I32)},
}}

// Logical type variants. Most are empty marker structs; the union carries the
// discriminating field ID.
var (
	StringType  = &ts.StructSchema{Name: "StringType"}
	MapType     = &ts.StructSchema{Name: "MapType"}
	ListType    = &ts.StructSchema{Name: "ListType"}
	EnumType    = &ts.StructSchema{Name: "EnumType"}
	DateType    = &ts.StructSchema{Name: "DateType"}
	NullType    = &ts.StructSchema{Name: "NullType"}
	JsonType    = &ts.StructSchema{Name: "JsonType"}
	BsonType    = &ts.StructSchema{Name: "BsonType"}
	UUIDType    = &ts.StructSchema{Name: "UUIDType"}
	Float16Type = &ts.StructSchema{Name: "Float16Type"}

	MilliSeconds = &ts.StructSchema{Name: "MilliSeconds"}
	MicroSeconds = &ts.StructSchema{Name: "MicroSeconds"}
	NanoSeconds  = &ts.StructSchema{Name: "NanoSeconds"}
)

var DecimalType = &ts.StructSchema{Name: "DecimalType", Fields: []ts.FieldDef{
	{ID: 1, Name: "scale", Type: ts.I32, Required: true},
	{ID: 2, Name: "precision", Type: ts.I32, Required: true},
}}

var TimeUnit = &ts.StructSchema{Name: "TimeUnit", Fields: []ts.FieldDef{
	{ID: 1, Name: "MILLIS", Type: ts.StructOf(MilliSeconds)},
	{ID: 2, Name: "MICROS", Type: ts.StructOf(MicroSeconds)},
	{ID: 3, Name: "NANOS", Type: ts.StructOf(NanoSeconds)},
}}

var TimestampType = &ts.StructSchema{Name: "TimestampType", Fields: []ts.FieldDef{
	{ID: 1, Name: "isAdjustedToUTC", Type: ts.Bool, Required: true},
	{ID: 2, Name: "unit", Type: ts.StructOf(TimeUnit), Required: true},
}}

var TimeType = &ts.StructSchema{Name: "TimeType", Fields: []ts.FieldDef{
	{ID: 1, Name: "isAdjustedToUTC", Type: ts.Bool, Required: true},
	{ID: 2, Name: "unit", Type: ts.StructOf(TimeUnit), Required: true},
}}

var IntType = &ts.StructSchema{Name: "IntType", Fields: []ts.FieldDef{
	{ID: 1, Name: "bitWidth", Type: ts.Byte, Required: true},
	{ID: 2, Name: "isSigned", Type: ts.Bool, Required: true},
}}

var VariantType = &ts.StructSchema{Name: "VariantType", Fields: []ts.FieldDef{
	{ID: 1, Name: "specification_version", Type: ts.Byte},
}}

var GeometryType = &ts.StructSchema{Name: "GeometryType", Fields: []ts.FieldDef{
	{ID: 1, Name: "crs", Type: ts.Binary},
}}

var GeographyType = &ts.StructSchema{Name: "GeographyType", Fields: []ts.FieldDef{
	{ID: 1, Name: "crs", Type: ts.Binary},
	{ID: 2, Name: "algorithm", Type: ts.I32, Enum: EdgeInterpolationAlgorithmEnum},
}}

var LogicalType = &ts.StructSchema{Name: "LogicalType", Fields: []ts.FieldDef{
	{ID: 1, Name: "STRING", Type: ts.StructOf(StringType)},
	{ID: 2, Name: "MAP", Type: ts.StructOf(MapType)},
	{ID: 3, Name: "LIST", Type: ts.StructOf(ListType)},
	{ID: 4, Name: "ENUM", Type: ts.StructOf(EnumType)},
	{ID: 5, Name: "DECIMAL", Type: ts.StructOf(DecimalType)},
	{ID: 6, Name: "DATE", Type: ts.StructOf(DateType)},
	{ID: 7, Name: "TIME", Type: ts.StructOf(TimeType)},
	{ID: 8, Name: "TIMESTAMP", Type: ts.StructOf(TimestampType)},
	{ID: 10, Name: "INTEGER", Type: ts.StructOf(IntType)},
	{ID: 11, Name: "UNKNOWN", Type: ts.StructOf(NullType)},
	{ID: 12, Name: "JSON", Type: ts.StructOf(JsonType)},
	{ID: 13, Name: "BSON", Type: ts.StructOf(BsonType)},
	{ID: 14, Name: "UUID", Type: ts.StructOf(UUIDType)},
	{ID: 15, Name: "FLOAT16", Type: ts.StructOf(Float16Type)},
	{ID: 16, Name: "VARIANT", Type: ts.StructOf(VariantType)},
	{ID: 17, Name: "GEOMETRY", Type: ts.StructOf(GeometryType)},
	{ID: 18, Name: "GEOGRAPHY", Type: ts.StructOf(GeographyType)},
}}

var SchemaElement = &ts.StructSchema{Name: "SchemaElement", Fields: []ts.FieldDef{
	{ID: 1, Name: "type", Type: ts.I32, Enum: TypeEnum},
	{ID: 2, Name: "type_length", Type: ts.I32},
	{ID: 3, Name: "repetition_type", Type: ts.I32, Enum: FieldRepetitionTypeEnum},
	{ID: 4, Name: "name", Type: ts.Binary, Required: true},
	{ID: 5, Name: "num_children", Type: ts.I32},
	{ID: 6, Name: "converted_type", Type: ts.I32, Enum: ConvertedTypeEnum},
	{ID: 7, Name: "scale", Type: ts.I32},
	{ID: 8, Name: "precision", Type: ts.I32},
	{ID: 9, Name: "field_id", Type: ts.I32},
	{ID: 10, Name: "logicalType", Type: ts.StructOf(LogicalType)},
}}

var KeyValue = &ts.StructSchema{Name: "KeyValue", Fields: []ts.FieldDef{
	{ID: 1, Name: "key", Type: ts.Binary, Required: true},
	{ID: 2, Name: "value", Type: ts.Binary},
}}

var SortingColumn = &ts.StructSchema{Name: "SortingColumn", Fields: []ts.FieldDef{
	{ID: 1, Name: "column_idx", Type: ts.I32, Required: true},
	{ID: 2, Name: "descending", Type: ts.Bool, Required: true},
	{ID: 3, Name: "nulls_first", Type: ts.Bool, Required: true},
}}

var PageEncodingStats = &ts.StructSchema{Name: "PageEncodingStats", Fields: []ts.FieldDef{
	{ID: 1, Name: "page_type", Type: ts.I32, Enum: PageTypeEnum, Required: true},
	{ID: 2, Name: "encoding", Type: ts.I32, Enum: EncodingEnum, Required: true},
	{ID: 3, Name: "count", Type: ts.I32, Required: true},
}}

var ColumnMetaData = &ts.StructSchema{Name: "ColumnMetaData", Fields: []ts.FieldDef{
	{ID: 1, Name: "type", Type: ts.I32, Enum: TypeEnum, Required: true},
	{ID: 2, Name: "encodings", Type: ts.ListOf(ts.I32), Enum: EncodingEnum, Required: true},
	{ID: 3, Name: "path_in_schema", Type: ts.ListOf(ts.Binary), Required: true},
	{ID: 4, Name: "codec", Type: ts.I32, Enum: CompressionCodecEnum, Required: true},
	{ID: 5, Name: "num_values", Type: ts.I64, Required: true},
	{ID: 6, Name: "total_uncompressed_size", Type: ts.I64, Required: true},
	{ID: 7, Name: "total_compressed_size", Type: ts.I64, Required: true},
	{ID: 8, Name: "key_value_metadata", Type: ts.ListOf(ts.StructOf(KeyValue))},
	{ID: 9, Name: "data_page_offset", Type: ts.I64, Required: true},
	{ID: 10, Name: "index_page_offset", Type: ts.I64},
	{ID: 11, Name: "dictionary_page_offset", Type: ts.I64},
	{ID: 12, Name: "statistics", Type: ts.StructOf(Statistics)},
	{ID: 13, Name: "encoding_stats", Type: ts.ListOf(ts.StructOf(PageEncodingStats))},
	{ID: 14, Name: "bloom_filter_offset", Type: ts.I64},
	{ID: 15, Name: "bloom_filter_length", Type: ts.I32},
	{ID: 16, Name: "size_statistics", Type: ts.StructOf(SizeStatistics)},
	{ID: 17, Name: "geospatial_statistics", Type: ts.StructOf(GeospatialStatistics)},
}}

// Column encryption metadata.
var (
	EncryptionWithFooterKey = &ts.StructSchema{Name: "EncryptionWithFooterKey"}

	EncryptionWithColumnKey = &ts.StructSchema{Name: "EncryptionWithColumnKey", Fields: []ts.FieldDef{
		{ID: 1, Name: "path_in_schema", Type: ts.ListOf(ts.Binary), Required: true},
		{ID: 2, Name: "key_metadata", Type: ts.Binary},
	}}

	ColumnCryptoMetaData = &ts.StructSchema{Name: "ColumnCryptoMetaData", Fields: []ts.FieldDef{
		{ID: 1, Name: "ENCRYPTION_WITH_FOOTER_KEY", Type: ts.StructOf(EncryptionWithFooterKey)},
		{ID: 2, Name: "ENCRYPTION_WITH_COLUMN_KEY", Type: ts.StructOf(EncryptionWithColumnKey)},
	}}
)

var ColumnChunk = &ts.StructSchema{Name: "ColumnChunk", Fields: []ts.FieldDef{
	{ID: 1, Name: "file_path", Type: ts.Binary},
	{ID: 2, Name: "file_offset", Type: ts.I64, Required: true},
	{ID: 3, Name: "meta_data", Type: ts.StructOf(ColumnMetaData)},
	{ID: 4, Name: "offset_index_offset", Type: ts.I64},
	{ID: 5, Name: "offset_index_length", Type: ts.I32},
	{ID: 6, Name: "column_index_offset", Type: ts.I64},
	{ID: 7, Name: "column_index_length", Type: ts.I32},
	{ID: 8, Name: "crypto_metadata", Type: ts.StructOf(ColumnCryptoMetaData)},
	{ID: 9, Name: "encrypted_column_metadata", Type: ts.Binary},
}}

var RowGroup = &ts.StructSchema{Name: "RowGroup", Fields: []ts.FieldDef{
	{ID: 1, Name: "columns", Type: ts.ListOf(ts.StructOf(ColumnChunk)), Required: true},
	{ID: 2, Name: "total_byte_size", Type: ts.I64, Required: true},
	{ID: 3, Name: "num_rows", Type: ts.I64, Required: true},
	{ID: 4, Name: "sorting_columns", Type: ts.ListOf(ts.StructOf(SortingColumn))},
	{ID: 5, Name: "file_offset", Type: ts.I64},
	{ID: 6, Name: "total_compressed_size", Type: ts.I64},
	{ID: 7, Name: "ordinal", Type: ts.I16},
}}

var (
	TypeDefinedOrder = &ts.StructSchema{Name: "TypeDefinedOrder"}

	ColumnOrder = &ts.StructSchema{Name: "ColumnOrder", Fields: []ts.FieldDef{
		{ID: 1, Name: "TYPE_ORDER", Type: ts.StructOf(TypeDefinedOrder)},
	}}
)

var (
	AesGcmV1 = &ts.StructSchema{Name: "AesGcmV1", Fields: []ts.FieldDef{
		{ID: 1, Name: "aad_prefix", Type: ts.Binary},
		{ID: 2, Name: "aad_file_unique", Type: ts.Binary},
		{ID: 3, Name: "supply_aad_prefix", Type: ts.Bool},
	}}

	AesGcmCtrV1 = &ts.StructSchema{Name: "AesGcmCtrV1", Fields: []ts.FieldDef{
		{ID: 1, Name: "aad_prefix", Type: ts.Binary},
		{ID: 2, Name: "aad_file_unique", Type: ts.Binary},
		{ID: 3, Name: "supply_aad_prefix", Type: ts.Bool},
	}}

	EncryptionAlgorithm = &ts.StructSchema{Name: "EncryptionAlgorithm", Fields: []ts.FieldDef{
		{ID: 1, Name: "AES_GCM_V1", Type: ts.StructOf(AesGcmV1)},
		{ID: 2, Name: "AES_GCM_CTR_V1", Type: ts.StructOf(AesGcmCtrV1)},
	}}
)

// FileMetaData is the root type of the footer.
var FileMetaData = &ts.StructSchema{Name: "FileMetaData", Fields: []ts.FieldDef{
	{ID: 1, Name: "version", Type: ts.I32, Required: true},
	{ID: 2, Name: "schema", Type: ts.ListOf(ts.StructOf(SchemaElement)), Required: true},
	{ID: 3, Name: "num_rows", Type: ts.I64, Required: true},
	{ID: 4, Name: "row_groups", Type: ts.ListOf(ts.StructOf(RowGroup)), Required: true},
	{ID: 5, Name: "key_value_metadata", Type: ts.ListOf(ts.StructOf(KeyValue))},
	{ID: 6, Name: "created_by", Type: ts.Binary},
	{ID: 7, Name: "column_orders", Type: ts.ListOf(ts.StructOf(ColumnOrder))},
	{ID: 8, Name: "encryption_algorithm", Type: ts.StructOf(EncryptionAlgorithm)},
	{ID: 9, Name: "footer_signing_key_metadata", Type: ts.Binary},
}}

// Page headers and auxiliary index structures, decoded outside the footer.
var DataPageHeader = &ts.StructSchema{Name: "DataPageHeader", Fields: []ts.FieldDef{
	{ID: 1, Name: "num_values", Type: ts.I32, Required: true},
	{ID: 2, Name: "encoding", Type: ts.I32, Enum: EncodingEnum, Required: true},
	{ID: 3, Name: "definition_level_encoding", Type: ts.I32, Enum: EncodingEnum, Required: true},
	{ID: 4, Name: "repetition_level_encoding", Type: ts.I32, Enum: EncodingEnum, Required: true},
	{ID: 5, Name: "statistics", Type: ts.StructOf(Statistics)},
}}

var IndexPageHeader = &ts.StructSchema{Name: "IndexPageHeader"}

var DictionaryPageHeader = &ts.StructSchema{Name: "DictionaryPageHeader", Fields: []ts.FieldDef{
	{ID: 1, Name: "num_values", Type: ts.I32, Required: true},
	{ID: 2, Name: "encoding", Type: ts.I32, Enum: EncodingEnum, Required: true},
	{ID: 3, Name: "is_sorted", Type: ts.Bool},
}}

var DataPageHeaderV2 = &ts.StructSchema{Name: "DataPageHeaderV2", Fields: []ts.FieldDef{
	{ID: 1, Name: "num_values", Type: ts.I32, Required: true},
	{ID: 2, Name: "num_nulls", Type: ts.I32, Required: true},
	{ID: 3, Name: "num_rows", Type: ts.I32, Required: true},
	{ID: 4, Name: "encoding", Type: ts.I32, Enum: EncodingEnum, Required: true},
	{ID: 5, Name: "definition_levels_byte_length", Type: ts.I32, Required: true},
	{ID: 6, Name: "repetition_levels_byte_length", Type: ts.I32, Required: true},
	{ID: 7, Name: "is_compressed", Type: ts.Bool},
	{ID: 8, Name: "statistics", Type: ts.StructOf(Statistics)},
}}

var PageHeader = &ts.StructSchema{Name: "PageHeader", Fields: []ts.FieldDef{
	{ID: 1, Name: "type", Type: ts.I32, Enum: PageTypeEnum, Required: true},
	{ID: 2, Name: "uncompressed_page_size", Type: ts.I32, Required: true},
	{ID: 3, Name: "compressed_page_size", Type: ts.I32, Required: true},
	{ID: 4, Name: "crc", Type: ts.I32},
	{ID: 5, Name: "data_page_header", Type: ts.StructOf(DataPageHeader)},
	{ID: 6, Name: "index_page_header", Type: ts.StructOf(IndexPageHeader)},
	{ID: 7, Name: "dictionary_page_header", Type: ts.StructOf(DictionaryPageHeader)},
	{ID: 8, Name: "data_page_header_v2", Type: ts.StructOf(DataPageHeaderV2)},
}}

var ColumnIndex = &ts.StructSchema{Name: "ColumnIndex", Fields: []ts.FieldDef{
	{ID: 1, Name: "null_pages", Type: ts.ListOf(ts.Bool), Required: true},
	{ID: 2, Name: "min_values", Type: ts.ListOf(ts.Binary), Required: true},
	{ID: 3, Name: "max_values", Type: ts.ListOf(ts.Binary), Required: true},
	{ID: 4, Name: "boundary_order", Type: ts.I32, Enum: BoundaryOrderEnum, Required: true},
	{ID: 5, Name: "null_counts", Type: ts.ListOf(ts.I64)},
	{ID: 6, Name: "repetition_level_histograms", Type: ts.ListOf(ts.I64)},
	{ID: 7, Name: "definition_level_histograms", Type: ts.ListOf(ts.I64)},
}}

var PageLocation = &ts.StructSchema{Name: "PageLocation", Fields: []ts.FieldDef{
	{ID: 1, Name: "offset", Type: ts.I64, Required: true},
	{ID: 2, Name: "compressed_page_size", Type: ts.I32, Required: true},
	{ID: 3, Name: "first_row_index", Type: ts.I64, Required: true},
}}

var OffsetIndex = &ts.StructSchema{Name: "OffsetIndex", Fields: []ts.FieldDef{
	{ID: 1, Name: "page_locations", Type: ts.ListOf(ts.StructOf(PageLocation)), Required: true},
	{ID: 2, Name: "unencoded_byte_array_data_bytes", Type: ts.ListOf(ts.I64)},
}}

// Bloom filter header and its variant structs.
var (
	SplitBlockAlgorithm = &ts.StructSchema{Name: "SplitBlockAlgorithm"}
	XxHash              = &ts.StructSchema{Name: "XxHash"}
	Uncompressed        = &ts.StructSchema{Name: "Uncompressed"}

	BloomFilterAlgorithm = &ts.StructSchema{Name: "BloomFilterAlgorithm", Fields: []ts.FieldDef{
		{ID: 1, Name: "BLOCK", Type: ts.StructOf(SplitBlockAlgorithm)},
	}}

	BloomFilterHash = &ts.StructSchema{Name: "BloomFilterHash", Fields: []ts.FieldDef{
		{ID: 1, Name: "XXHASH", Type: ts.StructOf(XxHash)},
	}}

	BloomFilterCompression = &ts.StructSchema{Name: "BloomFilterCompression", Fields: []ts.FieldDef{
		{ID: 1, Name: "UNCOMPRESSED", Type: ts.StructOf(Uncompressed)},
	}}

	BloomFilterHeader = &ts.StructSchema{Name: "BloomFilterHeader", Fields: []ts.FieldDef{
		{ID: 1, Name: "numBytes", Type: ts.I32, Required: true},
		{ID: 2, Name: "algorithm", Type: ts.StructOf(BloomFilterAlgorithm), Required: true},
		{ID: 3, Name: "hash", Type: ts.StructOf(BloomFilterHash), Required: true},
		{ID: 4, Name: "compression", Type: ts.StructOf(BloomFilterCompression), Required: true},
	}}
)

// Registry indexes every schema above for name lookup and serves as the enum
// side table keyed by (declaring type, field name).
var Registry = ts.NewRegistry(
	Statistics, SizeStatistics, BoundingBox, GeospatialStatistics,
	StringType, MapType, ListType, EnumType, DateType, NullType, JsonType,
	BsonType, UUIDType, Float16Type, MilliSeconds, MicroSeconds, NanoSeconds,
	DecimalType, TimeUnit, TimestampType, TimeType, IntType, VariantType,
	GeometryType, GeographyType, LogicalType,
	SchemaElement, KeyValue, SortingColumn, PageEncodingStats, ColumnMetaData,
	EncryptionWithFooterKey, EncryptionWithColumnKey, ColumnCryptoMetaData,
	ColumnChunk, RowGroup, TypeDefinedOrder, ColumnOrder,
	AesGcmV1, AesGcmCtrV1, EncryptionAlgorithm, FileMetaData,
	DataPageHeader, IndexPageHeader, DictionaryPageHeader, DataPageHeaderV2,
	PageHeader, ColumnIndex, PageLocation, OffsetIndex,
	SplitBlockAlgorithm, XxHash, Uncompressed, BloomFilterAlgorithm,
	BloomFilterHash, BloomFilterCompression, BloomFilterHeader,
)
