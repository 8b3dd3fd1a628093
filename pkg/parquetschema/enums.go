package parquetschema

import "github.com/eunmann/parquet-lens/pkg/thriftschema"

// Enum symbol tables from parquet.thrift. The compact wire format encodes
// these fields as plain varint integers, so the tables here are the only way
// to recover the symbolic names.
var (
	TypeEnum = &thriftschema.EnumTable{Name: "Type", Names: map[int64]string{
		0: "BOOLEAN",
		1: "INT32",
		2: "INT64",
		3: "INT96",
		4: "FLOAT",
		5: "DOUBLE",
		6: "BYTE_ARRAY",
		7: "FIXED_LEN_BYTE_ARRAY",
	}}

	ConvertedTypeEnum = &thriftschema.EnumTable{Name: "ConvertedType", Names: map[int64]string{
		0:  "UTF8",
		1:  "MAP",
		2:  "MAP_KEY_VALUE",
		3:  "LIST",
		4:  "ENUM",
		5:  "DECIMAL",
		6:  "DATE",
		7:  "TIME_MILLIS",
		8:  "TIME_MICROS",
		9:  "TIMESTAMP_MILLIS",
		10: "TIMESTAMP_MICROS",
		11: "UINT_8",
		12: "UINT_16",
		13: "UINT_32",
		14: "UINT_64",
		15: "INT_8",
		16: "INT_16",
		17: "INT_32",
		18: "INT_64",
		19: "JSON",
		20: "BSON",
		21: "INTERVAL",
	}}

	FieldRepetitionTypeEnum = &thriftschema.EnumTable{Name: "FieldRepetitionType", Names: map[int64]string{
		0: "REQUIRED",
		1: "OPTIONAL",
		2: "REPEATED",
	}}

	EncodingEnum = &thriftschema.EnumTable{Name: "Encoding", Names: map[int64]string{
		0: "PLAIN",
		2: "PLAIN_DICTIONARY",
		3: "RLE",
		4: "BIT_PACKED",
		5: "DELTA_BINARY_PACKED",
		6: "DELTA_LENGTH_BYTE_ARRAY",
		7: "DELTA_BYTE_ARRAY",
		8: "RLE_DICTIONARY",
		9: "BYTE_STREAM_SPLIT",
	}}

	CompressionCodecEnum = &thriftschema.EnumTable{Name: "CompressionCodec", Names: map[int64]string{
		0: "UNCOMPRESSED",
		1: "SNAPPY",
		2: "GZIP",
		3: "LZO",
		4: "BROTLI",
		5: "LZ4",
		6: "ZSTD",
		7: "LZ4_RAW",
	}}

	PageTypeEnum = &thriftschema.EnumTable{Name: "PageType", Names: map[int64]string{
		0: "DATA_PAGE",
		1: "INDEX_PAGE",
		2: "DICTIONARY_PAGE",
		3: "DATA_PAGE_V2",
	}}

	BoundaryOrderEnum = &thriftschema.EnumTable{Name: "BoundaryOrder", Names: map[int64]string{
		0: "UNORDERED",
		1: "ASCENDING",
		2: "DESCENDING",
	}}

	EdgeInterpolationAlgorithmEnum = &thriftschema.EnumTable{Name: "EdgeInterpolationAlgorithm", Names: map[int64]string{
		0: "SPHERICAL",
		1: "VINCENTY",
		2: "THOMAS",
		3: "ANDOYER",
		4: "KARNEY",
	}}
)
