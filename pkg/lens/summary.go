package lens

// Summary aggregates file-level counters collected during the walk.
type Summary struct {
	NumRows      int64 `json:"num_rows"`
	NumRowGroups int   `json:"num_row_groups"`
	NumColumns   int   `json:"num_columns"`

	NumPages       int `json:"num_pages"`
	NumDataPages   int `json:"num_data_pages"`
	NumV1DataPages int `json:"num_v1_data_pages"`
	NumV2DataPages int `json:"num_v2_data_pages"`
	NumDictPages   int `json:"num_dict_pages"`

	// PageHeaderSize is the sum of page header byte counts; the page data
	// sizes count payload bytes only.
	PageHeaderSize           int64 `json:"page_header_size"`
	CompressedPageDataSize   int64 `json:"compressed_page_data_size"`
	UncompressedPageDataSize int64 `json:"uncompressed_page_data_size"`

	// Column chunk totals from the footer metadata; these include headers.
	CompressedPageSize   int64 `json:"compressed_page_size"`
	UncompressedPageSize int64 `json:"uncompressed_page_size"`

	ColumnIndexSize int64 `json:"column_index_size"`
	OffsetIndexSize int64 `json:"offset_index_size"`
	BloomFilterSize int64 `json:"bloom_filter_size"`

	FooterSize int64 `json:"footer_size"`
	FileSize   int64 `json:"file_size"`

	NumErrors int `json:"num_errors,omitempty"`
}

// RowGroupPages locates the regions of one column chunk within one row group.
type RowGroupPages struct {
	Index          int     `json:"index"`
	DictionaryPage *int64  `json:"dictionary_page_offset,omitempty"`
	DataPages      []int64 `json:"data_page_offsets,omitempty"`
	ColumnIndex    *int64  `json:"column_index_offset,omitempty"`
	OffsetIndex    *int64  `json:"offset_index_offset,omitempty"`
	BloomFilter    *int64  `json:"bloom_filter_offset,omitempty"`
}

// ColumnPages maps one column path to its per-row-group regions.
type ColumnPages struct {
	Index     int             `json:"index"`
	Path      string          `json:"column"`
	RowGroups []RowGroupPages `json:"row_groups"`
}
