package lens

import (
	"fmt"
	"strings"

	"github.com/eunmann/parquet-lens/pkg/parquetschema"
	"github.com/eunmann/parquet-lens/pkg/segment"
	"github.com/eunmann/parquet-lens/pkg/thriftschema"
	"github.com/eunmann/parquet-lens/pkg/tracedec"
)

// headerWindow bounds the slice handed to the decode engine for a structure
// whose encoded size is not known up front. Page headers and index structs
// are small; anything larger fails with a truncation error segment.
const headerWindow = 256 << 10

// Page type codes from the PageType enum.
const (
	pageTypeData       = 0
	pageTypeDictionary = 2
	pageTypeDataV2     = 3
)

// walkRowGroups computes byte ranges for every page, dictionary page, column
// index, offset index, and bloom filter referenced by the footer. A failure
// in one column chunk becomes an error segment and does not abort the others.
func (a *analysis) walkRowGroups(footer *tracedec.Capture) {
	for rgIdx, rg := range footer.Elements("row_groups") {
		for _, col := range rg.Elements("columns") {
			meta := col.Child("meta_data")
			if meta == nil {
				continue
			}
			pages := RowGroupPages{Index: rgIdx}
			pages.DataPages = a.walkPages(meta)

			if off, ok := meta.Int("dictionary_page_offset"); ok {
				if a.readDictionaryPage(off) {
					pages.DictionaryPage = &off
				}
			}
			if off, ok := col.Int("column_index_offset"); ok {
				length, _ := col.Int("column_index_length")
				if a.readIndexStruct(off, length, TypeColumnIndex, parquetschema.ColumnIndex) {
					pages.ColumnIndex = &off
				}
			}
			if off, ok := col.Int("offset_index_offset"); ok {
				length, _ := col.Int("offset_index_length")
				if a.readIndexStruct(off, length, TypeOffsetIndex, parquetschema.OffsetIndex) {
					pages.OffsetIndex = &off
				}
			}
			if off, ok := meta.Int("bloom_filter_offset"); ok {
				if a.readIndexStruct(off, 0, TypeBloomFilter, parquetschema.BloomFilterHeader) {
					pages.BloomFilter = &off
				}
			}

			a.recordColumn(columnPath(meta), pages)
		}
	}
}

// walkPages follows the data page chain of one column chunk: decode a page
// header, skip its declared compressed payload, repeat until the chunk's
// value count is exhausted. A header without a recognized page-kind
// discriminator terminates the walk early rather than looping.
func (a *analysis) walkPages(meta *tracedec.Capture) []int64 {
	offset, ok := meta.Int("data_page_offset")
	if !ok {
		return nil
	}
	remaining, _ := meta.Int("num_values")

	var offsets []int64
	for remaining > 0 {
		header, err := a.decodePageHeader(offset)
		if err != nil {
			a.errorSegment(offset, header.ValueRange.End(), fmt.Errorf("page header at %d: %w", offset, err))
			break
		}
		offsets = append(offsets, offset)
		headerEnd := header.ValueRange.End()

		compressed, ok := header.Int("compressed_page_size")
		if !ok || compressed < 0 {
			break
		}
		dataEnd := headerEnd + compressed
		if dataEnd > a.size {
			a.errorSegment(headerEnd, a.size, fmt.Errorf("%w: page data [%d, %d)", ErrRangeInvalid, headerEnd, dataEnd))
			break
		}
		a.add(segment.New(headerEnd, dataEnd, TypePageData, nil))
		a.summary.CompressedPageDataSize += compressed
		if v, ok := header.Int("uncompressed_page_size"); ok {
			a.summary.UncompressedPageDataSize += v
		}

		var numValues int64
		if dph := header.Child("data_page_header"); dph != nil {
			numValues, _ = dph.Int("num_values")
		} else if dph := header.Child("data_page_header_v2"); dph != nil {
			numValues, _ = dph.Int("num_values")
		} else {
			break
		}
		if numValues <= 0 {
			break
		}
		remaining -= numValues
		offset = dataEnd
	}
	return offsets
}

// readDictionaryPage records the dictionary page header and payload segments.
func (a *analysis) readDictionaryPage(offset int64) bool {
	header, err := a.decodePageHeader(offset)
	if err != nil {
		a.errorSegment(offset, header.ValueRange.End(), fmt.Errorf("dictionary page header at %d: %w", offset, err))
		return false
	}
	headerEnd := header.ValueRange.End()
	if compressed, ok := header.Int("compressed_page_size"); ok && compressed >= 0 && headerEnd+compressed <= a.size {
		a.add(segment.New(headerEnd, headerEnd+compressed, TypePageData, nil))
		a.summary.CompressedPageDataSize += compressed
		if v, ok := header.Int("uncompressed_page_size"); ok {
			a.summary.UncompressedPageDataSize += v
		}
	}
	return true
}

// decodePageHeader decodes one PageHeader at the given absolute offset and
// records its segment. The returned capture is partial when err is non-nil.
func (a *analysis) decodePageHeader(offset int64) (*tracedec.Capture, error) {
	buf, err := a.window(offset, headerWindow)
	if err != nil {
		return &tracedec.Capture{ValueRange: tracedec.Range{offset, offset}}, err
	}
	dec := tracedec.NewDecoder(buf, offset, a.decodeConfig())
	header, err := dec.DecodeStruct("page", parquetschema.PageHeader)
	if err != nil {
		return header, err
	}

	s := segment.New(header.ValueRange.Start(), header.ValueRange.End(), TypePage, map[string]any{
		"struct_type": parquetschema.PageHeader.Name,
	})
	s.Children = segment.TopLevel(header, a.policy)
	a.add(s)

	a.summary.NumPages++
	a.summary.PageHeaderSize += header.ValueRange.Len()
	if code, ok := header.Int("type"); ok {
		switch code {
		case pageTypeData, pageTypeDataV2:
			a.summary.NumDataPages++
		case pageTypeDictionary:
			a.summary.NumDictPages++
		}
	}
	if header.Child("data_page_header") != nil {
		a.summary.NumV1DataPages++
	}
	if header.Child("data_page_header_v2") != nil {
		a.summary.NumV2DataPages++
	}
	return header, nil
}

// readIndexStruct decodes an auxiliary structure at an absolute offset, with
// the declared length as the read window when the footer carries one.
func (a *analysis) readIndexStruct(offset, length int64, typ string, schema *thriftschema.StructSchema) bool {
	window := int64(headerWindow)
	if length > 0 {
		window = length
	}
	buf, err := a.window(offset, window)
	if err != nil {
		a.errorSegment(offset, offset, fmt.Errorf("%s at %d: %w", typ, offset, err))
		return false
	}
	dec := tracedec.NewDecoder(buf, offset, a.decodeConfig())
	c, err := dec.DecodeStruct(typ, schema)
	if err != nil {
		a.errorSegment(offset, c.ValueRange.End(), fmt.Errorf("%s at %d: %w", typ, offset, err))
		return false
	}

	s := segment.New(c.ValueRange.Start(), c.ValueRange.End(), typ, map[string]any{
		"struct_type": schema.Name,
	})
	s.Children = segment.TopLevel(c, a.policy)
	a.add(s)
	return true
}

// recordColumn appends one row group's page map under its column path.
func (a *analysis) recordColumn(path string, pages RowGroupPages) {
	for i := range a.columns {
		if a.columns[i].Path == path {
			a.columns[i].RowGroups = append(a.columns[i].RowGroups, pages)
			return
		}
	}
	a.columns = append(a.columns, ColumnPages{
		Index:     len(a.columns),
		Path:      path,
		RowGroups: []RowGroupPages{pages},
	})
}

func columnPath(meta *tracedec.Capture) string {
	elems := meta.Elements("path_in_schema")
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		if b, ok := e.Value.([]byte); ok {
			parts = append(parts, string(b))
		}
	}
	return strings.Join(parts, ".")
}
