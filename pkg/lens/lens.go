// Package lens analyzes the layout of a Parquet container: it locates the
// magic markers and the footer, decodes the footer metadata with byte-range
// tracing, and walks the page, dictionary, and index regions referenced by
// it. The result is a segment list covering every byte of the file.
package lens

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/eunmann/parquet-lens/internal/logctx"
	"github.com/eunmann/parquet-lens/pkg/parquetschema"
	"github.com/eunmann/parquet-lens/pkg/segment"
	"github.com/eunmann/parquet-lens/pkg/tracedec"
)

// Magic is the 4-byte marker at both ends of a Parquet file.
const Magic = "PAR1"

const tailLen = 8 // footer length field + trailing magic

// Segment type tags emitted by the navigator.
const (
	TypeMagic        = "magic"
	TypeFooterLength = "footer_length"
	TypeFooter       = "footer"
	TypePage         = "page"
	TypePageData     = "page_data"
	TypeColumnIndex  = "column_index"
	TypeOffsetIndex  = "offset_index"
	TypeBloomFilter  = "bloom_filter"
	TypeUnknown      = "unknown"
	TypeError        = "error"
)

// Options controls one analysis.
type Options struct {
	// Debug enables decode tracing on the context logger.
	Debug bool
	// EmitUndefinedOptional includes optional footer fields absent from the
	// wire bytes, with null values.
	EmitUndefinedOptional bool
}

// Report is the result of one analysis. Segments is sorted by range start
// and covers the whole file with no gaps; spans not claimed by a recognized
// region appear as "unknown" segments.
type Report struct {
	FileSize int64              `json:"file_size"`
	Segments []*segment.Segment `json:"segments"`
	Summary  *Summary           `json:"summary"`
	Columns  []ColumnPages      `json:"columns,omitempty"`
}

// Analyze inspects the file behind src. Malformed input never fails the
// analysis as a whole: each failure becomes an "error" segment and the walk
// continues best-effort, so the caller always receives full file coverage.
func Analyze(ctx context.Context, src io.ReaderAt, size int64, opts Options) (*Report, error) {
	a := &analysis{
		ctx:    ctx,
		src:    src,
		size:   size,
		opts:   opts,
		policy: segment.Policy{EmitUndefinedOptional: opts.EmitUndefinedOptional},
		summary: &Summary{
			FileSize: size,
		},
	}
	a.run()

	sort.SliceStable(a.segments, func(i, j int) bool {
		return a.segments[i].Range[0] < a.segments[j].Range[0]
	})
	return &Report{
		FileSize: size,
		Segments: fillGaps(a.segments, size),
		Summary:  a.summary,
		Columns:  a.columns,
	}, nil
}

type analysis struct {
	ctx     context.Context
	src     io.ReaderAt
	size    int64
	opts    Options
	policy  segment.Policy
	summary *Summary
	columns []ColumnPages

	segments []*segment.Segment
}

func (a *analysis) add(s *segment.Segment) {
	a.segments = append(a.segments, s)
}

func (a *analysis) errorSegment(start, end int64, err error) {
	if start < 0 {
		start = 0
	}
	if end > a.size {
		end = a.size
	}
	if end < start {
		end = start
	}
	a.summary.NumErrors++
	a.add(segment.New(start, end, TypeError, map[string]any{"error": err.Error()}))
}

func (a *analysis) decodeConfig() tracedec.Config {
	return tracedec.Config{
		Debug:  a.opts.Debug,
		Logger: logctx.FromContext(a.ctx),
	}
}

// readAt reads [off, off+n) from the source.
func (a *analysis) readAt(off, n int64) ([]byte, error) {
	if off < 0 || off+n > a.size {
		return nil, fmt.Errorf("%w: [%d, %d) outside file of %d bytes", ErrRangeInvalid, off, off+n, a.size)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(io.NewSectionReader(a.src, off, n), buf); err != nil {
		return nil, fmt.Errorf("read %d bytes at %d: %w", n, off, err)
	}
	return buf, nil
}

// window reads up to max bytes at off, clamped to the file end. Used to hand
// the decode engine a slice around a structure of unknown encoded size.
func (a *analysis) window(off, max int64) ([]byte, error) {
	if off < 0 || off >= a.size {
		return nil, fmt.Errorf("%w: offset %d outside file of %d bytes", ErrRangeInvalid, off, a.size)
	}
	n := a.size - off
	if n > max {
		n = max
	}
	return a.readAt(off, n)
}

func (a *analysis) run() {
	logger := logctx.FromContext(a.ctx)

	if a.size < int64(len(Magic))+tailLen {
		a.errorSegment(0, a.size, fmt.Errorf("%w: file of %d bytes is too small to be a parquet container", ErrMagicMismatch, a.size))
		return
	}

	// Leading magic. A mismatch is reported but does not stop the analysis.
	head, err := a.readAt(0, int64(len(Magic)))
	switch {
	case err != nil:
		a.errorSegment(0, int64(len(Magic)), err)
	case string(head) != Magic:
		a.errorSegment(0, int64(len(Magic)), fmt.Errorf("%w: leading marker %q", ErrMagicMismatch, head))
	default:
		a.add(segment.New(0, int64(len(Magic)), TypeMagic, Magic))
	}

	// Trailing magic and footer length from the last 8 bytes.
	tail, err := a.readAt(a.size-tailLen, tailLen)
	if err != nil {
		a.errorSegment(a.size-tailLen, a.size, err)
		return
	}
	footerLen := int64(binary.LittleEndian.Uint32(tail[:4]))
	if string(tail[4:]) != Magic {
		a.errorSegment(a.size-int64(len(Magic)), a.size, fmt.Errorf("%w: trailing marker %q", ErrMagicMismatch, tail[4:]))
	} else {
		a.add(segment.New(a.size-int64(len(Magic)), a.size, TypeMagic, Magic))
	}
	a.add(segment.New(a.size-tailLen, a.size-int64(len(Magic)), TypeFooterLength, footerLen))

	footerStart := a.size - tailLen - footerLen
	if footerStart < 0 {
		a.errorSegment(0, a.size-tailLen, fmt.Errorf("%w: footer length %d exceeds file size %d", ErrFooterRange, footerLen, a.size))
		return
	}
	a.summary.FooterSize = footerLen

	footerBytes, err := a.readAt(footerStart, footerLen)
	if err != nil {
		a.errorSegment(footerStart, a.size-tailLen, err)
		return
	}

	dec := tracedec.NewDecoder(footerBytes, footerStart, a.decodeConfig())
	footer, err := dec.DecodeStruct("footer", parquetschema.FileMetaData)
	fs := segment.New(footerStart, a.size-tailLen, TypeFooter, map[string]any{"footer_length": footerLen})
	fs.Children = segment.TopLevel(footer, a.policy)
	if err != nil {
		// The decode error and the partial capture trace travel together;
		// committed fields are never dropped.
		logger.Warn().Err(err).Int64("footer_start", footerStart).Msg("footer decode failed")
		fs.Type = TypeError
		fs.Value = map[string]any{"error": err.Error(), "footer_length": footerLen}
		a.summary.NumErrors++
	}
	a.add(fs)

	a.summarizeFooter(footer)
	a.walkRowGroups(footer)
}

// summarizeFooter fills the footer-level summary counters from the capture.
func (a *analysis) summarizeFooter(footer *tracedec.Capture) {
	if v, ok := footer.Int("num_rows"); ok {
		a.summary.NumRows = v
	}
	rowGroups := footer.Elements("row_groups")
	a.summary.NumRowGroups = len(rowGroups)
	if len(rowGroups) > 0 {
		a.summary.NumColumns = len(rowGroups[0].Elements("columns"))
	}
	for _, rg := range rowGroups {
		for _, col := range rg.Elements("columns") {
			meta := col.Child("meta_data")
			if meta == nil {
				continue
			}
			if v, ok := meta.Int("total_uncompressed_size"); ok {
				a.summary.UncompressedPageSize += v
			}
			if v, ok := meta.Int("total_compressed_size"); ok {
				a.summary.CompressedPageSize += v
			}
			if v, ok := col.Int("column_index_length"); ok {
				a.summary.ColumnIndexSize += v
			}
			if v, ok := col.Int("offset_index_length"); ok {
				a.summary.OffsetIndexSize += v
			}
			if v, ok := meta.Int("bloom_filter_length"); ok {
				a.summary.BloomFilterSize += v
			}
		}
	}
}

// fillGaps synthesizes "unknown" segments for spans not claimed by any
// recognized region, so consumers always see contiguous coverage. segments
// must be sorted by range start.
func fillGaps(segments []*segment.Segment, fileSize int64) []*segment.Segment {
	out := make([]*segment.Segment, 0, len(segments)+4)
	var pos int64
	for _, s := range segments {
		if s.Range[0] > pos {
			out = append(out, segment.New(pos, s.Range[0], TypeUnknown, nil))
		}
		out = append(out, s)
		if s.Range[1] > pos {
			pos = s.Range[1]
		}
	}
	if pos < fileSize {
		out = append(out, segment.New(pos, fileSize, TypeUnknown, nil))
	}
	return out
}
