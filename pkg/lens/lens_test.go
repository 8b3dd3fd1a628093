package lens

import (
	"bytes"
	"context"
	"encoding/binary"
	"reflect"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/eunmann/parquet-lens/pkg/segment"
)

type testRow struct {
	ID    int64   `parquet:"id"`
	Name  string  `parquet:"name"`
	Score float64 `parquet:"score"`
}

// writeTestFile produces a real parquet file in memory.
func writeTestFile(t *testing.T, numRows int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := parquet.NewGenericWriter[testRow](&buf)

	rows := make([]testRow, numRows)
	for i := range rows {
		rows[i] = testRow{ID: int64(i), Name: "row", Score: float64(i) / 2}
	}
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("write rows: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf.Bytes()
}

func analyze(t *testing.T, data []byte, opts Options) *Report {
	t.Helper()
	report, err := Analyze(context.Background(), bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return report
}

func TestAnalyzeRealFile(t *testing.T) {
	data := writeTestFile(t, 100)
	report := analyze(t, data, Options{})

	if report.FileSize != int64(len(data)) {
		t.Errorf("FileSize = %d, want %d", report.FileSize, len(data))
	}
	if report.Summary.NumErrors != 0 {
		t.Fatalf("NumErrors = %d, segments: %v", report.Summary.NumErrors, segmentTypes(report.Segments))
	}
	if report.Summary.NumRows != 100 {
		t.Errorf("NumRows = %d, want 100", report.Summary.NumRows)
	}
	if report.Summary.NumRowGroups < 1 {
		t.Errorf("NumRowGroups = %d", report.Summary.NumRowGroups)
	}
	if report.Summary.NumColumns != 3 {
		t.Errorf("NumColumns = %d, want 3", report.Summary.NumColumns)
	}
	if report.Summary.NumPages < 3 {
		t.Errorf("NumPages = %d, want at least one per column", report.Summary.NumPages)
	}
	if report.Summary.FooterSize <= 0 {
		t.Errorf("FooterSize = %d", report.Summary.FooterSize)
	}

	// Cross-check the row count against an independent reader.
	f, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if f.NumRows() != report.Summary.NumRows {
		t.Errorf("NumRows = %d, reference reader says %d", report.Summary.NumRows, f.NumRows())
	}
}

func TestAnalyzeCoverage(t *testing.T) {
	data := writeTestFile(t, 50)
	report := analyze(t, data, Options{})

	// Segments are sorted by start and their union covers the whole file.
	var pos int64
	for i, s := range report.Segments {
		if i > 0 && s.Range[0] < report.Segments[i-1].Range[0] {
			t.Fatalf("segment %d out of order", i)
		}
		if s.Range[0] > pos {
			t.Fatalf("gap [%d, %d) before segment %d (%s)", pos, s.Range[0], i, s.Type)
		}
		if s.Range[1] > pos {
			pos = s.Range[1]
		}
	}
	if pos != int64(len(data)) {
		t.Fatalf("coverage ends at %d, want %d", pos, len(data))
	}
}

func TestAnalyzeSegmentTypes(t *testing.T) {
	data := writeTestFile(t, 50)
	report := analyze(t, data, Options{})

	types := segmentTypes(report.Segments)
	for _, want := range []string{TypeMagic, TypeFooterLength, TypeFooter, TypePage, TypePageData} {
		if types[want] == 0 {
			t.Errorf("no %q segment; got %v", want, types)
		}
	}
	if types[TypeMagic] != 2 {
		t.Errorf("magic segments = %d, want 2", types[TypeMagic])
	}
	if types[TypeError] != 0 {
		t.Errorf("unexpected error segments: %v", types)
	}
}

func TestAnalyzeFooterTree(t *testing.T) {
	data := writeTestFile(t, 50)
	report := analyze(t, data, Options{})

	footer := findSegment(report.Segments, TypeFooter)
	if footer == nil {
		t.Fatal("no footer segment")
	}

	names := make(map[string]bool)
	for _, child := range footer.Children {
		v, ok := child.Value.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := v["field_name"].(string); ok {
			names[name] = true
		}
	}
	for _, want := range []string{"version", "schema", "num_rows", "row_groups"} {
		if !names[want] {
			t.Errorf("footer missing field %q; got %v", want, names)
		}
	}

	// Footer children stay inside the footer's range.
	for _, child := range footer.Children {
		if child.Range[1] == child.Range[0] {
			continue // synthesized fields have no extent
		}
		if child.Range[0] < footer.Range[0] || child.Range[1] > footer.Range[1] {
			t.Errorf("child %v outside footer %v", child.Range, footer.Range)
		}
	}
}

func TestAnalyzeColumnsView(t *testing.T) {
	data := writeTestFile(t, 50)
	report := analyze(t, data, Options{})

	if len(report.Columns) != 3 {
		t.Fatalf("columns = %d, want 3", len(report.Columns))
	}
	paths := make(map[string]bool)
	for _, col := range report.Columns {
		paths[col.Path] = true
		if len(col.RowGroups) != report.Summary.NumRowGroups {
			t.Errorf("column %s has %d row groups, want %d", col.Path, len(col.RowGroups), report.Summary.NumRowGroups)
		}
		for _, rg := range col.RowGroups {
			if len(rg.DataPages) == 0 {
				t.Errorf("column %s row group %d has no data pages", col.Path, rg.Index)
			}
		}
	}
	for _, want := range []string{"id", "name", "score"} {
		if !paths[want] {
			t.Errorf("missing column %q; got %v", want, paths)
		}
	}
}

func TestAnalyzeEmitUndefinedOptional(t *testing.T) {
	data := writeTestFile(t, 10)

	plain := analyze(t, data, Options{})
	verbose := analyze(t, data, Options{EmitUndefinedOptional: true})

	if countTree(verbose.Segments) <= countTree(plain.Segments) {
		t.Errorf("opt-in tree (%d) not larger than default (%d)",
			countTree(verbose.Segments), countTree(plain.Segments))
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	data := writeTestFile(t, 25)
	a := analyze(t, data, Options{})
	b := analyze(t, data, Options{})
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated analysis of the same bytes differs")
	}
}

func TestAnalyzeBadLeadingMagic(t *testing.T) {
	data := writeTestFile(t, 10)
	copy(data[:4], "XXXX")

	report := analyze(t, data, Options{})

	first := report.Segments[0]
	if first.Type != TypeError || first.Range != [2]int64{0, 4} {
		t.Fatalf("first segment = %s %v, want error [0,4]", first.Type, first.Range)
	}
	// The rest of the analysis still runs.
	if findSegment(report.Segments, TypeFooter) == nil {
		t.Error("footer not decoded after magic mismatch")
	}
	if report.Summary.NumRows != 10 {
		t.Errorf("NumRows = %d, want 10", report.Summary.NumRows)
	}
}

func TestAnalyzeOversizedFooterLength(t *testing.T) {
	var data []byte
	data = append(data, Magic...)
	data = append(data, make([]byte, 16)...)
	data = binary.LittleEndian.AppendUint32(data, 1<<30)
	data = append(data, Magic...)

	report := analyze(t, data, Options{})

	if findSegment(report.Segments, TypeError) == nil {
		t.Fatal("expected an error segment for the oversized footer length")
	}
	if report.Summary.NumErrors == 0 {
		t.Error("NumErrors = 0")
	}
}

func TestAnalyzeTooSmall(t *testing.T) {
	report := analyze(t, []byte("PAR1xx"), Options{})

	if len(report.Segments) != 1 {
		t.Fatalf("segments = %v", segmentTypes(report.Segments))
	}
	s := report.Segments[0]
	if s.Type != TypeError || s.Range != [2]int64{0, 6} {
		t.Errorf("segment = %s %v", s.Type, s.Range)
	}
}

func TestAnalyzeGarbageTail(t *testing.T) {
	// Valid magic at both ends but a footer of garbage bytes. The footer
	// decode fails and becomes an error segment carrying partial children,
	// with coverage intact.
	var data []byte
	data = append(data, Magic...)
	data = append(data, bytes.Repeat([]byte{0xEE}, 32)...)
	data = binary.LittleEndian.AppendUint32(data, 32)
	data = append(data, Magic...)

	report := analyze(t, data, Options{})

	if report.Summary.NumErrors == 0 {
		t.Error("expected decode errors")
	}
	var pos int64
	for _, s := range report.Segments {
		if s.Range[0] > pos {
			t.Fatalf("gap before %d", s.Range[0])
		}
		if s.Range[1] > pos {
			pos = s.Range[1]
		}
	}
	if pos != int64(len(data)) {
		t.Errorf("coverage ends at %d, want %d", pos, len(data))
	}
}

func segmentTypes(segs []*segment.Segment) map[string]int {
	m := make(map[string]int)
	for _, s := range segs {
		m[s.Type]++
	}
	return m
}

func findSegment(segs []*segment.Segment, typ string) *segment.Segment {
	for _, s := range segs {
		if s.Type == typ {
			return s
		}
	}
	return nil
}

func countTree(segs []*segment.Segment) int {
	n := 0
	for _, s := range segs {
		n += 1 + countTree(s.Children)
	}
	return n
}
