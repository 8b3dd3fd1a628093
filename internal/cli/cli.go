// Package cli implements the command-line interface for parquet-lens.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/eunmann/parquet-lens/internal/logctx"
	"github.com/eunmann/parquet-lens/pkg/humanfmt"
	"github.com/eunmann/parquet-lens/pkg/lens"
	"github.com/eunmann/parquet-lens/pkg/source"
)

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: parquet-lens <command> [options] <file|s3://bucket/key>\ncommands: analyze")
	}

	switch args[0] {
	case "analyze":
		return runAnalyze(args[1:], os.Stdout)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func runAnalyze(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "log every decoded construct while walking the file")
	emitUndefined := fs.Bool("emit-undefined-optional", false, "include optional footer fields absent from the file, with null values")
	segmentsOnly := fs.Bool("segments", false, "print only the segment tree, without summary or column map")
	human := fs.Bool("human", false, "print a human-readable summary instead of JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("exactly one file path or s3:// URL is required")
	}
	path := fs.Arg(0)

	logger := logctx.NewConfiguredLogger(*debug, *human)
	ctx := logctx.WithLogger(context.Background(), logger)

	src, err := openSource(ctx, path)
	if err != nil {
		return err
	}
	defer src.Close()

	start := time.Now()
	report, err := lens.Analyze(ctx, src, src.Size(), lens.Options{
		Debug:                 *debug,
		EmitUndefinedOptional: *emitUndefined,
	})
	if err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}
	logger.Debug().
		Str("path", path).
		Int("segments", len(report.Segments)).
		Str("elapsed", humanfmt.Duration(time.Since(start))).
		Msg("analysis complete")

	if *human {
		return writeHumanSummary(out, path, report)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if *segmentsOnly {
		return enc.Encode(report.Segments)
	}
	return enc.Encode(report)
}

func openSource(ctx context.Context, path string) (source.Source, error) {
	if source.IsS3URL(path) {
		return source.OpenS3(ctx, path)
	}
	return source.OpenFile(path)
}

func writeHumanSummary(out io.Writer, path string, report *lens.Report) error {
	s := report.Summary

	fmt.Fprintf(out, "%s\n", path)
	fmt.Fprintf(out, "  file size:        %s\n", humanfmt.Bytes(s.FileSize))
	fmt.Fprintf(out, "  rows:             %s\n", humanfmt.Count(s.NumRows))
	fmt.Fprintf(out, "  row groups:       %d\n", s.NumRowGroups)
	fmt.Fprintf(out, "  columns:          %d\n", s.NumColumns)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  pages:            %d (%d data v1, %d data v2, %d dictionary)\n",
		s.NumPages, s.NumV1DataPages, s.NumV2DataPages, s.NumDictPages)
	fmt.Fprintf(out, "  page headers:     %s\n", humanfmt.Bytes(s.PageHeaderSize))
	fmt.Fprintf(out, "  page data:        %s compressed, %s uncompressed (%s)\n",
		humanfmt.Bytes(s.CompressedPageDataSize),
		humanfmt.Bytes(s.UncompressedPageDataSize),
		humanfmt.Ratio(s.UncompressedPageDataSize, s.CompressedPageDataSize))
	if s.ColumnIndexSize > 0 {
		fmt.Fprintf(out, "  column indexes:   %s\n", humanfmt.Bytes(s.ColumnIndexSize))
	}
	if s.OffsetIndexSize > 0 {
		fmt.Fprintf(out, "  offset indexes:   %s\n", humanfmt.Bytes(s.OffsetIndexSize))
	}
	if s.BloomFilterSize > 0 {
		fmt.Fprintf(out, "  bloom filters:    %s\n", humanfmt.Bytes(s.BloomFilterSize))
	}
	fmt.Fprintf(out, "  footer:           %s (%s of file)\n",
		humanfmt.Bytes(s.FooterSize), humanfmt.Percent(s.FooterSize, s.FileSize))
	if s.NumErrors > 0 {
		fmt.Fprintf(out, "  decode errors:    %d\n", s.NumErrors)
	}

	if len(report.Columns) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  columns:")
		for _, col := range report.Columns {
			pages := 0
			dicts := 0
			for _, rg := range col.RowGroups {
				pages += len(rg.DataPages)
				if rg.DictionaryPage != nil {
					dicts++
				}
			}
			fmt.Fprintf(out, "    %-3d %s: %d data pages, %d dictionary pages\n",
				col.Index, col.Path, pages, dicts)
		}
	}
	return nil
}
