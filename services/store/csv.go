package store

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"sjsage522/formatworker/internal/enrich"
	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/pkg/errors"
)

// utf8BOM lets spreadsheet tools detect the encoding
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSink rewrites a CSV file with the latest batch on every Write
type CSVSink struct {
	path string
}

// NewCSVSink creates a sink writing to path
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Write replaces the file with a header and one row per record
func (s *CSVSink) Write(ctx context.Context, records []enrich.Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.NewStore("csv", "create directory", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return errors.NewStore("csv", "create "+s.path, err)
	}
	defer f.Close()

	if err := WriteCSV(ctx, f, records); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.NewStore("csv", "close "+s.path, err)
	}

	logger.ForStore().Info().
		Str("path", s.path).
		Int("rows", len(records)).
		Msg("CSV written")
	return nil
}

// Close is a no-op; every Write closes its file
func (s *CSVSink) Close() error {
	return nil
}

// WriteCSV writes the BOM, the header and the records to out
func WriteCSV(ctx context.Context, out io.Writer, records []enrich.Record) error {
	if _, err := out.Write(utf8BOM); err != nil {
		return errors.NewStore("csv", "write BOM", err)
	}

	w := csv.NewWriter(out)
	if err := w.Write(Columns); err != nil {
		return errors.NewStore("csv", "write header", err)
	}
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.Write(row(r)); err != nil {
			return errors.NewStore("csv", "write row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.NewStore("csv", "flush", err)
	}
	return nil
}
