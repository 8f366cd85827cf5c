// Command enrich-csv appends format, quantity and brand columns to a CSV of
// product names.
package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"sjsage522/formatworker/internal/catalog"
	"sjsage522/formatworker/internal/enrich"
	"sjsage522/formatworker/internal/format"
	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/services/store"

	"github.com/joho/godotenv"
)

var (
	inputPath  = flag.String("input", "productos.csv", "Input CSV file")
	outputPath = flag.String("output", "productos_formato.csv", "Output CSV file")
	nameColumn = flag.String("column", "nombre", "Column holding the product name")
	brandsPath = flag.String("brands", "", "Brand list, one per line (default built-in list)")
)

// appendedColumns are added after the input columns
var appendedColumns = []string{
	"formato",
	"categoria_formato",
	"cantidad_total",
	"unidad_estandar",
	"tipo_unidad",
	"marca",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func main() {
	godotenv.Load()
	flag.Parse()

	logger.Init()
	os.Exit(run())
}

// run returns the process exit code so deferred closes happen before exit
func run() int {
	log := logger.Default

	brandsFile := *brandsPath
	if brandsFile == "" {
		brandsFile = os.Getenv("BRANDS_FILE")
	}
	brands, err := format.LoadBrandMatcher(brandsFile)
	if err != nil {
		log.Error().Err(err).Str("path", brandsFile).Msg("Failed to load brands")
		return 1
	}

	rows, err := enrichFile(*inputPath, *outputPath, *nameColumn, enrich.NewEnricher(brands))
	if err != nil {
		log.Error().Err(err).Msg("Failed to enrich CSV")
		return 1
	}

	log.Info().
		Str("input", *inputPath).
		Str("output", *outputPath).
		Int("rows", rows).
		Msg("CSV enriched")
	return 0
}

// enrichFile runs enrichCSV from inputPath into a newly created outputPath
func enrichFile(inputPath, outputPath, column string, e *enrich.Enricher) (int, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}

	rows, err := enrichCSV(in, out, column, e)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	return rows, err
}

// enrichCSV copies in to out, appending the derived columns to every row.
// It returns the number of data rows written.
func enrichCSV(in io.Reader, out io.Writer, column string, e *enrich.Enricher) (int, error) {
	br := bufio.NewReader(in)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	nameIdx := -1
	for i, h := range header {
		if h == column {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return 0, fmt.Errorf("column %q not found in header", column)
	}

	if _, err := out.Write(utf8BOM); err != nil {
		return 0, err
	}
	w := csv.NewWriter(out)
	if err := w.Write(append(append([]string{}, header...), appendedColumns...)); err != nil {
		return 0, err
	}

	rows := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("read row %d: %w", rows+1, err)
		}

		var name string
		if nameIdx < len(record) {
			name = record[nameIdx]
		}
		rec := e.Enrich(catalog.Product{Name: name})
		extra := []string{
			rec.Format,
			string(rec.FormatCategory),
			store.FormatQuantity(rec.Quantity),
			string(rec.QuantityUnit),
			string(rec.UnitType),
			rec.BrandOrUnknown(),
		}
		if err := w.Write(append(record, extra...)); err != nil {
			return rows, err
		}
		rows++
	}

	w.Flush()
	return rows, w.Error()
}
