package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sjsage522/formatworker/internal/catalog"
	"sjsage522/formatworker/internal/enrich"
	"sjsage522/formatworker/internal/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quantity(v float64) *float64 { return &v }

func testRecords() []enrich.Record {
	scrapedAt := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	return []enrich.Record{
		{
			Product: catalog.Product{
				Provider:  "Consum",
				Code:      "7002",
				Brand:     "Mahou",
				Name:      "Cerveza pack de 12 latas de 33 cl",
				Category:  "Bebidas",
				Price:     "9,99 €",
				Sponsored: true,
				ScrapedAt: scrapedAt,
			},
			Format:         "pack de 12 latas de 33 cl",
			FormatCategory: format.CategoryPack,
			Quantity:       quantity(3.96),
			QuantityUnit:   format.UnitLiters,
			UnitType:       format.UnitLiters,
			DetectedBrand:  "Mahou",
		},
		{
			Product: catalog.Product{
				Provider: "Consum",
				Code:     "8001",
				Name:     "Fregona clásica",
				Category: "Droguería",
			},
			FormatCategory: format.CategoryNone,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(context.Background(), &buf, testRecords()))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, utf8BOM))

	rows, err := csv.NewReader(bytes.NewReader(data[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])

	first := rows[1]
	assert.Equal(t, "Consum", first[0])
	assert.Equal(t, "7002", first[1])
	assert.Equal(t, "Sí", first[9])
	assert.Equal(t, "2024-03-05 10:30:00", first[12])
	assert.Equal(t, "pack de 12 latas de 33 cl", first[13])
	assert.Equal(t, "pack", first[14])
	assert.Equal(t, "3.96", first[15])
	assert.Equal(t, "L", first[16])
	assert.Equal(t, "Mahou", first[18])

	second := rows[2]
	assert.Equal(t, "No", second[9])
	assert.Equal(t, "", second[12])
	assert.Equal(t, "sin_formato", second[14])
	assert.Equal(t, "", second[15])
	assert.Equal(t, format.UnknownBrand, second[18])
}

func TestCSVSink_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "productos.csv")
	sink := NewCSVSink(path)
	defer sink.Close()

	require.NoError(t, sink.Write(context.Background(), testRecords()))
	// A second write replaces the previous batch
	require.NoError(t, sink.Write(context.Background(), testRecords()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSQLiteSink_Upsert(t *testing.T) {
	ctx := context.Background()
	sink, err := NewSQLiteSink(ctx, filepath.Join(t.TempDir(), "productos.sqlite"))
	require.NoError(t, err)
	defer sink.Close()

	records := testRecords()
	require.NoError(t, sink.Write(ctx, records))

	records[0].Price = "8,49 €"
	require.NoError(t, sink.Write(ctx, records[:1]))

	var count int
	require.NoError(t, sink.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM productos`).Scan(&count))
	assert.Equal(t, 2, count)

	var price string
	var sponsored int
	var total float64
	err = sink.DB().QueryRowContext(ctx,
		`SELECT precio_actual, patrocinado, cantidad_total FROM productos WHERE supermercado = ? AND codigo_producto = ?`,
		"Consum", "7002").Scan(&price, &sponsored, &total)
	require.NoError(t, err)
	assert.Equal(t, "8,49 €", price)
	assert.Equal(t, 1, sponsored)
	assert.InDelta(t, 3.96, total, 1e-9)

	var missing *float64
	err = sink.DB().QueryRowContext(ctx,
		`SELECT cantidad_total FROM productos WHERE codigo_producto = ?`, "8001").Scan(&missing)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSQLiteSink_SkipsRecordsWithoutCode(t *testing.T) {
	ctx := context.Background()
	sink, err := NewSQLiteSink(ctx, filepath.Join(t.TempDir(), "productos.sqlite"))
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, sink.Write(ctx, []enrich.Record{{Product: catalog.Product{Provider: "Consum", Name: "Sin código"}}}))

	var count int
	require.NoError(t, sink.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM productos`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "", FormatQuantity(nil))
	assert.Equal(t, "480", FormatQuantity(quantity(480)))
	assert.Equal(t, "0.47", FormatQuantity(quantity(0.47)))
}
