// Package store writes enriched products to CSV files and SQLite databases.
package store

import (
	"context"
	"strconv"

	"sjsage522/formatworker/internal/enrich"
)

// Sink receives every batch of enriched products
type Sink interface {
	// Write stores a batch of records
	Write(ctx context.Context, records []enrich.Record) error

	// Close releases the sink
	Close() error
}

// timeLayout is the extraction timestamp format of the exports
const timeLayout = "2006-01-02 15:04:05"

// Columns is the column order of every export
var Columns = []string{
	"supermercado",
	"codigo_producto",
	"marca",
	"nombre",
	"categoria",
	"precio_actual",
	"precio_anterior",
	"precio_por_unidad",
	"promocion",
	"patrocinado",
	"imagen_url",
	"producto_url",
	"fecha_extraccion",
	"formato",
	"categoria_formato",
	"cantidad_total",
	"unidad_estandar",
	"tipo_unidad",
	"marca_detectada",
}

// row renders a record in Columns order
func row(r enrich.Record) []string {
	sponsored := "No"
	if r.Sponsored {
		sponsored = "Sí"
	}
	var scrapedAt string
	if !r.ScrapedAt.IsZero() {
		scrapedAt = r.ScrapedAt.Format(timeLayout)
	}
	return []string{
		r.Provider,
		r.Code,
		r.Brand,
		r.Name,
		r.Category,
		r.Price,
		r.PreviousPrice,
		r.UnitPrice,
		r.Promotion,
		sponsored,
		r.ImageURL,
		r.URL,
		scrapedAt,
		r.Format,
		string(r.FormatCategory),
		FormatQuantity(r.Quantity),
		string(r.QuantityUnit),
		string(r.UnitType),
		r.BrandOrUnknown(),
	}
}

// FormatQuantity renders a quantity with the shortest exact representation;
// nil is the empty string
func FormatQuantity(q *float64) string {
	if q == nil {
		return ""
	}
	return strconv.FormatFloat(*q, 'f', -1, 64)
}
