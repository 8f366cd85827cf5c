// Package enrich attaches format, quantity and brand data to scraped products.
package enrich

import (
	"context"
	"sync"

	"sjsage522/formatworker/internal/catalog"
	"sjsage522/formatworker/internal/format"
)

// Record is a product together with everything derived from its name
type Record struct {
	catalog.Product
	Format         string          `json:"format,omitempty"`
	FormatCategory format.Category `json:"format_category"`
	Quantity       *float64        `json:"quantity,omitempty"`
	QuantityUnit   format.Unit     `json:"quantity_unit,omitempty"`
	UnitType       format.Unit     `json:"unit_type,omitempty"`
	DetectedBrand  string          `json:"detected_brand,omitempty"`
}

// BrandOrUnknown returns the detected brand or format.UnknownBrand
func (r Record) BrandOrUnknown() string {
	if r.DetectedBrand == "" {
		return format.UnknownBrand
	}
	return r.DetectedBrand
}

// Enricher derives records from products. It is safe for concurrent use.
type Enricher struct {
	brands *format.BrandMatcher
}

// NewEnricher creates an enricher matching brands with m; a nil matcher
// uses the built-in brand list.
func NewEnricher(m *format.BrandMatcher) *Enricher {
	if m == nil {
		m = format.NewBrandMatcher(format.DefaultBrands())
	}
	return &Enricher{brands: m}
}

// Enrich parses the product name, falling back to the description when the
// name carries no format.
func (e *Enricher) Enrich(p catalog.Product) Record {
	res := format.Parse(p.Name)
	if res.Token == "" && p.Description != "" {
		res = format.Parse(p.Description)
	}

	rec := Record{
		Product:        p,
		Format:         res.Token,
		FormatCategory: res.Category,
		UnitType:       res.UnitType,
		DetectedBrand:  p.Brand,
	}
	if res.HasQuantity {
		q := res.Quantity
		rec.Quantity = &q
		rec.QuantityUnit = res.Unit
	}
	if rec.DetectedBrand == "" {
		if brand, ok := e.brands.Match(p.Name); ok {
			rec.DetectedBrand = brand
		}
	}
	return rec
}

// EnrichAll enriches products with at most workers goroutines, keeping the
// input order. Products not handed out before ctx is done carry no format.
func (e *Enricher) EnrichAll(ctx context.Context, products []catalog.Product, workers int) []Record {
	if workers < 1 {
		workers = 1
	}
	records := make([]Record, len(products))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				records[idx] = e.Enrich(products[idx])
			}
		}()
	}

	i := 0
feed:
	for ; i < len(products); i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for ; i < len(products); i++ {
		records[i] = Record{Product: products[i], FormatCategory: format.CategoryNone}
	}
	return records
}
