package enrich

import (
	"context"
	"fmt"
	"testing"

	"sjsage522/formatworker/internal/catalog"
	"sjsage522/formatworker/internal/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnricher() *Enricher {
	return NewEnricher(format.NewBrandMatcher([]string{"Bezoya", "Nivea", "Nivea Men", "Hacendado"}))
}

func TestEnrich(t *testing.T) {
	e := testEnricher()

	tests := []struct {
		name          string
		product       catalog.Product
		expectedToken string
		expectedCat   format.Category
		expectedQty   float64
		expectedUnit  format.Unit
		expectedBrand string
	}{
		{
			name:          "volume with matched brand",
			product:       catalog.Product{Name: "Agua mineral Bezoya 1,5 l"},
			expectedToken: "1,5 l",
			expectedCat:   format.CategoryVolume,
			expectedQty:   1.5,
			expectedUnit:  format.UnitLiters,
			expectedBrand: "Bezoya",
		},
		{
			name:          "page brand wins",
			product:       catalog.Product{Name: "Gel Nivea Men 250 ml", Brand: "Beiersdorf"},
			expectedToken: "250 ml",
			expectedCat:   format.CategoryVolume,
			expectedQty:   0.25,
			expectedUnit:  format.UnitLiters,
			expectedBrand: "Beiersdorf",
		},
		{
			name:          "longest brand matched",
			product:       catalog.Product{Name: "Desodorante Nivea Men 6x80 uds"},
			expectedToken: "6x80 uds",
			expectedCat:   format.CategoryMultiple,
			expectedQty:   480,
			expectedUnit:  format.UnitUnits,
			expectedBrand: "Nivea Men",
		},
		{
			name:          "description fallback",
			product:       catalog.Product{Name: "Agua mineral Hacendado", Description: "pack de 6 unidades de 1.5 l"},
			expectedToken: "pack de 6 unidades de 1.5 l",
			expectedCat:   format.CategoryPack,
			expectedQty:   9,
			expectedUnit:  format.UnitLiters,
			expectedBrand: "Hacendado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.Enrich(tt.product)
			assert.Equal(t, tt.expectedToken, rec.Format)
			assert.Equal(t, tt.expectedCat, rec.FormatCategory)
			require.NotNil(t, rec.Quantity)
			assert.InDelta(t, tt.expectedQty, *rec.Quantity, 1e-9)
			assert.Equal(t, tt.expectedUnit, rec.QuantityUnit)
			assert.Equal(t, tt.expectedBrand, rec.DetectedBrand)
			assert.Equal(t, tt.product, rec.Product)
		})
	}
}

func TestEnrich_NoFormat(t *testing.T) {
	rec := testEnricher().Enrich(catalog.Product{Name: "Fregona clásica"})

	assert.Empty(t, rec.Format)
	assert.Equal(t, format.CategoryNone, rec.FormatCategory)
	assert.Nil(t, rec.Quantity)
	assert.Empty(t, rec.DetectedBrand)
	assert.Equal(t, format.UnknownBrand, rec.BrandOrUnknown())
}

func TestNewEnricher_DefaultBrands(t *testing.T) {
	rec := NewEnricher(nil).Enrich(catalog.Product{Name: "Agua mineral Bezoya 1,5 l"})
	assert.Equal(t, "Bezoya", rec.DetectedBrand)
}

func TestEnrichAll_KeepsOrder(t *testing.T) {
	products := make([]catalog.Product, 50)
	for i := range products {
		products[i] = catalog.Product{ID: fmt.Sprint(i), Name: fmt.Sprintf("Leche %d ml", (i+1)*100)}
	}

	records := testEnricher().EnrichAll(context.Background(), products, 4)
	require.Len(t, records, len(products))
	for i, rec := range records {
		assert.Equal(t, fmt.Sprint(i), rec.ID)
		assert.Equal(t, fmt.Sprintf("%d ml", (i+1)*100), rec.Format)
	}
}

func TestEnrichAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	products := []catalog.Product{{ID: "1", Name: "Agua 1 l"}, {ID: "2", Name: "Agua 2 l"}}
	records := testEnricher().EnrichAll(ctx, products, 0)

	require.Len(t, records, 2)
	for i, rec := range records {
		assert.Equal(t, products[i].ID, rec.ID)
	}
}
