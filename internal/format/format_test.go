package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFormat(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{"container with volume", "cerveza budweiser lager lata 33 cl", "lata 33 cl"},
		{"multiple with units", "toallitas bebe fresh aloe vera carrefour baby 6x80 uds", "6x80 uds"},
		{"bare volume at end", "agua mineral bezoya 15 l", "15 l"},
		{"complex pack is lower-cased", "Cerveza PACK de 12 latas de 33 cl", "pack de 12 latas de 33 cl"},
		{"mini pack without sub-quantity", "refresco mini pack 10 latas 20 cl", "mini pack 10 latas"},
		{"pack of arbitrary noun", "infusión pack de 4 bolsitas de 100 g", "pack de 4 bolsitas de 100 g"},
		{"pack of generic units", "yogur pack de 2 unidades de 250 ml", "pack de 2 unidades de 250 ml"},
		{"descriptor count", "papel higiénico 12 rollos", "12 rollos"},
		{"bare count", "galletas rellenas 12 uds", "12 uds"},
		{"pack wins over earlier volume", "refresco 33 cl pack 6 latas", "pack 6 latas"},
		{"decimal comma", "aceite de oliva 1,5 l", "1,5 l"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := ExtractFormat(tc.raw)
			require.True(t, ok)
			assert.Equal(t, tc.expected, token)
		})
	}
}

func TestExtractFormat_NoMatch(t *testing.T) {
	for _, raw := range []string{"", "   ", "pan de molde integral"} {
		token, ok := ExtractFormat(raw)
		assert.False(t, ok, raw)
		assert.Empty(t, token)
	}
}

func TestExtractAllFormats(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"volume and pack", "agua 1,5 l pack 6 botellas", []string{"1,5 l", "pack 6 botellas"}},
		{"multiple with units", "toallitas bebe 6x80 uds", []string{"6x80 uds"}},
		{"gr spelling", "queso curado 500 gr", []string{"500 g"}},
		{"unit glued to a word", "leche 1 litro", []string{"1 l"}},
		{"left to right order", "bebida 6 uds de 33 cl", []string{"6 uds", "33 cl"}},
		{"no boundary after unit", "12 galletas", []string{"12 g"}},
		{"empty", "", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			formats := ExtractAllFormats(tc.raw)
			assert.NotNil(t, formats)
			assert.Equal(t, tc.expected, formats)
		})
	}
}

func TestExtractAllFormats_BroaderThanSingleMatch(t *testing.T) {
	testCases := []struct {
		raw    string
		single string
		found  bool
		all    []string
	}{
		// Single match follows rule priority; all matches follow position
		{"bebida 6 uds de 33 cl", "33 cl", true, []string{"6 uds", "33 cl"}},
		{"agua 1,5 l pack 6 botellas", "pack 6 botellas", true, []string{"1,5 l", "pack 6 botellas"}},
		{"queso curado 500 gr", "500 gr", true, []string{"500 g"}},
		{"12 galletas", "", false, []string{"12 g"}},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			token, ok := ExtractFormat(tc.raw)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.single, token)
			assert.Equal(t, tc.all, ExtractAllFormats(tc.raw))
		})
	}
}

func TestClassifyFormat(t *testing.T) {
	testCases := []struct {
		token    string
		expected Category
	}{
		{"", CategoryNone},
		{"pack de 12 latas de 33 cl", CategoryPack},
		{"lata 33 cl", CategoryContainer},
		{"sobres 10 g", CategoryContainer},
		{"6x80 uds", CategoryMultiple},
		{"1,5 l", CategoryVolume},
		{"500 g", CategoryWeight},
		{"80 uds", CategoryUnits},
		{"12 rollos", CategoryOther},
		{"x72", CategoryOther},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ClassifyFormat(tc.token), tc.token)
	}
}

func TestComputeQuantity(t *testing.T) {
	testCases := []struct {
		token string
		value float64
		unit  Unit
	}{
		{"80 ud", 80, UnitUnits},
		{"6x80 uds", 480, UnitUnits},
		{"6x80", 480, UnitUnits},
		{"pack de 3 paquetes de 80 ud", 240, UnitUnits},
		{"pack de 3 unidades de 200 ml", 0.6, UnitLiters},
		{"pack de 2 unidades de 235 g", 0.47, UnitKilograms},
		{"1500 ml", 1.5, UnitLiters},
		{"36 cl", 0.36, UnitLiters},
		{"pack de 12 latas de 33 cl", 3.96, UnitLiters},
		{"pack de 4 bolsitas de 100 g", 0.4, UnitKilograms},
		{"pack de 6 latas", 6, UnitUnits},
		{"pack 6 botellas", 6, UnitUnits},
		{"x72", 72, UnitUnits},
		{"2x1,5 l", 3, UnitLiters},
		{"12 rollos", 12, UnitUnits},
		{"1 paquete", 1, UnitUnits},
		{"lata 33 cl", 0.33, UnitLiters},
		{"botella de 1,5 l", 1.5, UnitLiters},
		{"500 g", 0.5, UnitKilograms},
		{"1 kg", 1, UnitKilograms},
		{"100 gr", 0.1, UnitKilograms},
		{"2,5 ud", 2, UnitUnits},
		{"3,5 ud", 4, UnitUnits},
		{"  PACK DE 12 LATAS DE 33 CL ", 3.96, UnitLiters},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			q, ok := ComputeQuantity(tc.token)
			require.True(t, ok)
			assert.Equal(t, tc.value, q.Value)
			assert.Equal(t, tc.unit, q.Unit)
		})
	}
}

func TestComputeQuantity_NoValue(t *testing.T) {
	for _, token := range []string{"", "  ", "otro", "sin cantidad"} {
		q, ok := ComputeQuantity(token)
		assert.False(t, ok, token)
		assert.Equal(t, Quantity{}, q)
	}
}

func TestComputeQuantity_Deterministic(t *testing.T) {
	for _, token := range []string{"pack de 12 latas de 33 cl", "6x80 uds", "36 cl"} {
		first, _ := ComputeQuantity(token)
		second, _ := ComputeQuantity(token)
		assert.Equal(t, first, second)
	}
}

func TestInferUnitType(t *testing.T) {
	testCases := []struct {
		token    string
		expected Unit
		ok       bool
	}{
		{"1500 ml", UnitLiters, true},
		{"1500ml", UnitLiters, true},
		{"lata 33 cl", UnitLiters, true},
		{"500 g", UnitKilograms, true},
		{"80 uds", UnitUnits, true},
		{"12 rollos", "", false},
		{"latas", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		unit, ok := InferUnitType(tc.token)
		assert.Equal(t, tc.ok, ok, tc.token)
		assert.Equal(t, tc.expected, unit, tc.token)
	}
}

func TestInferUnitType_AgreesOnSingleUnitTokens(t *testing.T) {
	for _, token := range []string{"80 ud", "1500 ml", "36 cl", "1 l", "500 g", "2 kg", "6x80 uds", "lata 33 cl", "pack de 3 paquetes de 80 ud"} {
		q, ok := ComputeQuantity(token)
		require.True(t, ok, token)
		unit, ok := InferUnitType(token)
		require.True(t, ok, token)
		assert.Equal(t, q.Unit, unit, token)
	}
}

func TestClassifyAfterExtract(t *testing.T) {
	names := []string{
		"cerveza lata 33 cl",
		"toallitas 6x80 uds",
		"pan de molde",
		"",
		"detergente 40 lavados",
	}
	for _, name := range names {
		token, ok := ExtractFormat(name)
		category := ClassifyFormat(token)
		if ok {
			assert.NotEqual(t, CategoryNone, category, name)
		} else {
			assert.Equal(t, CategoryNone, category, name)
		}
	}
}

func TestParse(t *testing.T) {
	res := Parse("Cerveza Mahou pack de 12 latas de 33 cl")
	assert.Equal(t, "pack de 12 latas de 33 cl", res.Token)
	assert.Equal(t, CategoryPack, res.Category)
	assert.True(t, res.HasQuantity)
	assert.Equal(t, 3.96, res.Quantity)
	assert.Equal(t, UnitLiters, res.Unit)
	assert.Equal(t, UnitLiters, res.UnitType)

	empty := Parse("")
	assert.Equal(t, Result{Category: CategoryNone}, empty)
}
