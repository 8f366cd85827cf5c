package format

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandMatcher_Match(t *testing.T) {
	m := NewBrandMatcher(DefaultBrands())

	testCases := []struct {
		name     string
		expected string
		ok       bool
	}{
		{"Agua mineral Bezoya 1,5 l", "Bezoya", true},
		{"crema nivea men 150 ml", "Nivea Men", true},
		{"Peques 3 Puleva leche de crecimiento", "Peques 3 Puleva", true},
		{"pan de molde", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		brand, ok := m.Match(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.expected, brand, tc.name)
	}
}

func TestNewBrandMatcher_DropsBlanksAndDuplicates(t *testing.T) {
	m := NewBrandMatcher([]string{"Fanta", "fanta", " ", "", "Fanta Zero"})
	assert.Equal(t, 2, m.Len())

	brand, ok := m.Match("refresco fanta zero naranja")
	require.True(t, ok)
	assert.Equal(t, "Fanta Zero", brand)
}

func TestNewBrandMatcher_DoesNotAliasInput(t *testing.T) {
	brands := []string{"Valor"}
	m := NewBrandMatcher(brands)
	brands[0] = "Milka"

	brand, ok := m.Match("chocolate valor 70%")
	require.True(t, ok)
	assert.Equal(t, "Valor", brand)
}

func TestLoadBrands(t *testing.T) {
	input := "# bebidas\nBezoya\n\n  Font Vella  \n"
	brands, err := LoadBrands(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bezoya", "Font Vella"}, brands)
}

func TestDefaultBrands_ReturnsCopy(t *testing.T) {
	a := DefaultBrands()
	a[0] = "changed"
	assert.NotEqual(t, "changed", DefaultBrands()[0])
}

func TestLoadBrandMatcher(t *testing.T) {
	m, err := LoadBrandMatcher("")
	require.NoError(t, err)
	assert.Equal(t, NewBrandMatcher(DefaultBrands()).Len(), m.Len())

	path := filepath.Join(t.TempDir(), "marcas.txt")
	require.NoError(t, os.WriteFile(path, []byte("Bezoya\nbezoya\nNivea\n"), 0o644))
	m, err = LoadBrandMatcher(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	_, err = LoadBrandMatcher(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
