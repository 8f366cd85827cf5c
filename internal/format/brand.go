package format

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// UnknownBrand is written by exporters when no known brand matches.
const UnknownBrand = "Desconocida"

type brandEntry struct {
	name  string
	lower string
}

// BrandMatcher finds known brands inside product names. It is immutable once
// built and safe for concurrent use.
type BrandMatcher struct {
	brands []brandEntry
}

// NewBrandMatcher builds a matcher from brands. Blank and case-insensitive
// duplicate entries are dropped; the rest are ordered longest first so the
// most specific brand wins ("Nivea Men" before "Nivea").
func NewBrandMatcher(brands []string) *BrandMatcher {
	seen := make(map[string]struct{}, len(brands))
	entries := make([]brandEntry, 0, len(brands))
	for _, b := range brands {
		b = strings.TrimSpace(b)
		lower := strings.ToLower(b)
		if lower == "" {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		entries = append(entries, brandEntry{name: b, lower: lower})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return utf8.RuneCountInString(entries[i].lower) > utf8.RuneCountInString(entries[j].lower)
	})
	return &BrandMatcher{brands: entries}
}

// Match returns the longest known brand contained in name, compared
// case-insensitively.
func (m *BrandMatcher) Match(name string) (string, bool) {
	lower := strings.ToLower(name)
	if strings.TrimSpace(lower) == "" {
		return "", false
	}
	for _, b := range m.brands {
		if strings.Contains(lower, b.lower) {
			return b.name, true
		}
	}
	return "", false
}

// Len returns the number of distinct brands.
func (m *BrandMatcher) Len() int {
	return len(m.brands)
}

// LoadBrands reads one brand per line. Blank lines and lines starting with
// '#' are skipped.
func LoadBrands(r io.Reader) ([]string, error) {
	var brands []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		brands = append(brands, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return brands, nil
}

// DefaultBrands returns a copy of the built-in brand list.
func DefaultBrands() []string {
	out := make([]string, len(defaultBrands))
	copy(out, defaultBrands)
	return out
}

// LoadBrandMatcher builds a matcher from the brand file at path, or from the
// built-in list when path is empty.
func LoadBrandMatcher(path string) (*BrandMatcher, error) {
	if path == "" {
		return NewBrandMatcher(DefaultBrands()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	brands, err := LoadBrands(f)
	if err != nil {
		return nil, err
	}
	return NewBrandMatcher(brands), nil
}
