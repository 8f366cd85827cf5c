// Command category-map resolves Mercadona category URLs to their group and
// category names.
package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strings"

	"sjsage522/formatworker/config"
	"sjsage522/formatworker/internal/catalog"
	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/services/cache"

	"github.com/joho/godotenv"
)

var (
	urlsPath   = flag.String("urls", "", "File with one category URL per line (default stdin)")
	outputPath = flag.String("output", "mercadona_categorias.csv", "Output CSV file")
)

func main() {
	godotenv.Load()
	flag.Parse()

	logger.Init()
	log := logger.Default
	cfg := config.LoadConfig()

	var in io.Reader = os.Stdin
	if *urlsPath != "" {
		f, err := os.Open(*urlsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open URL list")
		}
		defer f.Close()
		in = f
	}
	urls, err := readURLs(in)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read URL list")
	}

	source := catalog.NewMercadonaSource(cfg.MercadonaAPIURL, nil, cache.New(cfg.MemcacheAddr), nil)
	categories, err := source.FetchCategoryMap(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch category map")
	}
	log.Info().Int("categories", len(categories)).Msg("Fetched category map")

	out, err := os.Create(*outputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create output")
	}
	defer out.Close()

	missing, err := writeCategories(out, urls, categories)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to write categories")
	}
	for _, u := range missing {
		log.Warn().Str("url", u).Msg("Category not found in API")
	}

	log.Info().
		Str("output", *outputPath).
		Int("urls", len(urls)).
		Int("missing", len(missing)).
		Msg("Category map written")
}

// readURLs returns the non-blank lines of in
func readURLs(in io.Reader) ([]string, error) {
	var urls []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" && !strings.HasPrefix(line, "#") {
			urls = append(urls, line)
		}
	}
	return urls, sc.Err()
}

// writeCategories writes URL,GrupoPrincipal,NombreCategoria rows and returns
// the URLs absent from the map
func writeCategories(out io.Writer, urls []string, categories catalog.CategoryMap) ([]string, error) {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"URL", "GrupoPrincipal", "NombreCategoria"}); err != nil {
		return nil, err
	}

	var missing []string
	for _, u := range urls {
		info, ok := categories.Lookup(u)
		if !ok {
			missing = append(missing, u)
			info = catalog.CategoryInfo{Parent: "ERROR", Name: "ID no encontrado en API"}
		}
		if err := w.Write([]string{u, info.Parent, info.Name}); err != nil {
			return missing, err
		}
	}

	w.Flush()
	return missing, w.Error()
}
