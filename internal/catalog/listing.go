package catalog

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/pkg/errors"
	"sjsage522/formatworker/services/cache"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

var (
	codePattern      = regexp.MustCompile(`:\s*(\d+)`)
	totalPagePattern = regexp.MustCompile(`^de\s+(\d+)$`)
)

// ListingSource scrapes paginated HTML category listings configured with selectors
type ListingSource struct {
	BaseSource
	Categories []Category
	MaxPages   int
	Selectors  Selectors

	now func() time.Time
}

// NewListingSource creates a new listing source
func NewListingSource(config ListingConfig, cacheSvc cache.CacheService, limiter *rate.Limiter) *ListingSource {
	name := config.Name
	if name == "" {
		name = config.Provider
	}
	return &ListingSource{
		BaseSource: BaseSource{
			Name:      name,
			Provider:  config.Provider,
			BaseURL:   config.BaseURL,
			CacheKey:  config.CacheKey,
			CacheSvc:  cacheSvc,
			BlockTime: time.Duration(config.BlockTime) * time.Second,
			Limiter:   limiter,
		},
		Categories: config.Categories,
		MaxPages:   config.MaxPages,
		Selectors:  config.Selectors,
		now:        time.Now,
	}
}

// FetchProducts scrapes every configured category. A failing category is
// logged and skipped; rate limiting aborts the whole run.
func (s *ListingSource) FetchProducts(ctx context.Context) ([]Product, error) {
	log := logger.ForSource(s.Name)

	var products []Product
	var lastErr error
	failed := 0
	for _, category := range s.Categories {
		found, err := s.fetchCategory(ctx, category)
		if err != nil {
			if errors.IsType(err, errors.ErrorTypeRateLimit) || ctx.Err() != nil {
				return products, err
			}
			log.Error().Err(err).Str("category", category.Name).Msg("Failed to scrape category")
			lastErr = err
			failed++
			continue
		}
		log.Info().Str("category", category.Name).Int("products", len(found)).Msg("Scraped category")
		products = append(products, found...)
	}

	if failed > 0 && failed == len(s.Categories) {
		return nil, lastErr
	}
	return products, nil
}

// fetchCategory walks the pages of one category
func (s *ListingSource) fetchCategory(ctx context.Context, category Category) ([]Product, error) {
	doc, err := s.fetchDocument(ctx, category.URL)
	if err != nil {
		return nil, err
	}

	pages := s.totalPages(doc)
	if s.MaxPages > 0 && pages > s.MaxPages {
		pages = s.MaxPages
	}

	products := s.parsePage(doc, category.Name)
	for page := 2; page <= pages; page++ {
		doc, err := s.fetchDocument(ctx, pageURL(category.URL, page))
		if err != nil {
			return products, fmt.Errorf("page %d: %w", page, err)
		}
		found := s.parsePage(doc, category.Name)
		if len(found) == 0 {
			logger.ForSource(s.Name).Warn().
				Str("category", category.Name).
				Int("page", page).
				Msg("No products on page")
		}
		products = append(products, found...)
	}
	return products, nil
}

func (s *ListingSource) fetchDocument(ctx context.Context, target string) (*goquery.Document, error) {
	body, err := s.fetchWithCache(ctx, target)
	if err != nil {
		return nil, err
	}
	return s.createDocument(body)
}

// parsePage extracts every product card of a listing page
func (s *ListingSource) parsePage(doc *goquery.Document, category string) []Product {
	scrapedAt := s.now()
	return s.processProducts(doc.Find(s.Selectors.ProductList), func(sel *goquery.Selection) *Product {
		p := s.processProduct(sel)
		if p != nil {
			p.Category = category
			p.ScrapedAt = scrapedAt
		}
		return p
	})
}

// totalPages reads the "de N" label of the paginator; 1 when absent
func (s *ListingSource) totalPages(doc *goquery.Document) int {
	if s.Selectors.Paginator == "" {
		return 1
	}
	total := 1
	doc.Find(s.Selectors.Paginator).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		m := totalPagePattern.FindStringSubmatch(strings.TrimSpace(sel.Text()))
		if m == nil {
			return true
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			total = n
		}
		return false
	})
	return total
}

// processProduct extracts a single product card
func (s *ListingSource) processProduct(sel *goquery.Selection) *Product {
	sels := s.Selectors

	var id string
	if sels.IDAttr != "" {
		id = strings.TrimPrefix(sel.AttrOr(sels.IDAttr, ""), sels.IDPrefix)
	}

	var code string
	if sels.Code != "" {
		if m := codePattern.FindStringSubmatch(sel.Find(sels.Code).First().Parent().Text()); m != nil {
			code = m[1]
		}
	}

	name := text(sel, sels.Name)
	if name == "" && code == "" {
		return nil
	}
	if code == "" {
		code = id
	}
	if id == "" {
		id = code
	}

	product := &Product{
		ID:            id,
		Code:          code,
		Brand:         text(sel, sels.Brand),
		Name:          name,
		Price:         text(sel, sels.Price),
		PreviousPrice: text(sel, sels.PreviousPrice),
		UnitPrice:     text(sel, sels.UnitPrice),
		Promotion:     text(sel, sels.Promotion),
		Provider:      s.Provider,
	}
	if sels.Sponsored != "" {
		product.Sponsored = sel.Find(sels.Sponsored).Length() > 0
	}
	if sels.Image != "" {
		product.ImageURL = sel.Find(sels.Image).First().AttrOr("src", "")
	}
	if sels.Link != "" {
		if href := strings.TrimSpace(sel.Find(sels.Link).First().AttrOr("href", "")); href != "" {
			product.URL = s.ResolveURL(href)
		}
	}
	return product
}

// text returns the trimmed text of the first element matching selector
func text(sel *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.Join(strings.Fields(sel.Find(selector).First().Text()), " ")
}

// pageURL sets the page query parameter of a listing URL
func pageURL(listing string, page int) string {
	u, err := url.Parse(listing)
	if err != nil {
		return listing
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}
