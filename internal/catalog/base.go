package catalog

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"sjsage522/formatworker/helpers"
	"sjsage522/formatworker/pkg/errors"
	"sjsage522/formatworker/services/cache"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// BaseSource provides common functionality for all sources
type BaseSource struct {
	Name      string
	Provider  string
	BaseURL   string
	CacheKey  string
	CacheSvc  cache.CacheService
	BlockTime time.Duration
	Limiter   *rate.Limiter

	// fetch is swapped in tests
	fetch func(ctx context.Context, url string) (io.Reader, error)
}

// fetchWithCache fetches a URL honouring the rate-limit block and the request limiter
func (b *BaseSource) fetchWithCache(ctx context.Context, target string) (io.Reader, error) {
	if b.CacheSvc != nil && b.CacheKey != "" {
		if _, err := b.CacheSvc.Get(b.CacheKey); err == nil {
			return nil, errors.NewRateLimit(b.Provider, b.BlockTime)
		}
	}

	if b.Limiter != nil {
		if err := b.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	fetch := b.fetch
	if fetch == nil {
		fetch = helpers.FetchWithRandomHeaders
	}

	body, err := fetch(ctx, target)
	if err != nil {
		if strings.HasPrefix(err.Error(), helpers.ErrRateLimitedPrefix) {
			if b.CacheSvc != nil && b.CacheKey != "" && b.BlockTime > 0 {
				b.CacheSvc.Set(b.CacheKey, []byte(fmt.Sprintf("%d", int(b.BlockTime/time.Second))), b.BlockTime)
			}
			return nil, errors.NewRateLimit(b.Provider, b.BlockTime)
		}
		return nil, errors.NewNetwork(b.Provider, "fetch "+target, err)
	}

	return body, nil
}

// createDocument creates a goquery document from a reader
func (b *BaseSource) createDocument(reader io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, errors.NewParsing(b.Provider, "HTML parse", err)
	}
	return doc, nil
}

// processProducts processes product cards in parallel, keeping page order
func (b *BaseSource) processProducts(selections *goquery.Selection, processor func(*goquery.Selection) *Product) []Product {
	results := make([]*Product, selections.Length())
	var wg sync.WaitGroup

	selections.Each(func(i int, s *goquery.Selection) {
		wg.Add(1)
		go func(i int, s *goquery.Selection) {
			defer wg.Done()
			results[i] = processor(s)
		}(i, s)
	})
	wg.Wait()

	products := make([]Product, 0, len(results))
	for _, p := range results {
		if p != nil {
			products = append(products, *p)
		}
	}
	return products
}

// ResolveURL makes a relative link absolute against BaseURL
func (b *BaseSource) ResolveURL(link string) string {
	if link == "" || b.BaseURL == "" {
		return link
	}
	base, err := url.Parse(b.BaseURL)
	if err != nil {
		return link
	}
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	return base.ResolveReference(ref).String()
}

// GetName returns the source's name
func (b *BaseSource) GetName() string {
	return b.Name
}

// GetProvider returns the provider name
func (b *BaseSource) GetProvider() string {
	return b.Provider
}
