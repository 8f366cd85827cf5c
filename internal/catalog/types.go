package catalog

import (
	"context"
	"time"
)

// Product is a product as scraped from a supermarket listing
type Product struct {
	ID            string    `json:"id"`
	Code          string    `json:"code,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	Price         string    `json:"price,omitempty"`
	PreviousPrice string    `json:"previous_price,omitempty"`
	UnitPrice     string    `json:"unit_price,omitempty"`
	Promotion     string    `json:"promotion,omitempty"`
	Sponsored     bool      `json:"sponsored"`
	ImageURL      string    `json:"image_url,omitempty"`
	URL           string    `json:"url,omitempty"`
	Provider      string    `json:"provider"`
	ScrapedAt     time.Time `json:"scraped_at"`
}

// Source is a supermarket catalog that lists products
type Source interface {
	// FetchProducts retrieves every product the source is configured for
	FetchProducts(ctx context.Context) ([]Product, error)

	// GetName returns the source's name for logging and identification
	GetName() string

	// GetProvider returns the supermarket the products belong to
	GetProvider() string
}

// Category is a listing page to scrape
type Category struct {
	Name string
	URL  string
}

// Selectors contains CSS selectors for a product card and the page around it
type Selectors struct {
	ProductList   string
	Name          string
	Brand         string
	Code          string // element whose parent text holds the product code
	Price         string
	PreviousPrice string
	UnitPrice     string
	Promotion     string
	Image         string
	Link          string
	Sponsored     string
	Paginator     string // elements whose text reads "de N"
	IDAttr        string
	IDPrefix      string
}

// ListingConfig contains configuration for an HTML listing source
type ListingConfig struct {
	Name       string
	Provider   string
	BaseURL    string
	CacheKey   string
	BlockTime  int // seconds
	MaxPages   int // 0 means every page the paginator reports
	Categories []Category
	Selectors  Selectors
}
