package catalog

import (
	"sjsage522/formatworker/config"
	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/services/cache"

	"golang.org/x/time/rate"
)

// consumCategories are the top-level sections of the Consum online shop
var consumCategories = []struct{ name, path string }{
	{"Despensa", "/c/despensa/2811"},
	{"Bebidas", "/c/bebidas/1690"},
	{"Frescos", "/c/frescos/2812"},
	{"Horno", "/c/horno/4108"},
	{"Platos preparados", "/c/platos-preparados/1833"},
	{"Congelados", "/c/congelados/1783"},
	{"Ecológico y saludable", "/c/ecologico-saludable/5281"},
	{"Infantil", "/c/infantil/2297"},
	{"Droguería", "/c/drogueria/1239"},
	{"Cuidado personal", "/c/cuidado/2814"},
	{"Mascotas", "/c/mascotas/2469"},
	{"Bazar", "/c/bazar/1486"},
}

// ConsumSelectors match the product widgets of the Consum shop
var ConsumSelectors = Selectors{
	ProductList:   "cmp-widget-product",
	Name:          "lib-product-info-name h1.u-title-3",
	Brand:         "lib-product-info-name p.u-size--20",
	Code:          `lib-product-info-name span:contains("Código producto")`,
	Price:         "lib-product-info-price span.product-info-price__price",
	PreviousPrice: "lib-product-info-price span.product-info-price__offer",
	UnitPrice:     "lib-product-info-name p.product-info-name--price",
	Promotion:     "lib-product-info-promotions span.product-info-promotions__column--title",
	Image:         "img.image-component__image",
	Link:          "a.u-no-link",
	Sponsored:     "div.widget-product__sponsored--label",
	Paginator:     "cmp-tol-dropdown-paginator span",
	IDAttr:        "id",
	IDPrefix:      "grid-widget-",
}

// ConsumConfig builds the listing configuration for the Consum shop at shopURL
func ConsumConfig(shopURL string, maxPages int) ListingConfig {
	categories := make([]Category, 0, len(consumCategories))
	for _, c := range consumCategories {
		categories = append(categories, Category{
			Name: c.name,
			URL:  shopURL + c.path + "?orderById=5&page=1",
		})
	}
	return ListingConfig{
		Name:       "Consum",
		Provider:   "Consum",
		BaseURL:    "https://tienda.consum.es",
		CacheKey:   "consum_rate_limited",
		BlockTime:  500,
		MaxPages:   maxPages,
		Categories: categories,
		Selectors:  ConsumSelectors,
	}
}

// CreateSources creates every configured product source. Each source gets
// its own limiter so one slow shop does not throttle the other.
func CreateSources(cfg *config.Config, cacheSvc cache.CacheService) []Source {
	var sources []Source

	if cfg.ConsumURL != "" {
		limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
		sources = append(sources, NewListingSource(ConsumConfig(cfg.ConsumURL, cfg.ConsumMaxPages), cacheSvc, limiter))
	}
	if cfg.MercadonaAPIURL != "" {
		limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
		sources = append(sources, NewMercadonaSource(cfg.MercadonaAPIURL, cfg.MercadonaCategories, cacheSvc, limiter))
	}

	for i, s := range sources {
		logger.Debug("Source %d: %s (%s)", i, s.GetName(), s.GetProvider())
	}
	return sources
}
