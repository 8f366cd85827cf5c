package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"sjsage522/formatworker/helpers"
	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/pkg/errors"
	"sjsage522/formatworker/services/cache"

	"golang.org/x/time/rate"
)

const (
	mercadonaProvider     = "Mercadona"
	categoryMapCacheKey   = "mercadona_category_map"
	categoryMapExpiration = 24 * time.Hour
)

// CategoryInfo names a category and the top-level group it belongs to
type CategoryInfo struct {
	Parent string `json:"parent"`
	Name   string `json:"name"`
}

// CategoryMap maps category IDs to their names
type CategoryMap map[string]CategoryInfo

// Lookup resolves a category URL such as https://tienda.mercadona.es/categories/112
func (m CategoryMap) Lookup(categoryURL string) (CategoryInfo, bool) {
	id, err := helpers.GetSplitPart(strings.TrimRight(categoryURL, "/"), "/", -1)
	if err != nil {
		return CategoryInfo{}, false
	}
	info, ok := m[id]
	return info, ok
}

// IDs returns the category IDs in numeric order
func (m CategoryMap) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})
	return ids
}

type apiCategoryList struct {
	Results []struct {
		Name       string `json:"name"`
		Categories []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	} `json:"results"`
}

type apiCategoryDetail struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Categories []struct {
		Name     string       `json:"name"`
		Products []apiProduct `json:"products"`
	} `json:"categories"`
}

type apiProduct struct {
	ID                string `json:"id"`
	DisplayName       string `json:"display_name"`
	Packaging         string `json:"packaging"`
	ShareURL          string `json:"share_url"`
	Thumbnail         string `json:"thumbnail"`
	PriceInstructions struct {
		UnitPrice         string  `json:"unit_price"`
		PreviousUnitPrice string  `json:"previous_unit_price"`
		BulkPrice         string  `json:"bulk_price"`
		ReferenceFormat   string  `json:"reference_format"`
		UnitSize          float64 `json:"unit_size"`
		SizeFormat        string  `json:"size_format"`
		TotalUnits        int     `json:"total_units"`
	} `json:"price_instructions"`
}

// MercadonaSource lists products through the Mercadona storefront JSON API
type MercadonaSource struct {
	BaseSource
	APIURL     string
	Categories []string

	now func() time.Time
}

// NewMercadonaSource creates a new API source. With no categories every
// category of the category map is fetched.
func NewMercadonaSource(apiURL string, categories []string, cacheSvc cache.CacheService, limiter *rate.Limiter) *MercadonaSource {
	return &MercadonaSource{
		BaseSource: BaseSource{
			Name:      "MercadonaAPI",
			Provider:  mercadonaProvider,
			BaseURL:   "https://tienda.mercadona.es",
			CacheKey:  "mercadona_rate_limited",
			CacheSvc:  cacheSvc,
			BlockTime: 500 * time.Second,
			Limiter:   limiter,
		},
		APIURL:     strings.TrimRight(apiURL, "/"),
		Categories: categories,
		now:        time.Now,
	}
}

// FetchCategoryMap returns the category map, cached for a day
func (s *MercadonaSource) FetchCategoryMap(ctx context.Context) (CategoryMap, error) {
	if s.CacheSvc != nil {
		if data, err := s.CacheSvc.Get(categoryMapCacheKey); err == nil {
			var cached CategoryMap
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var list apiCategoryList
	if err := s.getJSON(ctx, s.APIURL+"/categories/", &list); err != nil {
		return nil, err
	}

	categories := make(CategoryMap)
	for _, parent := range list.Results {
		parentName := parent.Name
		if parentName == "" {
			parentName = "Sin Grupo"
		}
		for _, child := range parent.Categories {
			childName := child.Name
			if childName == "" {
				childName = "Sin Nombre"
			}
			categories[strconv.Itoa(child.ID)] = CategoryInfo{Parent: parentName, Name: childName}
		}
	}

	if s.CacheSvc != nil {
		if data, err := json.Marshal(categories); err == nil {
			if err := s.CacheSvc.Set(categoryMapCacheKey, data, categoryMapExpiration); err != nil {
				logger.ForCache().Warn().Err(err).Msg("Failed to cache category map")
			}
		}
	}
	return categories, nil
}

// FetchProducts lists the products of every configured category
func (s *MercadonaSource) FetchProducts(ctx context.Context) ([]Product, error) {
	log := logger.ForSource(s.Name)

	categoryMap, err := s.FetchCategoryMap(ctx)
	if err != nil {
		return nil, err
	}

	ids := s.Categories
	if len(ids) == 0 {
		ids = categoryMap.IDs()
	}

	var products []Product
	for _, id := range ids {
		found, err := s.fetchCategory(ctx, id, categoryMap[id])
		if err != nil {
			if errors.IsType(err, errors.ErrorTypeRateLimit) || ctx.Err() != nil {
				return products, err
			}
			log.Error().Err(err).Str("category", id).Msg("Failed to fetch category")
			continue
		}
		log.Debug().Str("category", id).Int("products", len(found)).Msg("Fetched category")
		products = append(products, found...)
	}
	return products, nil
}

func (s *MercadonaSource) fetchCategory(ctx context.Context, id string, info CategoryInfo) ([]Product, error) {
	var detail apiCategoryDetail
	if err := s.getJSON(ctx, fmt.Sprintf("%s/categories/%s/", s.APIURL, id), &detail); err != nil {
		return nil, err
	}

	category := info.Name
	if category == "" {
		category = detail.Name
	}
	scrapedAt := s.now()

	var products []Product
	for _, section := range detail.Categories {
		for _, p := range section.Products {
			products = append(products, s.toProduct(p, category, scrapedAt))
		}
	}
	return products, nil
}

func (s *MercadonaSource) toProduct(p apiProduct, category string, scrapedAt time.Time) Product {
	price := p.PriceInstructions
	product := Product{
		ID:          p.ID,
		Code:        p.ID,
		Name:        p.DisplayName,
		Description: describePackage(p),
		Category:    category,
		Price:       price.UnitPrice,
		ImageURL:    p.Thumbnail,
		URL:         p.ShareURL,
		Provider:    s.Provider,
		ScrapedAt:   scrapedAt,
	}
	if price.PreviousUnitPrice != "" && price.PreviousUnitPrice != price.UnitPrice {
		product.PreviousPrice = strings.TrimSpace(price.PreviousUnitPrice)
	}
	if price.BulkPrice != "" && price.ReferenceFormat != "" {
		product.UnitPrice = price.BulkPrice + " €/" + price.ReferenceFormat
	}
	return product
}

// describePackage renders the API size fields as format text, e.g.
// "pack de 6 unidades de 1.5 l" or "garrafa 5 l"
func describePackage(p apiProduct) string {
	price := p.PriceInstructions
	if price.UnitSize <= 0 || price.SizeFormat == "" {
		return strings.ToLower(p.Packaging)
	}
	size := strconv.FormatFloat(price.UnitSize, 'f', -1, 64)
	if price.TotalUnits > 1 {
		each := strconv.FormatFloat(price.UnitSize/float64(price.TotalUnits), 'f', -1, 64)
		return fmt.Sprintf("pack de %d unidades de %s %s", price.TotalUnits, each, price.SizeFormat)
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", strings.ToLower(p.Packaging), size, price.SizeFormat))
}

func (s *MercadonaSource) getJSON(ctx context.Context, target string, v interface{}) error {
	body, err := s.fetchWithCache(ctx, target)
	if err != nil {
		return err
	}
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return errors.NewParsing(s.Provider, "decode "+target, err)
	}
	return nil
}
