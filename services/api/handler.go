package api

import (
	"net/http"
	"strings"

	"sjsage522/formatworker/internal/format"

	"github.com/gin-gonic/gin"
)

// maxNames bounds the batch endpoints
const maxNames = 1000

// Handler holds dependencies for HTTP handlers
type Handler struct {
	brands *format.BrandMatcher
}

// NewHandler creates a new HTTP handler; a nil matcher uses the built-in brands
func NewHandler(brands *format.BrandMatcher) *Handler {
	if brands == nil {
		brands = format.NewBrandMatcher(format.DefaultBrands())
	}
	return &Handler{brands: brands}
}

// NamesRequest is the body of the batch endpoints
type NamesRequest struct {
	Names []string `json:"names"`
}

// FormatResponse is the parse result for one product name
type FormatResponse struct {
	Name string `json:"name"`
	format.Result
}

// BrandResponse is the brand match for one product name
type BrandResponse struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Found bool   `json:"found"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"brands": h.brands.Len(),
	})
}

// ParseFormat parses the product name in the q query parameter
func (h *Handler) ParseFormat(c *gin.Context) {
	name := c.Query("q")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	c.JSON(http.StatusOK, FormatResponse{Name: name, Result: format.Parse(name)})
}

// ParseFormats parses a batch of product names
func (h *Handler) ParseFormats(c *gin.Context) {
	names, ok := bindNames(c)
	if !ok {
		return
	}
	results := make([]FormatResponse, len(names))
	for i, name := range names {
		results[i] = FormatResponse{Name: name, Result: format.Parse(name)}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// MatchBrands detects the brand of a batch of product names
func (h *Handler) MatchBrands(c *gin.Context) {
	names, ok := bindNames(c)
	if !ok {
		return
	}
	results := make([]BrandResponse, len(names))
	for i, name := range names {
		brand, found := h.brands.Match(name)
		if !found {
			brand = format.UnknownBrand
		}
		results[i] = BrandResponse{Name: name, Brand: brand, Found: found}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// bindNames decodes a NamesRequest, answering 400 when it is unusable
func bindNames(c *gin.Context) ([]string, bool) {
	var req NamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return nil, false
	}
	switch {
	case len(req.Names) == 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "names must not be empty"})
		return nil, false
	case len(req.Names) > maxNames:
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many names"})
		return nil, false
	}
	return req.Names, true
}
