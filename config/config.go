package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"sjsage522/formatworker/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Memcache configuration; empty means in-process cache
	MemcacheAddr string

	// Collection configuration
	CrawlInterval       time.Duration
	RequestsPerSecond   float64
	EnrichWorkers       int
	ConsumURL           string
	ConsumMaxPages      int
	MercadonaAPIURL     string
	MercadonaCategories []string

	// Outputs
	OutputCSV    string
	OutputSQLite string
	BrandsFile   string

	// HTTP API
	APIAddr string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	return &Config{
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		RedisStream:          getEnv("REDIS_STREAM", "productos"),
		RedisStreamCount:     getEnvInt("REDIS_STREAM_COUNT", 1),
		RedisStreamMaxLength: getEnvInt("REDIS_STREAM_MAX_LENGTH", 10000),
		MemcacheAddr:         os.Getenv("MEMCACHE_ADDR"),
		CrawlInterval:        time.Duration(getEnvInt("CRAWL_INTERVAL_SECONDS", 0)) * time.Second,
		RequestsPerSecond:    getEnvFloat("REQUESTS_PER_SECOND", 0.5),
		EnrichWorkers:        getEnvInt("ENRICH_WORKERS", 8),
		ConsumURL:            getEnv("CONSUM_URL", "https://tienda.consum.es/es"),
		ConsumMaxPages:       getEnvInt("CONSUM_MAX_PAGES", 0),
		MercadonaAPIURL:      getEnv("MERCADONA_API_URL", "https://tienda.mercadona.es/api"),
		MercadonaCategories:  getEnvList("MERCADONA_CATEGORIES"),
		OutputCSV:            os.Getenv("OUTPUT_CSV"),
		OutputSQLite:         os.Getenv("OUTPUT_SQLITE"),
		BrandsFile:           os.Getenv("BRANDS_FILE"),
		APIAddr:              getEnv("API_ADDR", ":8080"),
		Environment:          getEnv("FORMAT_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the worker cannot run with
func (c *Config) Validate() error {
	switch {
	case c.RedisAddr == "":
		return errors.NewConfiguration("REDIS_ADDR must not be empty", nil)
	case c.RedisStream == "":
		return errors.NewConfiguration("REDIS_STREAM must not be empty", nil)
	case c.RedisStreamCount < 1:
		return errors.NewConfiguration("REDIS_STREAM_COUNT must be at least 1", nil)
	case c.RedisStreamMaxLength < 1:
		return errors.NewConfiguration("REDIS_STREAM_MAX_LENGTH must be at least 1", nil)
	case c.CrawlInterval < 0:
		return errors.NewConfiguration("CRAWL_INTERVAL_SECONDS must not be negative", nil)
	case c.RequestsPerSecond <= 0:
		return errors.NewConfiguration("REQUESTS_PER_SECOND must be positive", nil)
	case c.EnrichWorkers < 1:
		return errors.NewConfiguration("ENRICH_WORKERS must be at least 1", nil)
	case c.ConsumMaxPages < 0:
		return errors.NewConfiguration("CONSUM_MAX_PAGES must not be negative", nil)
	}
	return nil
}

// IsProduction reports whether the worker runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
