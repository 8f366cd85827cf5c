package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sjsage522/formatworker/config"
	"sjsage522/formatworker/internal/catalog"
	"sjsage522/formatworker/internal/enrich"
	"sjsage522/formatworker/internal/format"
	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/services/cache"
	"sjsage522/formatworker/services/publisher"
	"sjsage522/formatworker/services/store"
	"sjsage522/formatworker/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Dur("crawl_interval", cfg.CrawlInterval).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	services, err := initializeServices(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Cleanup()

	// Create sources
	sources := catalog.CreateSources(cfg, services.Cache)
	if len(sources) == 0 {
		log.Fatal().Msg("No sources were configured")
	}

	log.Info().
		Int("source_count", len(sources)).
		Msg("Created sources")

	// Create and start worker
	w := worker.NewWorker(worker.Options{
		Sources:       sources,
		Enricher:      enrich.NewEnricher(services.Brands),
		Publisher:     services.Publisher,
		Sinks:         services.Sinks,
		CrawlInterval: cfg.CrawlInterval,
		EnrichWorkers: cfg.EnrichWorkers,
		Verbose:       !cfg.IsProduction(),
	})

	// Start worker in a goroutine
	workerDone := make(chan struct{})
	go func() {
		log.Info().Msg("Starting format worker")
		w.Start(ctx)
		close(workerDone)
	}()

	// Wait for shutdown signal or worker exit
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
		<-workerDone
	case <-workerDone:
		log.Info().Msg("Worker exited normally")
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
	Sinks     []store.Sink
	Brands    *format.BrandMatcher
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
	for _, sink := range s.Sinks {
		if err := sink.Close(); err != nil {
			logger.ForStore().Warn().Err(err).Msg("Failed to close sink")
		}
	}
}

// initializeServices initializes all required services
func initializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	services := &Services{}

	// Initialize cache service
	services.Cache = cache.New(cfg.MemcacheAddr)
	if cfg.MemcacheAddr != "" {
		logger.Info("Using Memcache at %s", cfg.MemcacheAddr)
	} else {
		logger.Info("Using in-process cache")
	}

	brands, err := format.LoadBrandMatcher(cfg.BrandsFile)
	if err != nil {
		return nil, err
	}
	services.Brands = brands
	logger.Info("Loaded %d brands", brands.Len())

	// Initialize publisher
	redisPublisher := publisher.NewRedisPublisher(
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	if err := redisPublisher.Ping(ctx); err != nil {
		redisPublisher.Close()
		return nil, err
	}
	services.Publisher = redisPublisher

	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	// Initialize sinks
	if cfg.OutputCSV != "" {
		services.Sinks = append(services.Sinks, store.NewCSVSink(cfg.OutputCSV))
	}
	if cfg.OutputSQLite != "" {
		sqliteSink, err := store.NewSQLiteSink(ctx, cfg.OutputSQLite)
		if err != nil {
			services.Cleanup()
			return nil, err
		}
		services.Sinks = append(services.Sinks, sqliteSink)
	}

	return services, nil
}
