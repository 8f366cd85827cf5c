package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"sjsage522/formatworker/internal/catalog"
	"sjsage522/formatworker/internal/enrich"
	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/services/publisher"
	"sjsage522/formatworker/services/store"
)

// Worker handles the scrape, enrich and publish cycle
type Worker struct {
	sources       []catalog.Source
	enricher      *enrich.Enricher
	publisher     publisher.Publisher
	sinks         []store.Sink
	crawlInterval time.Duration
	enrichWorkers int
	verbose       bool
	log           *logger.Logger
}

// Options configures a Worker
type Options struct {
	Sources       []catalog.Source
	Enricher      *enrich.Enricher
	Publisher     publisher.Publisher
	Sinks         []store.Sink
	CrawlInterval time.Duration
	EnrichWorkers int
	// Verbose logs the first record of every source
	Verbose bool
}

// RunStats summarises one run
type RunStats struct {
	Sources   int
	Failed    int
	Products  int
	Published int
}

// NewWorker creates a new worker
func NewWorker(opts Options) *Worker {
	enricher := opts.Enricher
	if enricher == nil {
		enricher = enrich.NewEnricher(nil)
	}
	return &Worker{
		sources:       opts.Sources,
		enricher:      enricher,
		publisher:     opts.Publisher,
		sinks:         opts.Sinks,
		crawlInterval: opts.CrawlInterval,
		enrichWorkers: opts.EnrichWorkers,
		verbose:       opts.Verbose,
		log:           logger.ForWorker(),
	}
}

// Start runs every interval until ctx is done. A zero interval runs once.
func (w *Worker) Start(ctx context.Context) {
	for {
		start := time.Now()
		stats := w.RunOnce(ctx)
		w.log.Info().
			Dur("elapsed", time.Since(start)).
			Int("sources", stats.Sources).
			Int("failed", stats.Failed).
			Int("products", stats.Products).
			Int("published", stats.Published).
			Msg("Run finished")

		if w.crawlInterval <= 0 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.crawlInterval):
		}
	}
}

// RunOnce runs all the sources in parallel, enriches their products,
// publishes and stores them, then trims the streams
func (w *Worker) RunOnce(ctx context.Context) RunStats {
	stats := RunStats{Sources: len(w.sources)}

	results := make([][]catalog.Product, len(w.sources))
	failed := make([]bool, len(w.sources))
	var wg sync.WaitGroup
	for i, s := range w.sources {
		wg.Add(1)
		go func(i int, s catalog.Source) {
			defer wg.Done()
			products, err := s.FetchProducts(ctx)
			if err != nil {
				w.log.Error().Err(err).Str("source", s.GetName()).Msg("Source failed")
				failed[i] = true
			}
			results[i] = products
		}(i, s)
	}
	wg.Wait()

	var products []catalog.Product
	for i, found := range results {
		if failed[i] {
			stats.Failed++
		}
		products = append(products, found...)
	}
	stats.Products = len(products)
	if len(products) == 0 {
		return stats
	}

	records := w.enricher.EnrichAll(ctx, products, w.enrichWorkers)
	stats.Published = w.publish(ctx, records)

	for _, sink := range w.sinks {
		if err := sink.Write(ctx, records); err != nil {
			w.log.Error().Err(err).Msg("Failed to store records")
		}
	}

	// Trim all streams after publishing
	if w.publisher != nil {
		if err := w.publisher.TrimStreams(ctx); err != nil {
			w.log.Error().Err(err).Msg("Failed to trim streams")
		}
	}
	return stats
}

// publish sends every record to the publisher keyed by provider
func (w *Worker) publish(ctx context.Context, records []enrich.Record) int {
	if w.publisher == nil {
		return 0
	}

	published := 0
	logged := make(map[string]bool)
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			w.log.Error().Err(err).Str("code", r.Code).Msg("Failed to encode record")
			continue
		}
		if err := w.publisher.Publish(ctx, r.Provider, data); err != nil {
			w.log.Error().Err(err).Str("provider", r.Provider).Msg("Failed to publish record")
			continue
		}
		published++

		if w.verbose && !logged[r.Provider] {
			logged[r.Provider] = true
			w.log.Info().RawJSON("record", data).Msg("Published")
		}
	}
	return published
}
