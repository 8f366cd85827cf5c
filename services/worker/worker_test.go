package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"sjsage522/formatworker/internal/catalog"
	"sjsage522/formatworker/internal/enrich"
	"sjsage522/formatworker/internal/format"
	"sjsage522/formatworker/services/publisher"
	"sjsage522/formatworker/services/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSource implements the catalog.Source interface for testing
type MockSource struct {
	name     string
	provider string
	products []catalog.Product
	fetchErr error

	mu    sync.Mutex
	calls int
}

// Ensure MockSource implements catalog.Source
var _ catalog.Source = (*MockSource)(nil)

func (m *MockSource) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.products, m.fetchErr
}

func (m *MockSource) GetName() string {
	return m.name
}

func (m *MockSource) GetProvider() string {
	return m.provider
}

func (m *MockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockPublisher implements the publisher.Publisher interface for testing
type MockPublisher struct {
	mu       sync.Mutex
	messages map[string][][]byte
	trims    int
}

// Ensure MockPublisher implements publisher.Publisher
var _ publisher.Publisher = (*MockPublisher)(nil)

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{messages: make(map[string][][]byte)}
}

func (m *MockPublisher) Publish(ctx context.Context, key string, message []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy the message to ensure thread safety
	messageCopy := make([]byte, len(message))
	copy(messageCopy, message)

	m.messages[key] = append(m.messages[key], messageCopy)
	return nil
}

func (m *MockPublisher) TrimStreams(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trims++
	return nil
}

func (m *MockPublisher) Close() error {
	return nil
}

// MockSink implements the store.Sink interface for testing
type MockSink struct {
	mu      sync.Mutex
	batches [][]enrich.Record
}

// Ensure MockSink implements store.Sink
var _ store.Sink = (*MockSink)(nil)

func (m *MockSink) Write(ctx context.Context, records []enrich.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, records)
	return nil
}

func (m *MockSink) Close() error {
	return nil
}

func TestWorker_RunOnce(t *testing.T) {
	consum := &MockSource{
		name:     "Consum",
		provider: "Consum",
		products: []catalog.Product{
			{Code: "1", Name: "Agua mineral Bezoya 1,5 l", Provider: "Consum"},
			{Code: "2", Name: "Cerveza pack de 12 latas de 33 cl", Provider: "Consum"},
		},
	}
	mercadona := &MockSource{
		name:     "MercadonaAPI",
		provider: "Mercadona",
		products: []catalog.Product{
			{Code: "28050", Name: "Papel higiénico 80 ud", Provider: "Mercadona"},
		},
	}
	mockPublisher := NewMockPublisher()
	sink := &MockSink{}

	w := NewWorker(Options{
		Sources:       []catalog.Source{consum, mercadona},
		Publisher:     mockPublisher,
		Sinks:         []store.Sink{sink},
		EnrichWorkers: 2,
		Verbose:       true,
	})

	stats := w.RunOnce(context.Background())
	assert.Equal(t, RunStats{Sources: 2, Products: 3, Published: 3}, stats)

	assert.Len(t, mockPublisher.messages["Consum"], 2)
	assert.Len(t, mockPublisher.messages["Mercadona"], 1)
	assert.Equal(t, 1, mockPublisher.trims)

	var rec enrich.Record
	require.NoError(t, json.Unmarshal(mockPublisher.messages["Mercadona"][0], &rec))
	assert.Equal(t, "80 ud", rec.Format)
	require.NotNil(t, rec.Quantity)
	assert.Equal(t, 80.0, *rec.Quantity)
	assert.Equal(t, format.UnitUnits, rec.QuantityUnit)

	// Sources keep their order in the stored batch
	require.Len(t, sink.batches, 1)
	batch := sink.batches[0]
	require.Len(t, batch, 3)
	assert.Equal(t, "1", batch[0].Code)
	assert.Equal(t, "2", batch[1].Code)
	assert.Equal(t, "28050", batch[2].Code)
	assert.Equal(t, format.CategoryPack, batch[1].FormatCategory)
}

func TestWorker_SourceError(t *testing.T) {
	failing := &MockSource{name: "ErrorSource", provider: "Test", fetchErr: errors.New("test error")}
	working := &MockSource{
		name:     "Working",
		provider: "Test",
		products: []catalog.Product{{Code: "1", Name: "Leche 1 l", Provider: "Test"}},
	}
	mockPublisher := NewMockPublisher()

	w := NewWorker(Options{
		Sources:   []catalog.Source{failing, working},
		Publisher: mockPublisher,
	})

	stats := w.RunOnce(context.Background())
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Published)
	assert.Len(t, mockPublisher.messages["Test"], 1)
}

func TestWorker_NothingFetched(t *testing.T) {
	mockPublisher := NewMockPublisher()
	sink := &MockSink{}

	w := NewWorker(Options{
		Sources:   []catalog.Source{&MockSource{name: "Empty", provider: "Test"}},
		Publisher: mockPublisher,
		Sinks:     []store.Sink{sink},
	})

	stats := w.RunOnce(context.Background())
	assert.Zero(t, stats.Products)
	assert.Empty(t, mockPublisher.messages)
	assert.Empty(t, sink.batches)
	assert.Zero(t, mockPublisher.trims)
}

func TestWorker_StartRunsOnceWithoutInterval(t *testing.T) {
	source := &MockSource{name: "Once", provider: "Test"}
	w := NewWorker(Options{Sources: []catalog.Source{source}})

	done := make(chan struct{})
	go func() {
		w.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return")
	}
	assert.Equal(t, 1, source.Calls())
}

func TestWorker_StartStopsOnCancel(t *testing.T) {
	source := &MockSource{name: "Loop", provider: "Test"}
	w := NewWorker(Options{
		Sources:       []catalog.Source{source},
		CrawlInterval: 10 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return source.Calls() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not stop after cancel")
	}
}
