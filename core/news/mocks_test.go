package news

import (
	"context"
	"strings"
	"sync"
	"time"

	"news-aggregator-api/core/domain"
	coreerrors "news-aggregator-api/core/errors"
)

// mockFetcher is a mock implementation of the SourceFetcher interface
type mockFetcher struct {
	mu        sync.Mutex
	calls     int
	fetchFunc func(ctx context.Context, src domain.FeedSource) []domain.RawItem
}

func (m *mockFetcher) FetchSource(ctx context.Context, src domain.FeedSource) []domain.RawItem {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, src)
	}
	return []domain.RawItem{}
}

func (m *mockFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockEnricher is a mock implementation of the Enricher interface
type mockEnricher struct {
	enrichFunc func(ctx context.Context, items []domain.RawItem, limit int) int
}

func (m *mockEnricher) Enrich(ctx context.Context, items []domain.RawItem, limit int) int {
	if m.enrichFunc != nil {
		return m.enrichFunc(ctx, items, limit)
	}
	return 0
}

// memStore is a map-backed implementation of the Store interface
type memStore struct {
	mu        sync.Mutex
	data      map[string][]byte
	deleteErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, coreerrors.ErrCacheMiss
	}
	return v, nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.data, key)
	return nil
}

func (m *memStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}
