// ABOUTME: Cache manager implements the cache-aside policy for the news listing and details
// ABOUTME: Every store failure degrades to a miss on read and is logged and swallowed on write

package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"news-aggregator-api/core/domain"
	coreerrors "news-aggregator-api/core/errors"
	"news-aggregator-api/core/interfaces"
	"news-aggregator-api/core/transform"
)

const (
	// ListingKey holds the aggregated news list
	ListingKey = "news:list"

	// DetailPrefix prefixes every rendered detail envelope key
	DetailPrefix = "news:detail:"

	// DefaultTTL applies when the manager is created with a non-positive TTL
	DefaultTTL = time.Hour
)

// DetailKey returns the cache key for a news id
func DetailKey(id int64) string {
	return DetailPrefix + strconv.FormatInt(id, 10)
}

// Manager reads and writes news entries through a key-value store.
// It does no locking: concurrent writers race and the last write wins.
type Manager struct {
	store  interfaces.Store
	logger interfaces.Logger
	ttl    time.Duration
}

// NewManager creates a cache manager over deps.Store
func NewManager(deps interfaces.Dependencies, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: deps.Store, logger: deps.Logger, ttl: ttl}
}

// TTL returns the lifetime given to every entry
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// GetListing returns the cached news list. ok is false on a miss or any store error.
func (m *Manager) GetListing(ctx context.Context) (items []domain.NewsItem, ok bool) {
	if !m.get(ctx, ListingKey, &items) {
		return nil, false
	}
	if items == nil {
		items = []domain.NewsItem{}
	}
	return items, true
}

// PutListing stores the news list
func (m *Manager) PutListing(ctx context.Context, items []domain.NewsItem) {
	if items == nil {
		items = []domain.NewsItem{}
	}
	m.put(ctx, ListingKey, items)
}

// GetDetail returns the cached detail envelope for id
func (m *Manager) GetDetail(ctx context.Context, id int64) (transform.DetailResponse, bool) {
	var resp transform.DetailResponse
	if !m.get(ctx, DetailKey(id), &resp) {
		return transform.DetailResponse{}, false
	}
	return resp, true
}

// PutDetail stores a rendered detail envelope for id
func (m *Manager) PutDetail(ctx context.Context, id int64, resp transform.DetailResponse) {
	m.put(ctx, DetailKey(id), resp)
}

// Invalidate removes the listing and every detail entry.
// It attempts every delete and returns the first error it met.
func (m *Manager) Invalidate(ctx context.Context) error {
	if m.store == nil {
		return nil
	}

	var first error
	record := func(op, key string, err error) {
		if err == nil {
			return
		}
		m.log("Cache invalidation failed", op, key, err)
		if first == nil {
			first = err
		}
	}

	record("delete", ListingKey, m.store.Delete(ctx, ListingKey))

	keys, err := m.store.Keys(ctx, DetailPrefix)
	record("keys", DetailPrefix, err)
	for _, key := range keys {
		record("delete", key, m.store.Delete(ctx, key))
	}

	return first
}

func (m *Manager) get(ctx context.Context, key string, dst interface{}) bool {
	if m.store == nil {
		return false
	}

	data, err := m.store.Get(ctx, key)
	if err != nil {
		if !coreerrors.IsCacheMiss(err) {
			m.log("Cache read failed", "get", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		m.log("Cache entry corrupt", "decode", key, err)
		return false
	}
	return true
}

func (m *Manager) put(ctx context.Context, key string, value interface{}) {
	if m.store == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		m.log("Cache write failed", "encode", key, err)
		return
	}

	if err := m.store.Set(ctx, key, data, m.ttl); err != nil {
		m.log("Cache write failed", "set", key, err)
	}
}

func (m *Manager) log(msg, op, key string, err error) {
	if m.logger == nil {
		return
	}
	m.logger.Warn(msg, map[string]interface{}{
		"op":    op,
		"key":   key,
		"error": err.Error(),
	})
}
