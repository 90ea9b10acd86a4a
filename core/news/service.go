// ABOUTME: News service orchestrates fetching, aggregation, caching and projection
// ABOUTME: It is the single entry point used by the HTTP handlers and the background refresher

package news

import (
	"context"
	"strconv"
	"sync"
	"time"

	"news-aggregator-api/core/aggregator"
	"news-aggregator-api/core/cache"
	"news-aggregator-api/core/domain"
	coreerrors "news-aggregator-api/core/errors"
	"news-aggregator-api/core/interfaces"
	"news-aggregator-api/core/parsers"
	"news-aggregator-api/core/transform"
	"news-aggregator-api/pkg/featureflags"
)

const defaultConcurrency = 10

// SourceFetcher fetches and parses one source. It must not fail.
type SourceFetcher interface {
	FetchSource(ctx context.Context, src domain.FeedSource) []domain.RawItem
}

// Enricher improves raw items in place and reports how many changed
type Enricher interface {
	Enrich(ctx context.Context, items []domain.RawItem, limit int) int
}

// Options configures a Service
type Options struct {
	Sources       domain.Sources
	MaxTotalItems int
	CacheTTL      time.Duration
	FetchTimeout  time.Duration
	CoverImage    string

	// Concurrency bounds simultaneous source fetches; zero selects 10
	Concurrency int
}

// Service handles news aggregation and retrieval
type Service struct {
	deps        interfaces.Dependencies
	opts        Options
	fetcher     SourceFetcher
	enricher    Enricher
	cache       *cache.Manager
	transformer *transform.Transformer
}

// NewService creates a news service wired to the default fetcher and enricher
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	return &Service{
		deps:        deps,
		opts:        opts,
		fetcher:     parsers.NewFetcher(deps, opts.FetchTimeout),
		enricher:    parsers.NewArticleEnricher(deps, opts.FetchTimeout),
		cache:       cache.NewManager(deps, opts.CacheTTL),
		transformer: transform.New(opts.CoverImage),
	}
}

// SetFetcher replaces the source fetcher
func (s *Service) SetFetcher(f SourceFetcher) {
	s.fetcher = f
}

// SetEnricher replaces the article enricher
func (s *Service) SetEnricher(e Enricher) {
	s.enricher = e
}

// Sources returns the configured sources
func (s *Service) Sources() domain.Sources {
	return s.opts.Sources
}

// CacheTTL returns the lifetime of cached entries
func (s *Service) CacheTTL() time.Duration {
	return s.cache.TTL()
}

// MaxTotalItems returns the global item cap
func (s *Service) MaxTotalItems() int {
	return s.opts.MaxTotalItems
}

// RefreshAll fetches every source concurrently and aggregates the results.
// Failed sources contribute nothing; the result is never nil.
func (s *Service) RefreshAll(ctx context.Context) []domain.NewsItem {
	sources := s.opts.Sources.All()
	batches := make([]aggregator.Batch, len(sources))

	sem := make(chan struct{}, s.opts.Concurrency)
	var wg sync.WaitGroup

	enrich := s.enricher != nil && featureflags.IsEnabled(ctx, featureflags.ArticleEnrichment)

	for i, src := range sources {
		wg.Add(1)
		go func(i int, src domain.FeedSource) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				batches[i] = aggregator.Batch{Source: src}
				return
			}

			items := s.fetcher.FetchSource(ctx, src)
			if enrich && src.Kind == domain.KindSyndication {
				s.enricher.Enrich(ctx, items, src.Kind.AggregateLimit())
			}
			batches[i] = aggregator.Batch{Source: src, Items: items}
		}(i, src)
	}

	wg.Wait()

	items := aggregator.Aggregate(batches, s.opts.MaxTotalItems)

	if s.deps.Logger != nil {
		s.deps.Logger.Info("News refreshed", map[string]interface{}{
			"sources": len(sources),
			"items":   len(items),
		})
	}

	return items
}

// Items returns the aggregated list, from cache when possible
func (s *Service) Items(ctx context.Context) []domain.NewsItem {
	if items, ok := s.cache.GetListing(ctx); ok {
		return items
	}

	items := s.RefreshAll(ctx)
	s.cache.PutListing(ctx, items)
	return items
}

// List returns one page of the listing envelope
func (s *Service) List(ctx context.Context, page, pageSize int) transform.ListResponse {
	return s.transformer.List(s.Items(ctx), page, pageSize)
}

// Detail returns the detail envelope for id.
// An unknown id yields the not-found envelope together with a NotFoundError.
func (s *Service) Detail(ctx context.Context, id int64) (transform.DetailResponse, error) {
	if resp, ok := s.cache.GetDetail(ctx, id); ok && resp.Found() {
		return resp, nil
	}

	items := s.Items(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		resp := s.transformer.Detail(&items[i])
		s.cache.PutDetail(ctx, id, resp)
		return resp, nil
	}

	return transform.NotFound(), &coreerrors.NotFoundError{Resource: "news", ID: strconv.FormatInt(id, 10)}
}

// Refresh drops every cached entry, re-aggregates and stores the new listing.
// The item count is returned even when invalidation reported an error.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	invalidateErr := s.cache.Invalidate(ctx)

	items := s.RefreshAll(ctx)
	s.cache.PutListing(ctx, items)

	if invalidateErr != nil {
		return len(items), coreerrors.WrapError(invalidateErr, "invalidate cache")
	}
	return len(items), nil
}
