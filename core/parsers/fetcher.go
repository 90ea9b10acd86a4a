// ABOUTME: Fetcher downloads one source's feed document and hands it to the matching parser
// ABOUTME: Every failure is contained here so a bad source only ever contributes nothing

package parsers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"news-aggregator-api/core/domain"
	coreerrors "news-aggregator-api/core/errors"
	"news-aggregator-api/core/interfaces"
)

const (
	// DefaultFetchTimeout bounds one source fetch
	DefaultFetchTimeout = 8 * time.Second

	maxFeedBytes = 10 << 20
)

// Fetcher fetches and parses feed sources
type Fetcher struct {
	deps    interfaces.Dependencies
	timeout time.Duration
}

// NewFetcher creates a fetcher. A non-positive timeout selects DefaultFetchTimeout.
func NewFetcher(deps interfaces.Dependencies, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{deps: deps, timeout: timeout}
}

// FetchSource fetches src and returns its parsed items.
// It never fails: transport errors, non-2xx statuses and parser panics are
// logged and yield an empty slice.
func (f *Fetcher) FetchSource(ctx context.Context, src domain.FeedSource) (items []domain.RawItem) {
	items = []domain.RawItem{}

	if !src.Kind.Valid() {
		f.logFailure(src, &coreerrors.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown source kind %q", src.Kind)})
		return items
	}
	parser := ForKind(src.Kind)

	data, err := f.fetch(ctx, src.FeedURL())
	if err != nil {
		f.logFailure(src, err)
		return items
	}

	defer func() {
		if r := recover(); r != nil {
			f.logFailure(src, fmt.Errorf("parser panic: %v", r))
			items = []domain.RawItem{}
		}
	}()

	if parsed := parser.Parse(data, src); parsed != nil {
		items = parsed
	}

	if f.deps.Logger != nil {
		f.deps.Logger.Debug("Fetched source", map[string]interface{}{
			"source": src.ID,
			"kind":   string(src.Kind),
			"items":  len(items),
		})
	}

	return items
}

func (f *Fetcher) fetch(ctx context.Context, feedURL string) ([]byte, error) {
	if f.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", feedURL, err)
	}
	body := resp.Body()
	defer body.Close()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: code,
			Message:    "unexpected status",
			API:        feedURL,
		}
	}

	data, err := io.ReadAll(io.LimitReader(body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", feedURL, err)
	}

	return data, nil
}

func (f *Fetcher) logFailure(src domain.FeedSource, err error) {
	if f.deps.Logger == nil {
		return
	}
	f.deps.Logger.Warn("Source fetch failed", map[string]interface{}{
		"source": src.ID,
		"kind":   string(src.Kind),
		"url":    src.FeedURL(),
		"error":  err.Error(),
	})
}
