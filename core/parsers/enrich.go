// ABOUTME: ArticleEnricher replaces plain-text syndication content with the readable article body
// ABOUTME: Uses go-readability on the linked page; failures leave the item untouched

package parsers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"news-aggregator-api/core/domain"
	"news-aggregator-api/core/interfaces"
	htmlutil "news-aggregator-api/pkg/utils/html"
)

// ArticleEnricher fetches linked articles for items that only carry a text teaser
type ArticleEnricher struct {
	deps    interfaces.Dependencies
	timeout time.Duration
}

// NewArticleEnricher creates an enricher whose page fetches are bounded by timeout
func NewArticleEnricher(deps interfaces.Dependencies, timeout time.Duration) *ArticleEnricher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &ArticleEnricher{deps: deps, timeout: timeout}
}

// Enrich updates at most limit leading items in place and returns how many changed.
// Only syndication items whose content has no block markup are considered.
func (e *ArticleEnricher) Enrich(ctx context.Context, items []domain.RawItem, limit int) int {
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}

	enriched := 0
	for i := 0; i < limit; i++ {
		item := &items[i]
		if item.Kind() != domain.KindSyndication || htmlutil.HasBlockMarkup(item.Content) {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		content, err := e.readable(ctx, item.Link)
		if err != nil {
			if e.deps.Logger != nil {
				e.deps.Logger.Debug("Article enrichment skipped", map[string]interface{}{
					"url":   item.Link,
					"error": err.Error(),
				})
			}
			continue
		}

		item.Content = content
		enriched++
	}

	return enriched
}

func (e *ArticleEnricher) readable(ctx context.Context, link string) (string, error) {
	pageURL, err := url.Parse(link)
	if err != nil || pageURL.Host == "" {
		return "", fmt.Errorf("invalid article URL %q", link)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.deps.HTTPClient.Get(ctx, link)
	if err != nil {
		return "", err
	}
	body := resp.Body()
	defer body.Close()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return "", fmt.Errorf("article returned status %d", code)
	}

	article, err := readability.FromReader(io.LimitReader(body, maxFeedBytes), pageURL)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", errors.New("no readable content")
	}

	return article.Content, nil
}
