package parsers

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"news-aggregator-api/core/domain"
	"news-aggregator-api/core/interfaces"
)

func TestFetcher_FetchSource(t *testing.T) {
	var requested string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			requested = url
			if _, ok := ctx.Deadline(); !ok {
				t.Error("fetch context should carry a deadline")
			}
			return &mockResponse{statusCode: 200, body: releaseFeed}, nil
		},
	}

	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}}, 0)
	items := f.FetchSource(context.Background(), box64)

	if requested != "https://github.com/ptitSeb/box64/releases.atom" {
		t.Errorf("requested %q", requested)
	}
	if len(items) != 1 || items[0].Release == nil {
		t.Fatalf("FetchSource() = %+v, want one release item", items)
	}
}

func TestFetcher_SourceFailures(t *testing.T) {
	tests := []struct {
		name string
		resp interfaces.Response
		err  error
	}{
		{"server error", &mockResponse{statusCode: 503, body: "unavailable"}, nil},
		{"not found", &mockResponse{statusCode: 404}, nil},
		{"transport error", nil, errors.New("connection refused")},
		{"timeout", nil, context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warned []string
			var mu sync.Mutex
			logger := &mockLogger{
				warnFunc: func(msg string, fields map[string]interface{}) {
					mu.Lock()
					defer mu.Unlock()
					warned = append(warned, fields["source"].(string))
				},
			}
			client := &mockHTTPClient{
				getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
					return tt.resp, tt.err
				},
			}

			items := NewFetcher(interfaces.Dependencies{HTTPClient: client, Logger: logger}, time.Second).
				FetchSource(context.Background(), etaPrime)

			if items == nil || len(items) != 0 {
				t.Errorf("FetchSource() = %v, want empty non-nil slice", items)
			}
			if len(warned) != 1 || warned[0] != "etaprime" {
				t.Errorf("expected one warning for etaprime, got %v", warned)
			}
		})
	}
}

func TestFetcher_UnknownKind(t *testing.T) {
	called := false
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			called = true
			return &mockResponse{statusCode: 200}, nil
		},
	}

	items := NewFetcher(interfaces.Dependencies{HTTPClient: client}, 0).
		FetchSource(context.Background(), domain.FeedSource{ID: "x", Kind: "podcast"})

	if called {
		t.Error("unknown kinds should not be fetched")
	}
	if items == nil || len(items) != 0 {
		t.Errorf("FetchSource() = %v, want empty non-nil slice", items)
	}
}

func TestFetcher_NoClient(t *testing.T) {
	items := NewFetcher(interfaces.Dependencies{}, 0).FetchSource(context.Background(), etaPrime)
	if items == nil || len(items) != 0 {
		t.Errorf("FetchSource() = %v, want empty non-nil slice", items)
	}
}

func TestFetcher_DispatchesByKind(t *testing.T) {
	bodies := map[string]string{
		"https://example.com/feed": rssHead + `<item><title>a</title><link>https://example.com/a</link></item>` + rssTail,
		etaPrime.FeedURL():         string(videoFeed(videoEntry("abc123", "T", "d"))),
	}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: bodies[url]}, nil
		},
	}
	f := NewFetcher(interfaces.Dependencies{HTTPClient: client}, 0)

	rss := f.FetchSource(context.Background(), domain.FeedSource{ID: "rps", Kind: domain.KindSyndication, URL: "https://example.com/feed"})
	if len(rss) != 1 || rss[0].Kind() != domain.KindSyndication {
		t.Errorf("syndication fetch = %+v", rss)
	}

	videos := f.FetchSource(context.Background(), etaPrime)
	if len(videos) != 1 || !strings.Contains(videos[0].Link, "abc123") {
		t.Errorf("video fetch = %+v", videos)
	}
}
