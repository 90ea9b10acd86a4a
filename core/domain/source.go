// ABOUTME: FeedSource domain model describes one configured upstream feed
// ABOUTME: Provides source kinds, per-kind caps and fetch URL derivation

package domain

import (
	"fmt"
	"net/url"

	coreerrors "news-aggregator-api/core/errors"
)

// SourceKind identifies the feed family a source belongs to
type SourceKind string

const (
	// KindSyndication is a plain RSS/Atom web feed
	KindSyndication SourceKind = "syndication"

	// KindRelease is a repository release feed
	KindRelease SourceKind = "release"

	// KindVideo is a video channel feed
	KindVideo SourceKind = "video"
)

// Kinds lists every source kind in aggregation order
var Kinds = []SourceKind{KindSyndication, KindRelease, KindVideo}

// ParserLimit is the maximum number of entries a parser returns for one source
func (k SourceKind) ParserLimit() int {
	switch k {
	case KindSyndication:
		return 10
	case KindRelease:
		return 1
	case KindVideo:
		return 3
	}
	return 0
}

// AggregateLimit is the maximum number of items one source contributes to the aggregate
func (k SourceKind) AggregateLimit() int {
	switch k {
	case KindSyndication:
		return 2
	case KindRelease:
		return 1
	case KindVideo:
		return 3
	}
	return 0
}

// Valid reports whether k is a known kind
func (k SourceKind) Valid() bool {
	return k == KindSyndication || k == KindRelease || k == KindVideo
}

// FeedSource describes a single upstream feed. It is immutable once loaded.
type FeedSource struct {
	// ID is the unique identifier for the source
	ID string `json:"id"`

	// Kind selects the parser and caps for the source
	Kind SourceKind `json:"kind"`

	// Locator fields; which ones apply depends on Kind
	URL       string `json:"url,omitempty"`        // syndication feed URL
	Owner     string `json:"owner,omitempty"`      // release repository owner
	Repo      string `json:"repo,omitempty"`       // release repository name
	ChannelID string `json:"channel_id,omitempty"` // video channel identifier

	// Title is the human-readable title of the source
	Title string `json:"title,omitempty"`

	// Subtitle is copied onto every item the source contributes
	Subtitle string `json:"subtitle"`
}

// FeedURL derives the URL the source is fetched from
func (s FeedSource) FeedURL() string {
	switch s.Kind {
	case KindRelease:
		return fmt.Sprintf("https://github.com/%s/%s/releases.atom", url.PathEscape(s.Owner), url.PathEscape(s.Repo))
	case KindVideo:
		return "https://www.youtube.com/feeds/videos.xml?channel_id=" + url.QueryEscape(s.ChannelID)
	default:
		return s.URL
	}
}

// Validate checks that the source carries the locator its kind needs
func (s FeedSource) Validate() error {
	if s.ID == "" {
		return &coreerrors.ValidationError{Field: "id", Message: "source id cannot be empty"}
	}

	switch s.Kind {
	case KindSyndication:
		u, err := url.Parse(s.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &coreerrors.ValidationError{Field: "url", Message: fmt.Sprintf("source %s: invalid feed URL %q", s.ID, s.URL)}
		}
	case KindRelease:
		if s.Owner == "" || s.Repo == "" {
			return &coreerrors.ValidationError{Field: "repo", Message: fmt.Sprintf("source %s: owner and repo are required", s.ID)}
		}
	case KindVideo:
		if s.ChannelID == "" {
			return &coreerrors.ValidationError{Field: "channel_id", Message: fmt.Sprintf("source %s: channel id is required", s.ID)}
		}
	default:
		return &coreerrors.ValidationError{Field: "kind", Message: fmt.Sprintf("source %s: unknown kind %q", s.ID, s.Kind)}
	}

	return nil
}

// Sources is the configured source list grouped by kind, in declaration order
type Sources struct {
	Syndication []FeedSource `json:"syndication"`
	Release     []FeedSource `json:"release"`
	Video       []FeedSource `json:"video"`
}

// All returns every source in family order: syndication, release, video
func (s Sources) All() []FeedSource {
	all := make([]FeedSource, 0, len(s.Syndication)+len(s.Release)+len(s.Video))
	all = append(all, s.Syndication...)
	all = append(all, s.Release...)
	all = append(all, s.Video...)
	return all
}

// Len returns the total number of sources
func (s Sources) Len() int {
	return len(s.Syndication) + len(s.Release) + len(s.Video)
}

// Validate checks every source and that ids are unique
func (s Sources) Validate() error {
	seen := make(map[string]bool, s.Len())
	for _, src := range s.All() {
		if err := src.Validate(); err != nil {
			return err
		}
		if seen[src.ID] {
			return &coreerrors.ValidationError{Field: "id", Message: fmt.Sprintf("duplicate source id %q", src.ID)}
		}
		seen[src.ID] = true
	}
	return nil
}
