// ABOUTME: Item domain models for parsed feed entries and aggregated news
// ABOUTME: RawItem is the parser output variant, NewsItem the identity-bearing aggregate record

package domain

import "time"

// ReleaseInfo is the release-specific payload of a RawItem
type ReleaseInfo struct {
	TagName    string `json:"tag_name"`
	Prerelease bool   `json:"prerelease"`
}

// VideoInfo is the video-specific payload of a RawItem
type VideoInfo struct {
	VideoID     string `json:"video_id"`
	ChannelName string `json:"channel_name,omitempty"`
}

// RawItem represents one entry produced by a source parser.
// At most one of Release and Video is set.
type RawItem struct {
	// Title is the entry headline
	Title string `json:"title"`

	// Link is the canonical URL; it is the identity input for the aggregate ID
	Link string `json:"link"`

	// Description is a short plain-text summary
	Description string `json:"description"`

	// Content is HTML or plain text
	Content string `json:"content"`

	// PublishedAt is the best-effort publication time
	PublishedAt time.Time `json:"published_at"`

	// ImageURL is the cover image, empty when none was found
	ImageURL string `json:"image_url,omitempty"`

	Release *ReleaseInfo `json:"release,omitempty"`
	Video   *VideoInfo   `json:"video,omitempty"`
}

// Kind reports which variant the item is
func (r RawItem) Kind() SourceKind {
	switch {
	case r.Release != nil:
		return KindRelease
	case r.Video != nil:
		return KindVideo
	default:
		return KindSyndication
	}
}

// NewsItem is an aggregated item with a stable identity
type NewsItem struct {
	RawItem

	// ID is derived from Link and is stable across runs
	ID int64 `json:"id"`

	SourceKind SourceKind `json:"source_kind"`
	SourceID   string     `json:"source_id"`

	// Subtitle is copied from the contributing FeedSource
	Subtitle string `json:"subtitle"`
}

// IsVideo reports whether the item came from a video source
func (n *NewsItem) IsVideo() bool {
	return n.SourceKind == KindVideo
}

// IsValid checks if the item has the fields needed to be listed
func (n *NewsItem) IsValid() bool {
	return n.ID > 0 && n.Link != "" && n.Title != ""
}
