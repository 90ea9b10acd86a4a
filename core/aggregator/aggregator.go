// ABOUTME: Aggregator merges per-source parse results into one bounded, ordered news list
// ABOUTME: Applies per-kind caps, assigns stable link-derived ids and sorts newest first

package aggregator

import (
	"sort"
	"unicode/utf16"

	"news-aggregator-api/core/domain"
)

// Batch pairs a configured source with the items its parser produced
type Batch struct {
	Source domain.FeedSource
	Items  []domain.RawItem
}

// Aggregate merges batches deterministically.
// Families are visited syndication, release, video; within a family batches
// keep their input order. Each batch is cut to its kind's aggregate cap, the
// result is stable-sorted by PublishedAt descending and cut to maxTotal.
// A maxTotal of zero or less disables the global cap.
func Aggregate(batches []Batch, maxTotal int) []domain.NewsItem {
	all := make([]domain.NewsItem, 0)

	for _, kind := range domain.Kinds {
		for _, b := range batches {
			if b.Source.Kind != kind {
				continue
			}

			items := b.Items
			if limit := kind.AggregateLimit(); len(items) > limit {
				items = items[:limit]
			}

			for _, raw := range items {
				all = append(all, domain.NewsItem{
					RawItem:    raw,
					ID:         StableID(raw.Link),
					SourceKind: kind,
					SourceID:   b.Source.ID,
					Subtitle:   b.Source.Subtitle,
				})
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})

	if maxTotal > 0 && len(all) > maxTotal {
		all = all[:maxTotal]
	}

	return all
}

// StableID derives a positive identifier from s.
// It folds the UTF-16 code units of s with h = h*31 + c in 32-bit wrap-around
// arithmetic and returns |h| + 1000, so ids survive restarts and match ids
// issued by earlier deployments.
func StableID(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}

	id := int64(h)
	if id < 0 {
		id = -id
	}
	return id + 1000
}
