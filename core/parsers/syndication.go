// ABOUTME: SyndicationParser extracts news entries from RSS documents
// ABOUTME: Falls back to gofeed for Atom and JSON Feed documents without <item> blocks

package parsers

import (
	"bytes"

	"github.com/mmcdole/gofeed"

	"news-aggregator-api/core/domain"
	htmlutil "news-aggregator-api/pkg/utils/html"
	timeutil "news-aggregator-api/pkg/utils/time"
)

// SyndicationParser parses RSS/Atom web feeds
type SyndicationParser struct{}

// Parse implements Parser.
// Image resolution order: first inline image, enclosure, media:content, media:thumbnail.
func (SyndicationParser) Parse(data []byte, src domain.FeedSource) []domain.RawItem {
	limit := domain.KindSyndication.ParserLimit()

	entries := blocks(itemPattern, data)
	if len(entries) == 0 {
		return parseWithGofeed(data, limit)
	}

	items := make([]domain.RawItem, 0, min(len(entries), limit))
	for _, entry := range entries {
		if len(items) == limit {
			break
		}

		link := htmlutil.CleanText(extractTag(entry, "link"))
		if link == "" {
			continue
		}

		description := htmlutil.CleanText(extractTag(entry, "description"))
		content := htmlutil.CleanText(extractTag(entry, "content:encoded"))
		if content == "" {
			content = description
		}

		items = append(items, domain.RawItem{
			Title:       htmlutil.CleanText(extractTag(entry, "title")),
			Link:        link,
			Description: description,
			Content:     content,
			PublishedAt: timeutil.ParseWithNow(htmlutil.CleanText(extractTag(entry, "pubDate"))),
			ImageURL: firstNonEmpty(
				firstImage(content),
				extractAttr(entry, "enclosure", "url"),
				extractAttr(entry, "media:content", "url"),
				extractAttr(entry, "media:thumbnail", "url"),
			),
		})
	}

	return items
}

func parseWithGofeed(data []byte, limit int) []domain.RawItem {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.RawItem{}
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return []domain.RawItem{}
	}

	items := make([]domain.RawItem, 0, min(len(feed.Items), limit))
	for _, it := range feed.Items {
		if len(items) == limit {
			break
		}
		if it == nil || it.Link == "" {
			continue
		}

		description := htmlutil.CleanText(it.Description)
		content := htmlutil.CleanText(it.Content)
		if content == "" {
			content = description
		}

		published := timeutil.ParseWithNow(it.Published)
		switch {
		case it.PublishedParsed != nil:
			published = *it.PublishedParsed
		case it.UpdatedParsed != nil:
			published = *it.UpdatedParsed
		}

		items = append(items, domain.RawItem{
			Title:       htmlutil.CleanText(it.Title),
			Link:        htmlutil.CleanText(it.Link),
			Description: description,
			Content:     content,
			PublishedAt: published,
			ImageURL:    gofeedImage(it, content),
		})
	}

	return items
}

func gofeedImage(it *gofeed.Item, content string) string {
	var enclosure, image string
	for _, e := range it.Enclosures {
		if e != nil && e.URL != "" {
			enclosure = e.URL
			break
		}
	}
	if it.Image != nil {
		image = it.Image.URL
	}

	return firstNonEmpty(
		firstImage(content),
		enclosure,
		mediaURL(it, "content"),
		mediaURL(it, "thumbnail"),
		image,
	)
}

func mediaURL(it *gofeed.Item, name string) string {
	media, ok := it.Extensions["media"]
	if !ok {
		return ""
	}
	for _, ext := range media[name] {
		if u := ext.Attrs["url"]; u != "" {
			return u
		}
	}
	return ""
}
