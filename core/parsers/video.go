// ABOUTME: VideoParser extracts recent uploads from a video channel feed
// ABOUTME: Thumbnail and watch URLs are derived from the video id without extra requests

package parsers

import (
	"fmt"
	"net/url"
	"strings"

	"news-aggregator-api/core/domain"
	htmlutil "news-aggregator-api/pkg/utils/html"
	timeutil "news-aggregator-api/pkg/utils/time"
)

const videoEmbed = `<div style="text-align: center; margin: 20px 0;">
  <a href="%[1]s" target="_blank" style="text-decoration: none; color: inherit;">
    <img src="%[2]s" alt="%[3]s" style="width: 100%%; max-width: 100%%; height: auto; display: block; border-radius: 8px; margin-bottom: 16px;">
    <div style="display: inline-flex; align-items: center; background-color: #FF0000; color: white; padding: 12px 24px; border-radius: 8px; font-weight: 600; font-size: 16px; margin-bottom: 20px;">
      <svg width="24" height="24" viewBox="0 0 24 24" fill="white" style="margin-right: 8px;">
        <path d="M10 16.5l6-4.5-6-4.5v9zM12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm0 18c-4.41 0-8-3.59-8-8s3.59-8 8-8 8 3.59 8 8-3.59 8-8 8z"/>
      </svg>
      Watch on YouTube
    </div>
  </a>
</div>
<div style="color: #e0e0e0; line-height: 1.8; padding: 0 20px; white-space: pre-wrap;">%[4]s</div>`

// VideoParser parses video channel feeds
type VideoParser struct{}

// Parse implements Parser
func (VideoParser) Parse(data []byte, src domain.FeedSource) []domain.RawItem {
	limit := domain.KindVideo.ParserLimit()
	items := make([]domain.RawItem, 0, limit)

	for _, entry := range blocks(entryPattern, data) {
		if len(items) == limit {
			break
		}

		videoID := strings.TrimSpace(extractTag(entry, "yt:videoId"))
		if videoID == "" {
			continue
		}

		title := htmlutil.CleanText(extractTag(entry, "title"))
		description := htmlutil.CleanText(extractTag(entry, "media:description"))
		thumbnail := ThumbnailURL(videoID)
		watch := WatchURL(videoID)

		summary := description
		if summary == "" {
			summary = fmt.Sprintf("Watch %s on YouTube", title)
		}

		items = append(items, domain.RawItem{
			Title:       title,
			Link:        watch,
			Description: summary,
			Content: fmt.Sprintf(videoEmbed,
				htmlutil.EscapeString(watch),
				htmlutil.EscapeString(thumbnail),
				htmlutil.EscapeString(title),
				autolink(htmlutil.EscapeString(description)),
			),
			PublishedAt: timeutil.ParseWithNow(htmlutil.CleanText(extractTag(entry, "published"))),
			ImageURL:    thumbnail,
			Video: &domain.VideoInfo{
				VideoID:     videoID,
				ChannelName: htmlutil.CleanText(extractTag(entry, "name")),
			},
		})
	}

	return items
}

// ThumbnailURL returns the max resolution thumbnail for a video id
func ThumbnailURL(videoID string) string {
	return "https://i.ytimg.com/vi/" + url.PathEscape(videoID) + "/maxresdefault.jpg"
}

// WatchURL returns the canonical watch page for a video id
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
}
