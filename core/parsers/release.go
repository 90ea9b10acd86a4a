// ABOUTME: ReleaseParser extracts the latest published release from a repository release feed
// ABOUTME: Plain tag pushes are skipped, notes are rendered to HTML and a lead summary is derived

package parsers

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"news-aggregator-api/core/domain"
	htmlutil "news-aggregator-api/pkg/utils/html"
	timeutil "news-aggregator-api/pkg/utils/time"
)

const summaryLimit = 200

var (
	versionPattern   = regexp.MustCompile(`v?\d[\d.]*`)
	paragraphPattern = regexp.MustCompile(`\n\s*\n`)
)

// ReleaseParser parses repository release feeds
type ReleaseParser struct{}

// Parse implements Parser
func (ReleaseParser) Parse(data []byte, src domain.FeedSource) []domain.RawItem {
	limit := domain.KindRelease.ParserLimit()
	items := make([]domain.RawItem, 0, limit)

	for _, entry := range blocks(entryPattern, data) {
		if len(items) == limit {
			break
		}

		link := extractAttr(entry, "link", "href")
		if !strings.Contains(link, "/releases/tag/") {
			continue
		}

		title := htmlutil.CleanText(extractTag(entry, "title"))
		notes := htmlutil.CleanText(extractTag(entry, "content"))

		items = append(items, domain.RawItem{
			Title:       title,
			Link:        htmlutil.DecodeEntities(link),
			Description: summarize(notes),
			Content:     renderNotes(notes),
			PublishedAt: timeutil.ParseWithNow(htmlutil.CleanText(extractTag(entry, "updated"))),
			ImageURL:    openGraphImage(src.Owner, src.Repo),
			Release: &domain.ReleaseInfo{
				TagName:    tagName(title),
				Prerelease: isPrerelease(title),
			},
		})
	}

	return items
}

// tagName returns the first version token of a release title, or the title itself
func tagName(title string) string {
	if tag := versionPattern.FindString(title); tag != "" {
		return tag
	}
	return title
}

func isPrerelease(title string) bool {
	t := strings.ToLower(title)
	return strings.Contains(t, "pre") || strings.Contains(t, "beta") || strings.Contains(t, "alpha")
}

// summarize picks the lead paragraph of release notes, skipping headers, images and links
func summarize(notes string) string {
	notes = strings.ReplaceAll(notes, "\r\n", "\n")
	if strings.TrimSpace(notes) == "" {
		return ""
	}

	for _, para := range paragraphPattern.Split(notes, -1) {
		para = strings.TrimSpace(para)
		if para == "" || isDecoration(para) {
			continue
		}
		if text := htmlutil.StripHTML(para); text != "" {
			return truncateRunes(text, summaryLimit)
		}
	}

	return truncateRunes(htmlutil.StripHTML(notes), summaryLimit)
}

func isDecoration(para string) bool {
	lower := strings.ToLower(para)
	for _, prefix := range []string{"#", "!", "[", "<h", "<img", "<a ", "<a>"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func openGraphImage(owner, repo string) string {
	return fmt.Sprintf("https://opengraph.githubassets.com/1/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
}
