// ABOUTME: Lenient pattern-based extraction of feed blocks, element text and attributes
// ABOUTME: Feeds are not schema-validated so one bad entry never rejects the document

package parsers

import (
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

var (
	itemPattern  = regexp.MustCompile(`(?is)<item(?:\s[^>]*)?>(.*?)</item>`)
	entryPattern = regexp.MustCompile(`(?is)<entry(?:\s[^>]*)?>(.*?)</entry>`)

	patternCache sync.Map
)

// blocks returns the inner text of every match of a block pattern, in document order
func blocks(pattern *regexp.Regexp, data []byte) []string {
	matches := pattern.FindAllSubmatch(data, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, string(m[1]))
	}
	return out
}

// extractTag returns the raw inner text of the first <name> element in block
func extractTag(block, name string) string {
	re := cachedPattern("tag:"+name, `(?is)<`+regexp.QuoteMeta(name)+`(?:\s[^>]*)?>(.*?)</`+regexp.QuoteMeta(name)+`\s*>`)
	if m := re.FindStringSubmatch(block); m != nil {
		return m[1]
	}
	return ""
}

// extractAttr returns the value of attr on the first <name> element in block
func extractAttr(block, name, attr string) string {
	re := cachedPattern("attr:"+name+"@"+attr, `(?is)<`+regexp.QuoteMeta(name)+`\s[^>]*?\b`+regexp.QuoteMeta(attr)+`\s*=\s*["']([^"']+)["']`)
	if m := re.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func cachedPattern(key, expr string) *regexp.Regexp {
	if re, ok := patternCache.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	re, _ := patternCache.LoadOrStore(key, regexp.MustCompile(expr))
	return re.(*regexp.Regexp)
}

// firstImage returns the src of the first <img> in an HTML fragment
func firstImage(content string) string {
	if !strings.Contains(strings.ToLower(content), "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}

// firstNonEmpty returns the first candidate that is not blank
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}

// truncateRunes cuts s to at most n characters without splitting a rune
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
