// ABOUTME: Turns bare URLs and timestamps in escaped text into links and highlighted spans
// ABOUTME: One combined pass so a URL is never re-linked by the www or timestamp rules

package parsers

import (
	"regexp"
	"strings"
)

const linkStyle = `color: #64a4ff; text-decoration: none;`

// Trailing punctuation is not part of a link
var autolinkPattern = regexp.MustCompile(
	`(?i)(https?://[^\s<]+[^\s<.,;:!?'")\]}])` +
		`|(www\.[^\s<]+[^\s<.,;:!?'")\]}])` +
		`|(\d{1,2}:\d{2}(?::\d{2})?)`,
)

// autolink rewrites already-escaped text. Protocol URLs become links,
// www. URLs become https links unless they follow an @ or a scheme, and timestamps
// such as 1:23 or 01:02:03 are highlighted.
func autolink(escaped string) string {
	matches := autolinkPattern.FindAllStringSubmatchIndex(escaped, -1)
	if len(matches) == 0 {
		return escaped
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(escaped[last:start])
		text := escaped[start:end]

		switch {
		case m[2] >= 0:
			b.WriteString(`<a href="` + text + `" target="_blank" style="` + linkStyle + `">` + text + `</a>`)
		case m[4] >= 0:
			prefix := escaped[:start]
			if strings.HasSuffix(prefix, "@") || strings.HasSuffix(prefix, "://") {
				b.WriteString(text)
			} else {
				b.WriteString(`<a href="https://` + text + `" target="_blank" style="` + linkStyle + `">` + text + `</a>`)
			}
		default:
			b.WriteString(`<span style="color: #64a4ff; font-weight: 500;">` + text + `</span>`)
		}
		last = end
	}
	b.WriteString(escaped[last:])

	return b.String()
}
