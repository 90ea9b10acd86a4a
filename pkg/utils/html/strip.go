// ABOUTME: HTML utilities for stripping tags, decoding entities and spotting block markup
// ABOUTME: Built on the x/net/html tokenizer so malformed feed markup degrades gracefully

package html

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	cdataPattern      = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripHTML removes HTML tags and decodes entities from a string.
// Script and style bodies are dropped and whitespace is collapsed.
func StripHTML(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(whitespacePattern.ReplaceAllString(b.String(), " "))
		case html.StartTagToken:
			if a := tagAtom(z); a == atom.Script || a == atom.Style {
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			if a := tagAtom(z); (a == atom.Script || a == atom.Style) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// DecodeEntities decodes named and numeric HTML entities
func DecodeEntities(text string) string {
	return html.UnescapeString(text)
}

// StripCDATA unwraps every CDATA section, keeping its body
func StripCDATA(text string) string {
	return cdataPattern.ReplaceAllString(text, "$1")
}

// CleanText unwraps CDATA, decodes entities and trims the result.
// It is applied to every text field lifted out of a feed document.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(DecodeEntities(StripCDATA(text)))
}

// EscapeString escapes <, >, &, ' and " for safe embedding in HTML
func EscapeString(text string) string {
	return html.EscapeString(text)
}

var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Article: true, atom.Section: true,
	atom.Header: true, atom.Iframe: true, atom.Figure: true, atom.Blockquote: true,
	atom.Pre: true, atom.Ul: true, atom.Ol: true, atom.Table: true, atom.Hr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// HasBlockMarkup reports whether s contains at least one block-level HTML element
func HasBlockMarkup(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			if blockElements[tagAtom(z)] {
				return true
			}
		}
	}
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}
