// ABOUTME: Renders release notes from markdown to sanitized HTML
// ABOUTME: goldmark handles GFM with hard line breaks, bluemonday strips unsafe markup

package parsers

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

const releaseFallbackNotes = "Release information available on GitHub."

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		// Release feeds already carry rendered HTML; let it through to the sanitizer
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps(), goldmarkhtml.WithUnsafe()),
	)

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.AddTargetBlankToFullyQualifiedLinks(true)
	})
	return policy
}

// renderNotes converts release notes to safe HTML
func renderNotes(notes string) string {
	if strings.TrimSpace(notes) == "" {
		notes = releaseFallbackNotes
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(notes), &buf); err != nil {
		return "<p>" + sanitizer().Sanitize(notes) + "</p>"
	}

	return sanitizer().Sanitize(buf.String())
}
