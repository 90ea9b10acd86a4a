// ABOUTME: HTML document rendering for the detail view
// ABOUTME: html/template escapes every item field except content already marked as HTML

package transform

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"news-aggregator-api/core/domain"
	htmlutil "news-aggregator-api/pkg/utils/html"
)

const noContent = "No content available"

var blankLine = regexp.MustCompile(`\r?\n[ \t]*\r?\n`)

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>` + documentCSS + `</style>
</head>
<body>
  {{- if .Cover}}
  <img class="header-image" src="{{.Cover}}" alt="{{.Title}}" style="width: 100%; margin: 0 0 20px 0; display: block; border-radius: 0;">
  {{- end}}
  <div class="content-body">
  {{- if .HTML}}{{.HTML}}{{end}}
  {{- range .Paragraphs}}<p style="color: rgb(255, 255, 255); line-height: 1.6;">{{.}}</p>{{end -}}
  </div>
</body>
</html>`))

type document struct {
	Cover      string
	Title      string
	HTML       template.HTML
	Paragraphs []string
}

func renderDocument(item *domain.NewsItem, cover string) string {
	doc := document{Title: item.Title}

	// The video embed already leads with the thumbnail
	if !item.IsVideo() {
		doc.Cover = cover
	}

	content := strings.TrimSpace(item.Content)
	switch {
	case content == "":
		fallback := strings.TrimSpace(item.Description)
		if fallback == "" {
			fallback = noContent
		}
		doc.Paragraphs = []string{fallback}
	case htmlutil.HasBlockMarkup(content):
		// Parser output that already carries markup is trusted as-is
		doc.HTML = template.HTML(content)
	default:
		doc.Paragraphs = paragraphs(content)
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, doc); err != nil {
		return ""
	}
	return buf.String()
}

// paragraphs splits plain text on blank lines, dropping empty pieces
func paragraphs(text string) []string {
	parts := blankLine.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

const documentCSS = `
    * { box-sizing: border-box; }

    html, body {
      background-color: #111827;
      color: #e0e0e0;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
      padding: 0;
      margin: 0;
      line-height: 1.7;
      font-size: 16px;
      min-height: 100%;
      height: auto;
      overflow-x: hidden;
    }

    .header-image { max-width: 100%; height: auto; display: block; margin: 0 0 20px 0; border-radius: 0; }

    .content-body img, .content-body figure { display: none !important; }

    a { color: #64a4ff; text-decoration: none; transition: color 0.2s ease; }
    a:hover { color: #8cb4ff; text-decoration: underline; }

    p { margin: 0 0 12px 0; padding: 0 20px; color: #e0e0e0; line-height: 1.6; text-align: left; }

    article { padding: 20px; }
    article p { padding: 0; margin: 0 0 12px 0; }

    h1, h2, h3, h4, h5, h6 { color: #ffffff; font-weight: 600; margin: 24px 0 12px 0; padding: 0 20px; line-height: 1.3; }
    article h1, article h2, article h3, article h4, article h5, article h6 { padding: 0; }
    h1 { font-size: 28px; margin-top: 32px; }
    h2 { font-size: 24px; margin-top: 28px; }
    h3 { font-size: 20px; margin-top: 24px; }
    h4 { font-size: 18px; }
    h5 { font-size: 16px; }
    h6 { font-size: 14px; }

    ul, ol { margin: 8px 0; padding: 0 20px 0 44px; color: #e0e0e0; }
    article ul, article ol { padding-left: 24px; margin: 8px 0; }
    li { margin: 4px 0; line-height: 1.6; }
    li p { padding: 0; margin: 4px 0; }
    ul li { list-style-type: disc; }
    ul ul li { list-style-type: circle; }
    ol li { list-style-type: decimal; }

    blockquote { margin: 20px 0; padding: 16px 20px; border-left: 4px solid #64a4ff; color: #b0b0b0; font-style: italic; }

    code { padding: 2px 6px; border-radius: 4px; font-family: "SF Mono", Monaco, Consolas, monospace; font-size: 14px; color: #ff6b6b; }
    pre { padding: 16px; border-radius: 8px; overflow-x: auto; margin: 16px 20px; }
    article pre { margin: 16px 0; }
    pre code { background: none; padding: 0; color: #e0e0e0; }

    table { width: calc(100% - 40px); margin: 20px 20px; border-collapse: collapse; }
    article table { width: 100%; margin: 20px 0; }
    th, td { padding: 12px; text-align: left; border-bottom: 1px solid #333; }
    th { font-weight: 600; color: #ffffff; }

    figure { margin: 24px 0; padding: 0; }
    figcaption { color: #999; font-size: 14px; padding: 8px 20px; font-style: italic; line-height: 1.5; }

    hr { border: none; border-top: 1px solid #333; margin: 24px 20px; }
    article hr { margin: 24px 0; }

    strong, b { font-weight: 600; color: #ffffff; }
    em, i { font-style: italic; color: #d0d0d0; }

    .video-container { position: relative; padding-bottom: 56.25%; height: 0; overflow: hidden; margin: 20px 0; }
    .video-container iframe { position: absolute; top: 0; left: 0; width: 100%; height: 100%; border: none; }

    .caption-text, .credit { display: block; color: #999; font-size: 13px; margin-top: 4px; }
    .product, .info-box { border: 1px solid #333; border-radius: 8px; padding: 16px 20px; margin: 20px; }

    article * { max-width: 100%; }
  `
