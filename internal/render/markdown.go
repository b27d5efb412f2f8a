package render

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// NewMarkdown returns the converter used for project descriptions. Raw HTML in
// descriptions is not passed through.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)
}

// descriptionHTML converts a description to markup, falling back to escaped
// text if conversion fails.
func descriptionHTML(md goldmark.Markdown, description string) string {
	if strings.TrimSpace(description) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(description), &buf); err != nil {
		return "<p>" + html.EscapeString(description) + "</p>"
	}
	return strings.TrimSpace(buf.String())
}
