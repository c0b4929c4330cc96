package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown renders editor-written markdown bodies to HTML.
// Raw HTML in the source is omitted. A single instance is safe for concurrent use.
type Markdown struct {
	engine goldmark.Markdown
}

// NewMarkdown builds a renderer with GFM, linkify and heading ids enabled
func NewMarkdown() *Markdown {
	return &Markdown{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render converts markdown source to HTML
func (m *Markdown) Render(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := m.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

// HTML renders source for use in templates; rendering errors produce an empty fragment
func (m *Markdown) HTML(source string) template.HTML {
	out, err := m.Render(source)
	if err != nil {
		return ""
	}
	// goldmark without html.WithUnsafe escapes raw HTML, so the output is safe to embed
	return template.HTML(out)
}
