package render

import (
	"bytes"
	"fmt"

	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

const rendererGoldmark = "goldmark"

// Goldmark is the preferred renderer. The extension set is fixed at
// compile time: tables, fenced code with syntax highlighting, hard line
// breaks, strikethrough, autolinks, task lists and heading attributes.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark creates the tier-1 markdown renderer.
func NewGoldmark() *Goldmark {
	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.Linkify,
				extension.TaskList,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAttribute(),
			),
			goldmark.WithRendererOptions(
				ghtml.WithHardWraps(),
			),
		),
	}
}

// Name implements Renderer.
func (g *Goldmark) Name() string { return rendererGoldmark }

// Render converts markdown to an HTML fragment.
func (g *Goldmark) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert failed: %w", err)
	}
	return buf.String(), nil
}
