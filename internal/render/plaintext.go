package render

import (
	"html"
	"strings"
)

const rendererPlainText = "plaintext"

// PlainText is the renderer of last resort: escaped text with <br>
// line breaks. It never fails, which anchors the chain's totality.
type PlainText struct{}

// Name implements Renderer.
func (PlainText) Name() string { return rendererPlainText }

// Render escapes the content and converts newlines to <br>.
func (PlainText) Render(content string) (string, error) {
	return escapeWithBreaks(content), nil
}

func escapeWithBreaks(content string) string {
	return strings.ReplaceAll(html.EscapeString(content), "\n", "<br>")
}
