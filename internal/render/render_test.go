package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal9000y/gmail-send-mcp/internal/render"
)

type brokenRenderer struct {
	panics bool
}

func (r brokenRenderer) Name() string { return "broken" }

func (r brokenRenderer) Render(string) (string, error) {
	if r.panics {
		panic("renderer exploded")
	}
	return "", errors.New("simulated failure")
}

func TestChainTotality(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "whitespace only", content: "   \n\t\n  "},
		{name: "plain text", content: "hello there"},
		{name: "markdown document", content: "# Title\n\nSome **bold** text.\n\n- one\n- two"},
		{name: "invalid utf8", content: "caf\xff\xfe latte"},
		{name: "only newlines", content: "\n\n\n"},
	}

	chain := render.Default()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := chain.Render(tc.content)
			assert.NotEmpty(t, doc)
			assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"), "document shell missing")
			assert.Contains(t, doc, `<meta charset="utf-8">`)
			assert.Contains(t, doc, "<body>")
			assert.Contains(t, doc, "</html>")
		})
	}
}

func TestChainIdempotence(t *testing.T) {
	content := "# Report\n\nValue is `42`.\n\n- first\n- second\n"

	chain := render.Default()
	first := chain.Render(content)
	second := chain.Render(content)
	assert.Equal(t, first, second)

	fallbackChain := render.NewChain(render.Fallback{}, render.PlainText{})
	assert.Equal(t, fallbackChain.Render(content), fallbackChain.Render(content))
}

func TestChainFallsBackOnError(t *testing.T) {
	chain := render.NewChain(brokenRenderer{}, render.Fallback{}, render.PlainText{})

	doc := chain.Render("# Heading")
	assert.Contains(t, doc, "<h1>Heading</h1>", "tier-1 failure should reach the fallback converter, not plain text")
}

func TestChainFallsBackOnPanic(t *testing.T) {
	chain := render.NewChain(brokenRenderer{panics: true}, render.Fallback{}, render.PlainText{})

	doc := chain.Render("**still formatted**")
	assert.Contains(t, doc, "<strong>still formatted</strong>")
}

func TestChainLastResort(t *testing.T) {
	chain := render.NewChain(brokenRenderer{}, brokenRenderer{panics: true}, render.PlainText{})

	doc := chain.Render("<script>\nline two")
	assert.Contains(t, doc, "&lt;script&gt;<br>line two")
	assert.NotContains(t, doc, "<script>\n")
}

func TestChainCapabilities(t *testing.T) {
	caps := render.Default().Capabilities()
	assert.True(t, caps.MarkdownSupport)
	assert.True(t, caps.FallbackConverter)
	assert.Equal(t, []string{"goldmark", "fallback", "plaintext"}, caps.Tiers)

	degraded := render.NewChain(render.PlainText{}).Capabilities()
	assert.False(t, degraded.MarkdownSupport)
	assert.False(t, degraded.FallbackConverter)
}

func TestGoldmark(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "heading",
			content:  "# Hello",
			expected: []string{"<h1>Hello</h1>"},
		},
		{
			name:     "emphasis",
			content:  "**bold** and *italic*",
			expected: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:     "table extension",
			content:  "| a | b |\n|---|---|\n| 1 | 2 |",
			expected: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "hard line breaks",
			content:  "first line\nsecond line",
			expected: []string{"<br"},
		},
		{
			name:     "fenced code",
			content:  "```go\nfmt.Println(\"hi\")\n```",
			expected: []string{"<pre"},
		},
		{
			name:     "strikethrough",
			content:  "~~gone~~",
			expected: []string{"<del>gone</del>"},
		},
	}

	g := render.NewGoldmark()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := g.Render(tc.content)
			require.NoError(t, err)
			for _, want := range tc.expected {
				assert.Contains(t, out, want)
			}
		})
	}
}
