// Package render converts markdown email content to styled HTML with
// graceful degradation: a full markdown engine, then a hand-rolled
// converter, then escaped text with line breaks. The chain always
// produces a non-empty HTML document regardless of input.
package render

import (
	"fmt"
	"log"
	"strings"
)

// Renderer converts markdown content to an HTML fragment.
type Renderer interface {
	Name() string
	Render(content string) (string, error)
}

// Capabilities describes which tiers are active in a chain, surfaced
// through the status resource.
type Capabilities struct {
	MarkdownSupport   bool     `json:"markdown_support"`
	FallbackConverter bool     `json:"fallback_converter"`
	Tiers             []string `json:"tiers"`
}

// Chain tries each renderer in order and wraps the first successful
// fragment in the email document shell. A tier that errors or panics
// falls through to the next one.
type Chain struct {
	tiers []Renderer
}

// NewChain composes renderers into a fallback chain.
func NewChain(tiers ...Renderer) *Chain {
	return &Chain{tiers: tiers}
}

// Default returns the production chain: goldmark, the hand-rolled
// converter, then the plain-text renderer of last resort.
func Default() *Chain {
	return NewChain(NewGoldmark(), Fallback{}, PlainText{})
}

// Render converts content to a complete HTML document. It is total:
// every input, including empty or non-UTF8 strings, yields a document.
func (c *Chain) Render(content string) string {
	for _, tier := range c.tiers {
		fragment, err := c.tryRender(tier, content)
		if err != nil {
			log.Printf("renderer %s failed, falling back: %v", tier.Name(), err)
			continue
		}
		return wrapDocument(fragment)
	}
	// All tiers failed. PlainText never errors, so this only happens
	// with a custom chain; keep the totality guarantee anyway.
	return wrapDocument(escapeWithBreaks(content))
}

func (c *Chain) tryRender(r Renderer, content string) (fragment string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("renderer panic: %v", rec)
		}
	}()
	return r.Render(content)
}

// Capabilities reports which conversion tiers the chain carries.
func (c *Chain) Capabilities() Capabilities {
	caps := Capabilities{}
	for _, tier := range c.tiers {
		caps.Tiers = append(caps.Tiers, tier.Name())
		switch tier.Name() {
		case rendererGoldmark:
			caps.MarkdownSupport = true
		case rendererFallback:
			caps.FallbackConverter = true
		}
	}
	return caps
}

// emailCSS keeps the message readable in common mail clients. Styles
// are embedded because most clients ignore external stylesheets.
const emailCSS = `body { font-family: -apple-system, Helvetica, Arial, sans-serif; color: #24292e; line-height: 1.6; max-width: 720px; margin: 0 auto; padding: 16px; }
h1, h2, h3, h4, h5, h6 { color: #1a1a1a; margin-top: 24px; margin-bottom: 12px; }
h1 { font-size: 1.7em; border-bottom: 1px solid #eaecef; padding-bottom: 6px; }
h2 { font-size: 1.4em; border-bottom: 1px solid #eaecef; padding-bottom: 4px; }
code { font-family: "SFMono-Regular", Consolas, Menlo, monospace; font-size: 0.9em; background-color: #f6f8fa; border-radius: 3px; padding: 2px 5px; }
pre { background-color: #f6f8fa; border-radius: 6px; padding: 12px; overflow-x: auto; }
pre code { background-color: transparent; padding: 0; }
blockquote { border-left: 4px solid #dfe2e5; color: #6a737d; margin: 0; padding: 0 16px; }
table { border-collapse: collapse; margin: 12px 0; width: 100%; }
th, td { border: 1px solid #dfe2e5; padding: 6px 12px; text-align: left; }
tr:nth-child(even) { background-color: #f6f8fa; }
a { color: #0366d6; text-decoration: none; }
a:hover { text-decoration: underline; }
hr { border: 0; border-top: 1px solid #eaecef; margin: 20px 0; }`

func wrapDocument(fragment string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	b.WriteString(emailCSS)
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(fragment)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
