package render

import (
	"fmt"
	"regexp"
	"strings"
)

const rendererFallback = "fallback"

// Fallback is the tier-2 renderer: an ordered set of regex and
// line-scan passes covering the common markdown constructs. It exists
// so content still arrives formatted when the markdown engine fails.
type Fallback struct{}

// Name implements Renderer.
func (Fallback) Name() string { return rendererFallback }

var (
	headerRes  = compileHeaderRes()
	boldRe     = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	boldAltRe  = regexp.MustCompile(`__([^_\n]+)__`)
	italicRe   = regexp.MustCompile(`\*([^\s*](?:[^*\n]*[^\s*])?)\*`)
	italicAlt  = regexp.MustCompile(`_([^\s_](?:[^_\n]*[^\s_])?)_`)
	codeRe     = regexp.MustCompile("`([^`\n]+)`")
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	bulletRe   = regexp.MustCompile(`^\s*[-*+]\s+(.*)$`)
	orderedRe  = regexp.MustCompile(`^\s*\d+\.\s+(.*)$`)
	quoteRe    = regexp.MustCompile(`^>\s?(.*)$`)
	headerLine = regexp.MustCompile(`^<h[1-6]>`)
)

func compileHeaderRes() []*regexp.Regexp {
	// Longest prefix first so "###" is not consumed by the "#" pass.
	res := make([]*regexp.Regexp, 0, 6)
	for level := 6; level >= 1; level-- {
		res = append(res, regexp.MustCompile(
			fmt.Sprintf(`(?m)^%s\s+(.+)$`, strings.Repeat("#", level)),
		))
	}
	return res
}

// Render applies inline conversions first, then a line scan that
// assembles lists, blockquotes, rules and paragraphs.
func (Fallback) Render(content string) (string, error) {
	out := content

	for i, re := range headerRes {
		level := 6 - i
		out = re.ReplaceAllString(out, fmt.Sprintf("<h%d>$1</h%d>", level, level))
	}
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = boldAltRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = italicAlt.ReplaceAllString(out, "<em>$1</em>")
	out = codeRe.ReplaceAllString(out, "<code>$1</code>")
	out = linkRe.ReplaceAllString(out, `<a href="$2">$1</a>`)

	return scanLines(out), nil
}

// scanLines walks the inline-converted text and emits block elements.
// Consecutive bullet lines merge into one <ul>, consecutive numbered
// lines into one <ol>; a blank or non-item line closes the open list.
func scanLines(text string) string {
	var (
		out      []string
		openList string
	)

	closeList := func() {
		if openList != "" {
			out = append(out, "</"+openList+">")
			openList = ""
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			closeList()
			out = append(out, "<br>")
		case bulletRe.MatchString(line):
			item := bulletRe.FindStringSubmatch(line)[1]
			if openList != "ul" {
				closeList()
				out = append(out, "<ul>")
				openList = "ul"
			}
			out = append(out, "<li>"+item+"</li>")
		case orderedRe.MatchString(line):
			item := orderedRe.FindStringSubmatch(line)[1]
			if openList != "ol" {
				closeList()
				out = append(out, "<ol>")
				openList = "ol"
			}
			out = append(out, "<li>"+item+"</li>")
		case quoteRe.MatchString(trimmed):
			closeList()
			out = append(out, "<blockquote>"+quoteRe.FindStringSubmatch(trimmed)[1]+"</blockquote>")
		case trimmed == "---":
			closeList()
			out = append(out, "<hr>")
		case headerLine.MatchString(trimmed):
			closeList()
			out = append(out, trimmed)
		default:
			closeList()
			out = append(out, "<p>"+line+"</p>")
		}
	}
	closeList()

	return strings.Join(out, "\n")
}
