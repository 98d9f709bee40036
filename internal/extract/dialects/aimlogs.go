// Package dialects holds the closed set of format-specific extractors.
// Each one is a hypothesis about what a document is; the arbiter races
// all of them and keeps whichever produced the most valid records.
package dialects

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// AimLogs extracts AIM client HTML exports. Messages live in <span>
// blocks with a white inline background; the author sits in a colored
// <font>, the time in parentheses without a date. Two sub-shapes exist
// in the wild and are tried in order: a nested xx-small time span, then
// a bare parenthesised text node.
type AimLogs struct{}

func NewAimLogs() *AimLogs { return &AimLogs{} }

func (e *AimLogs) Name() string        { return "aimlogs" }
func (e *AimLogs) Kinds() []model.Kind { return []model.Kind{model.KindHTML} }
func (e *AimLogs) Required() []string  { return []string{"message"} }

func (e *AimLogs) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	doc, err := extract.ParseHTML(content)
	if err != nil {
		return nil, err
	}

	spans := extract.FindAll(doc, func(n *html.Node) bool {
		return extract.IsElement(n, "span") && extract.StyleContains(n, "background-color: #ffffff")
	})

	var candidates []extract.Candidate
	for _, span := range spans {
		if ctx.Err() != nil {
			break
		}

		author := authorFromColoredFont(span)
		if author == "" {
			continue
		}

		rawTime := timeFromNestedSpan(span)
		if rawTime == "" {
			rawTime = timeFromParenText(span)
		}
		if rawTime == "" {
			continue
		}

		message := lastFontText(span)
		if message == "" || message == ":" {
			continue
		}

		candidates = append(candidates, extract.Candidate{
			"author":    author,
			"message":   message,
			"timestamp": rawTime,
		})
	}
	return candidates, nil
}

// authorFromColoredFont reads the screen name from the first red or
// blue <font>, dropping any parenthesised suffix.
func authorFromColoredFont(span *html.Node) string {
	font := extract.FindFirst(span, func(n *html.Node) bool {
		if !extract.IsElement(n, "font") {
			return false
		}
		color := strings.ToLower(extract.Attr(n, "color"))
		return color == "#ff0000" || color == "#0000ff"
	})
	if font == nil {
		return ""
	}

	author := extract.Text(font)
	if i := strings.Index(author, "("); i >= 0 {
		author = author[:i]
	}
	return strings.TrimSpace(author)
}

// timeFromNestedSpan reads "(h:mm:ss AM)" out of the xx-small inner span.
func timeFromNestedSpan(span *html.Node) string {
	timeSpan := extract.FindFirst(span, func(n *html.Node) bool {
		return extract.IsElement(n, "span") && extract.StyleContains(n, "font-size: xx-small")
	})
	if timeSpan == nil {
		return ""
	}
	return strings.Trim(extract.Text(timeSpan), "()")
}

// timeFromParenText falls back to the first text node shaped like a
// parenthesised clock time, for exports that skip the inner span.
func timeFromParenText(span *html.Node) string {
	node := extract.FindFirst(span, func(n *html.Node) bool {
		return n.Type == html.TextNode && strings.Contains(n.Data, "(") && strings.Contains(n.Data, ")")
	})
	if node == nil {
		return ""
	}
	text := strings.TrimSpace(node.Data)
	text = strings.TrimPrefix(text, "(")
	text = strings.TrimSuffix(text, ")")
	return strings.ReplaceAll(strings.ReplaceAll(text, "(", ""), ")", "")
}

// lastFontText returns the text of the last <font> in the block, which
// is where both sub-shapes keep the message body.
func lastFontText(span *html.Node) string {
	fonts := extract.FindAll(span, func(n *html.Node) bool {
		return extract.IsElement(n, "font")
	})
	if len(fonts) == 0 {
		return ""
	}
	return extract.Text(fonts[len(fonts)-1])
}
