package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Node-walking helpers shared by the HTML dialect extractors.

// ParseHTML parses an HTML document into a node tree.
func ParseHTML(content []byte) (*html.Node, error) {
	return html.Parse(strings.NewReader(string(content)))
}

// FindAll finds all nodes matching a predicate, in document order.
func FindAll(n *html.Node, predicate func(*html.Node) bool) []*html.Node {
	var results []*html.Node

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if predicate(node) {
			results = append(results, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return results
}

// FindFirst finds the first node matching a predicate.
func FindFirst(n *html.Node, predicate func(*html.Node) bool) *html.Node {
	var result *html.Node

	var walk func(*html.Node) bool
	walk = func(node *html.Node) bool {
		if predicate(node) {
			result = node
			return true
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	walk(n)
	return result
}

// IsElement reports whether the node is an element with the given tag.
func IsElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

// Attr returns an attribute value, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// HasClass checks whether an element carries a CSS class.
func HasClass(n *html.Node, className string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, class := range strings.Fields(Attr(n, "class")) {
		if class == className {
			return true
		}
	}
	return false
}

// StyleContains checks the inline style attribute for a substring,
// case-insensitively. Legacy chat exporters identify message blocks by
// inline styles rather than classes.
func StyleContains(n *html.Node, fragment string) bool {
	style := Attr(n, "style")
	return style != "" && strings.Contains(strings.ToLower(style), strings.ToLower(fragment))
}

// Text extracts the trimmed text content of a node and its children.
func Text(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}

	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := Text(c); t != "" {
			if buf.Len() > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(t)
		}
	}
	return strings.TrimSpace(buf.String())
}
