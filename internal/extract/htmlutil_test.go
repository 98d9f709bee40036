package extract

import (
	"testing"

	"golang.org/x/net/html"
)

func mustParse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := ParseHTML([]byte(src))
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	return doc
}

func TestFindAllAndText(t *testing.T) {
	doc := mustParse(t, `<div><p>one</p><p> two </p><span>skip</span></div>`)

	ps := FindAll(doc, func(n *html.Node) bool { return IsElement(n, "p") })
	if len(ps) != 2 {
		t.Fatalf("expected 2 <p>, got %d", len(ps))
	}
	if Text(ps[0]) != "one" || Text(ps[1]) != "two" {
		t.Errorf("Text = %q, %q", Text(ps[0]), Text(ps[1]))
	}
}

func TestFindFirst(t *testing.T) {
	doc := mustParse(t, `<div><b>first</b><b>second</b></div>`)
	b := FindFirst(doc, func(n *html.Node) bool { return IsElement(n, "b") })
	if b == nil || Text(b) != "first" {
		t.Fatalf("FindFirst returned %v", b)
	}
}

func TestHasClass(t *testing.T) {
	doc := mustParse(t, `<div class="message odd">x</div>`)
	div := FindFirst(doc, func(n *html.Node) bool { return IsElement(n, "div") })
	if !HasClass(div, "message") || !HasClass(div, "odd") {
		t.Error("expected both classes to match")
	}
	if HasClass(div, "mess") {
		t.Error("class matching must be whole-token")
	}
}

func TestStyleContains(t *testing.T) {
	doc := mustParse(t, `<span style="BACKGROUND-COLOR: #FFFFFF; font-size: small">x</span>`)
	span := FindFirst(doc, func(n *html.Node) bool { return IsElement(n, "span") })
	if !StyleContains(span, "background-color: #ffffff") {
		t.Error("style match should be case-insensitive")
	}
	if StyleContains(span, "xx-small") {
		t.Error("unexpected style fragment match")
	}
}

func TestAttr(t *testing.T) {
	doc := mustParse(t, `<div timestamp="2014-02-25 14:30:00">x</div>`)
	div := FindFirst(doc, func(n *html.Node) bool { return IsElement(n, "div") })
	if got := Attr(div, "timestamp"); got != "2014-02-25 14:30:00" {
		t.Errorf("Attr = %q", got)
	}
	if Attr(div, "missing") != "" {
		t.Error("absent attribute should be empty")
	}
}

func TestTextJoinsNestedNodes(t *testing.T) {
	doc := mustParse(t, `<p>hello <b>bold</b> world</p>`)
	p := FindFirst(doc, func(n *html.Node) bool { return IsElement(n, "p") })
	if got := Text(p); got != "hello bold world" {
		t.Errorf("Text = %q", got)
	}
}
