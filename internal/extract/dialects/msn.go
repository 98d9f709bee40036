package dialects

import (
	"context"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// Msn extracts MSN Messenger HTML logs. Each message is a colored
// <font> holding a nested size=2 time font and a <b> author; the body
// is the next sibling. The session date is not stored per message: it
// is recovered from the <title> ("... at MM/DD/YYYY ...") when the
// caller supplied no contextual date.
type Msn struct{}

func NewMsn() *Msn { return &Msn{} }

func (e *Msn) Name() string        { return "msn" }
func (e *Msn) Kinds() []model.Kind { return []model.Kind{model.KindHTML} }
func (e *Msn) Required() []string  { return []string{"message"} }

func (e *Msn) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	doc, err := extract.ParseHTML(content)
	if err != nil {
		return nil, err
	}

	sessionDate := dateFromTitle(doc)

	fonts := extract.FindAll(doc, func(n *html.Node) bool {
		return extract.IsElement(n, "font") && strings.HasPrefix(extract.Attr(n, "color"), "#")
	})

	var candidates []extract.Candidate
	for _, font := range fonts {
		if ctx.Err() != nil {
			break
		}

		rawTime := msnTime(font)
		if rawTime == "" {
			continue
		}
		author := msnAuthor(font)
		if author == "" {
			continue
		}
		message := siblingText(font)
		if message == "" {
			continue
		}

		// Anchor the bare time to the title date when one was found;
		// otherwise leave it for the contextual-date completion.
		ts := rawTime
		if sessionDate != "" {
			if clock, ok := to24h(rawTime); ok {
				ts = sessionDate + " " + clock
			}
		}

		candidates = append(candidates, extract.Candidate{
			"author":    author,
			"message":   message,
			"timestamp": ts,
		})
	}
	return candidates, nil
}

// dateFromTitle pulls the session date out of the <title> tag, e.g.
// "Chat with X at 8/13/2005 2:00 PM" -> "2005-08-13".
func dateFromTitle(doc *html.Node) string {
	title := extract.FindFirst(doc, func(n *html.Node) bool {
		return extract.IsElement(n, "title")
	})
	if title == nil {
		return ""
	}

	text := extract.Text(title)
	_, after, found := strings.Cut(text, " at ")
	if !found {
		return ""
	}
	datePart, _, _ := strings.Cut(after, " ")
	t, err := time.Parse("01/02/2006", datePart)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// to24h converts "2:00:18 PM" (or an already 24-hour clock) to
// "14:00:18".
func to24h(raw string) (string, bool) {
	for _, layout := range []string{"3:04:05 PM", "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04:05"), true
		}
	}
	return "", false
}

func msnTime(font *html.Node) string {
	nested := extract.FindFirst(font, func(n *html.Node) bool {
		return extract.IsElement(n, "font") && extract.Attr(n, "size") == "2"
	})
	if nested == nil {
		return ""
	}
	return strings.Trim(extract.Text(nested), "()")
}

func msnAuthor(font *html.Node) string {
	bold := extract.FindFirst(font, func(n *html.Node) bool {
		return extract.IsElement(n, "b")
	})
	if bold == nil {
		return ""
	}
	return strings.TrimSuffix(extract.Text(bold), ":")
}

// siblingText returns the first non-blank sibling after the font tag,
// which is where MSN keeps the message body.
func siblingText(font *html.Node) string {
	for sib := font.NextSibling; sib != nil; sib = sib.NextSibling {
		var text string
		if sib.Type == html.TextNode {
			text = strings.TrimSpace(sib.Data)
		} else if sib.Type == html.ElementNode {
			text = extract.Text(sib)
		}
		if text != "" {
			return text
		}
	}
	return ""
}
