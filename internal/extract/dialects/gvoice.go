package dialects

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// GVoice extracts Google Voice "hChatLog" HTML: each div.message holds
// an <abbr class="dt" title="..."> ISO timestamp, a cite.sender with an
// a.tel phone-number link, and a <q> quoted body. The author is the
// bare phone number.
type GVoice struct{}

func NewGVoice() *GVoice { return &GVoice{} }

func (e *GVoice) Name() string        { return "gvoice" }
func (e *GVoice) Kinds() []model.Kind { return []model.Kind{model.KindHTML} }
func (e *GVoice) Required() []string  { return []string{"message"} }

func (e *GVoice) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	doc, err := extract.ParseHTML(content)
	if err != nil {
		return nil, err
	}

	divs := extract.FindAll(doc, func(n *html.Node) bool {
		return extract.IsElement(n, "div") && extract.HasClass(n, "message")
	})

	var candidates []extract.Candidate
	for _, div := range divs {
		if ctx.Err() != nil {
			break
		}

		abbr := extract.FindFirst(div, func(n *html.Node) bool {
			return extract.IsElement(n, "abbr") && extract.HasClass(n, "dt")
		})
		if abbr == nil || extract.Attr(abbr, "title") == "" {
			pctx.Logf("gvoice: skipping message with missing timestamp")
			continue
		}

		sender := extract.FindFirst(div, func(n *html.Node) bool {
			return extract.IsElement(n, "cite") && extract.HasClass(n, "sender")
		})
		if sender == nil {
			continue
		}

		author := "Unknown"
		if tel := extract.FindFirst(sender, func(n *html.Node) bool {
			return extract.IsElement(n, "a") && extract.HasClass(n, "tel")
		}); tel != nil {
			if href := extract.Attr(tel, "href"); href != "" {
				author = strings.TrimPrefix(href, "tel:+")
			}
		}

		quote := extract.FindFirst(div, func(n *html.Node) bool {
			return extract.IsElement(n, "q")
		})
		if quote == nil {
			continue
		}
		message := extract.Text(quote)
		if message == "" {
			continue
		}

		candidates = append(candidates, extract.Candidate{
			"author":    author,
			"message":   message,
			"timestamp": extract.Attr(abbr, "title"),
		})
	}
	return candidates, nil
}
