package dialects

import (
	"context"

	"golang.org/x/net/html"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// FbChat extracts Messenger-style HTML archives: one
// <div class="message" timestamp="YYYY-MM-DD HH:MM:SS"> per message,
// with a span.buddy author and a span.msgcontent body. A <pre> inside
// msgcontent wins over the span text when present.
type FbChat struct{}

func NewFbChat() *FbChat { return &FbChat{} }

func (e *FbChat) Name() string        { return "fbchat" }
func (e *FbChat) Kinds() []model.Kind { return []model.Kind{model.KindHTML} }
func (e *FbChat) Required() []string  { return []string{"message"} }

func (e *FbChat) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
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

		ts := extract.Attr(div, "timestamp")
		if ts == "" {
			pctx.Logf("fbchat: skipping message without timestamp")
			continue
		}

		buddy := extract.FindFirst(div, func(n *html.Node) bool {
			return extract.IsElement(n, "span") && extract.HasClass(n, "buddy")
		})
		if buddy == nil {
			continue
		}

		msgContent := extract.FindFirst(div, func(n *html.Node) bool {
			return extract.IsElement(n, "span") && extract.HasClass(n, "msgcontent")
		})
		if msgContent == nil {
			continue
		}

		message := messageBody(msgContent)
		if message == "" {
			continue
		}

		candidates = append(candidates, extract.Candidate{
			"author":    extract.Text(buddy),
			"message":   message,
			"timestamp": ts,
		})
	}
	return candidates, nil
}

func messageBody(msgContent *html.Node) string {
	pre := extract.FindFirst(msgContent, func(n *html.Node) bool {
		return extract.IsElement(n, "pre")
	})
	if pre != nil {
		return extract.Text(pre)
	}
	return extract.Text(msgContent)
}
