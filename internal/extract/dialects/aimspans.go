package dialects

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// spanLineRe matches the flat "AUTHOR (H:MM:SS AM): MESSAGE" line shape.
var spanLineRe = regexp.MustCompile(`^(.*)\((\d{1,2}:\d{2}:\d{2} (?:AM|PM))\):\s?(.*)$`)

// AimSpans extracts the flat AIM variant where each message is a single
// <span> whose text carries author, time and body in one line.
type AimSpans struct{}

func NewAimSpans() *AimSpans { return &AimSpans{} }

func (e *AimSpans) Name() string        { return "aimspans" }
func (e *AimSpans) Kinds() []model.Kind { return []model.Kind{model.KindHTML} }
func (e *AimSpans) Required() []string  { return []string{"message"} }

func (e *AimSpans) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	doc, err := extract.ParseHTML(content)
	if err != nil {
		return nil, err
	}

	spans := extract.FindAll(doc, func(n *html.Node) bool {
		return extract.IsElement(n, "span")
	})

	var candidates []extract.Candidate
	for _, span := range spans {
		if ctx.Err() != nil {
			break
		}

		m := spanLineRe.FindStringSubmatch(extract.Text(span))
		if m == nil {
			continue
		}

		author := strings.TrimSpace(m[1])
		message := strings.TrimSpace(m[3])
		if author == "" || message == "" {
			continue
		}

		candidates = append(candidates, extract.Candidate{
			"author":    author,
			"message":   message,
			"timestamp": m[2],
		})
	}
	return candidates, nil
}
