package dialects

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// watchTimeRe matches the Takeout activity timestamp, e.g.
// "Dec 19, 2014, 2:44:21 PM" (the space before AM/PM is sometimes
// missing, and a trailing zone abbreviation may follow).
var watchTimeRe = regexp.MustCompile(`([A-Za-z]{3} \d{1,2}, \d{4}, \d{1,2}:\d{2}:\d{2})\s?(AM|PM)?`)

// YouTube extracts Google Takeout watch-history HTML. Each activity is
// a content-cell <div>; the first watch link carries the video URL and
// title, the second link the channel, and the timestamp sits in the
// cell's trailing text. Entries whose timestamp cannot be parsed keep
// the epoch fallback rather than borrowing the contextual date: the
// export is not date-named, so completion would fabricate a watch time.
type YouTube struct{}

func NewYouTube() *YouTube { return &YouTube{} }

func (e *YouTube) Name() string        { return "youtube" }
func (e *YouTube) Kinds() []model.Kind { return []model.Kind{model.KindHTML} }
func (e *YouTube) Required() []string  { return []string{"url"} }

func (e *YouTube) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	doc, err := extract.ParseHTML(content)
	if err != nil {
		return nil, err
	}

	cells := extract.FindAll(doc, func(n *html.Node) bool {
		return extract.IsElement(n, "div") &&
			extract.HasClass(n, "content-cell") &&
			extract.HasClass(n, "mdl-typography--body-1")
	})

	var candidates []extract.Candidate
	for _, cell := range cells {
		if ctx.Err() != nil {
			break
		}

		links := extract.FindAll(cell, func(n *html.Node) bool {
			return extract.IsElement(n, "a")
		})

		var video *html.Node
		for _, link := range links {
			if strings.HasPrefix(extract.Attr(link, "href"), "https://www.youtube.com/watch") {
				video = link
				break
			}
		}
		if video == nil {
			continue
		}

		url := extract.Attr(video, "href")
		title := extract.Text(video)
		if title == "" || title == url {
			title = "Unknown Title"
		}

		channel := "Unknown Channel"
		if len(links) > 1 {
			if text := extract.Text(links[1]); text != "" {
				channel = text
			}
		}

		ts := watchTimestamp(extract.Text(cell))
		if ts == "" {
			pctx.Logf("youtube: no parsable timestamp, keeping epoch fallback")
			ts = "1970-01-01T00:00:00"
		}

		candidates = append(candidates, extract.Candidate{
			"author":    "unspecified",
			"title":     title,
			"url":       url,
			"channel":   channel,
			"timestamp": ts,
			"product":   "YouTube",
			"message":   fmt.Sprintf("Playing %s on YouTube", title),
			"detail":    fmt.Sprintf("Playing %s on YouTube", title),
		})
	}
	return candidates, nil
}

// watchTimestamp pulls the activity time out of the cell text and
// converts it to ISO form. Returns "" when no timestamp is found.
func watchTimestamp(text string) string {
	m := watchTimeRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	raw := m[1]
	layout := "Jan 2, 2006, 15:04:05"
	if m[2] != "" {
		raw += " " + m[2]
		layout = "Jan 2, 2006, 3:04:05 PM"
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02T15:04:05")
}
