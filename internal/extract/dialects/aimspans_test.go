package dialects

import (
	"context"
	"testing"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

const aimSpansLog = `<html><body>
<span>buddy1 (12:01:33 AM): you there</span><br>
<span>buddy2 (12:02:05 AM): yep</span><br>
<span>Session concluded</span>
</body></html>`

func TestAimSpans_FlatLines(t *testing.T) {
	doc := model.Document{Kind: model.KindHTML, Content: []byte(aimSpansLog)}
	records := extract.Parse(context.Background(), NewAimSpans(), doc, extract.Context{Date: "2006-07-04"})

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].Get("author", ""); got != "buddy1" {
		t.Errorf("author = %q, want buddy1", got)
	}
	if got := records[0].Get("timestamp", ""); got != "2006-07-04T00:01:33" {
		t.Errorf("timestamp = %q, want 2006-07-04T00:01:33", got)
	}
	if got := records[1].Get("message", ""); got != "yep" {
		t.Errorf("message = %q, want yep", got)
	}
}

func TestAimSpans_EmptyMessageSkipped(t *testing.T) {
	src := `<html><body><span>buddy1 (12:01:33 AM): </span></body></html>`
	doc := model.Document{Kind: model.KindHTML, Content: []byte(src)}
	records := extract.Parse(context.Background(), NewAimSpans(), doc, extract.Context{Date: "2006-07-04"})
	if len(records) != 0 {
		t.Errorf("expected 0 records for blank body, got %d", len(records))
	}
}

func TestAimSpans_RequiresClockShape(t *testing.T) {
	src := `<html><body><span>buddy1 (yesterday): hi</span></body></html>`
	doc := model.Document{Kind: model.KindHTML, Content: []byte(src)}
	records := extract.Parse(context.Background(), NewAimSpans(), doc, extract.Context{Date: "2006-07-04"})
	if len(records) != 0 {
		t.Errorf("expected 0 records without a clock time, got %d", len(records))
	}
}
