package dialects

import (
	"context"
	"testing"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

const fbChatLog = `<html><body>
<div class="message" timestamp="2010-05-01 12:00:00"><span class="buddy">Carol</span><span class="msgcontent">lunch?</span></div>
<div class="message" timestamp="2010-05-01 12:00:41"><span class="buddy">Dan</span><span class="msgcontent"><pre>sure,
give me 10</pre></span></div>
<div class="message"><span class="buddy">Carol</span><span class="msgcontent">no timestamp attr</span></div>
</body></html>`

func TestFbChat_Extracts(t *testing.T) {
	doc := model.Document{Kind: model.KindHTML, Content: []byte(fbChatLog)}
	records := extract.Parse(context.Background(), NewFbChat(), doc, extract.Context{})

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].Get("author", ""); got != "Carol" {
		t.Errorf("author = %q, want Carol", got)
	}
	if got := records[0].Get("timestamp", ""); got != "2010-05-01T12:00:00" {
		t.Errorf("timestamp = %q, want 2010-05-01T12:00:00", got)
	}
}

func TestFbChat_PrefersPreBody(t *testing.T) {
	doc := model.Document{Kind: model.KindHTML, Content: []byte(fbChatLog)}
	records := extract.Parse(context.Background(), NewFbChat(), doc, extract.Context{})
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[1].Get("message", ""); got != "sure,\ngive me 10" {
		t.Errorf("pre body = %q", got)
	}
}

func TestFbChat_TimestamplessMessageLogged(t *testing.T) {
	var logged []string
	pctx := extract.Context{Log: func(format string, args ...any) {
		logged = append(logged, format)
	}}

	doc := model.Document{Kind: model.KindHTML, Content: []byte(fbChatLog)}
	extract.Parse(context.Background(), NewFbChat(), doc, pctx)
	if len(logged) == 0 {
		t.Error("expected a diagnostic for the timestampless message")
	}
}
