package dialects

import (
	"context"
	"testing"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

const netflixCSV = `Profile Name,Start Time,Duration,Title,Device Type,Country
Alice,2020-01-01 20:00:00,00:45:12,"Show: Season 1: Episode 1",Smart TV,US (United States)
Alice,,00:10:00,Trailer Without Start,Smart TV,US (United States)
Bob,2020-01-02 21:15:00,01:30:00,Some Movie,Phone,US (United States)
`

func TestNetflix_ViewingHistory(t *testing.T) {
	doc := model.Document{Kind: model.KindCSV, Content: []byte(netflixCSV)}
	records := extract.Parse(context.Background(), NewNetflix(), doc, extract.Context{})

	if len(records) != 2 {
		t.Fatalf("expected 2 records (row without start time skipped), got %d", len(records))
	}

	first := records[0]
	if got := first.Get("author", ""); got != "Alice" {
		t.Errorf("author = %q, want Alice", got)
	}
	if got := first.Get("timestamp", ""); got != "2020-01-01T20:00:00" {
		t.Errorf("timestamp = %q", got)
	}
	if got := first.Get("detail", ""); got != "Watched Show: Season 1: Episode 1 on Netflix" {
		t.Errorf("detail = %q", got)
	}
	if got := first.Get("device", ""); got != "Smart TV" {
		t.Errorf("device = %q", got)
	}
	if got := first.Get("product", ""); got != "Netflix" {
		t.Errorf("product = %q", got)
	}
}

func TestNetflix_WrongHeadersYieldNothing(t *testing.T) {
	doc := model.Document{Kind: model.KindCSV, Content: []byte("author,message\nalice,hi\n")}
	records := extract.Parse(context.Background(), NewNetflix(), doc, extract.Context{})
	if len(records) != 0 {
		t.Errorf("expected 0 records for a non-Netflix table, got %d", len(records))
	}
}
