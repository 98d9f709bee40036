package dialects

import (
	"context"
	"testing"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

func TestTabular_CSVPassthrough(t *testing.T) {
	src := "author,message,timestamp,channel\nalice,hello,2014-02-25 14:30:00,general\nbob,,2014-02-25 14:31:00,general\n"
	doc := model.Document{Kind: model.KindCSV, Content: []byte(src)}
	records := extract.Parse(context.Background(), NewTabular(), doc, extract.Context{})

	if len(records) != 1 {
		t.Fatalf("expected 1 record (blank message filtered), got %d", len(records))
	}
	if got := records[0].Get("channel", ""); got != "general" {
		t.Errorf("extra column must pass through, got %q", got)
	}
	if got := records[0].Get("timestamp", ""); got != "2014-02-25T14:30:00" {
		t.Errorf("timestamp = %q", got)
	}
}

func TestTabular_TSV(t *testing.T) {
	src := "author\tmessage\ttimestamp\nalice\thi, there\t2014-02-25 14:30:00\n"
	doc := model.Document{Kind: model.KindCSV, Content: []byte(src)}
	records := extract.Parse(context.Background(), NewTabular(), doc, extract.Context{})

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].Get("message", ""); got != "hi, there" {
		t.Errorf("message = %q", got)
	}
}

func TestTabular_HeaderOnly(t *testing.T) {
	doc := model.Document{Kind: model.KindCSV, Content: []byte("author,message,timestamp\n")}
	records := extract.Parse(context.Background(), NewTabular(), doc, extract.Context{})
	if len(records) != 0 {
		t.Errorf("expected 0 records, got %d", len(records))
	}
}

func TestTabular_LosesToNetflixOnViewingHistory(t *testing.T) {
	// The generic table has no message column for Netflix exports, so
	// every candidate fails validation and the specialized extractor
	// keeps the win.
	doc := model.Document{Kind: model.KindCSV, Content: []byte(netflixCSV)}
	generic := extract.Parse(context.Background(), NewTabular(), doc, extract.Context{})
	specific := extract.Parse(context.Background(), NewNetflix(), doc, extract.Context{})

	if len(generic) != 0 {
		t.Errorf("generic extractor produced %d records from a Netflix export", len(generic))
	}
	if len(specific) == 0 {
		t.Error("specialized extractor produced nothing from a Netflix export")
	}
}
