package dialects

import (
	"context"
	"testing"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

const animeListXML = `<?xml version="1.0" encoding="UTF-8"?>
<myanimelist>
  <myinfo>
    <user_name>hexparrot</user_name>
  </myinfo>
  <anime>
    <series_title>Cowboy Bebop</series_title>
    <my_score>9</my_score>
    <my_status>Completed</my_status>
    <my_watched_episodes>26</my_watched_episodes>
    <my_start_date>2012-01-10</my_start_date>
    <my_finish_date>2012-02-20</my_finish_date>
  </anime>
  <anime>
    <series_title>Dropped Show</series_title>
    <my_status>Dropped</my_status>
    <my_start_date>2013-05-01</my_start_date>
    <my_finish_date>0000-00-00</my_finish_date>
  </anime>
  <anime>
    <series_title>Never Started</series_title>
    <my_start_date>0000-00-00</my_start_date>
    <my_finish_date>0000-00-00</my_finish_date>
  </anime>
</myanimelist>`

func TestAnimeList_Extracts(t *testing.T) {
	doc := model.Document{Kind: model.KindXML, Content: []byte(animeListXML)}
	records := extract.Parse(context.Background(), NewAnimeList(), doc, extract.Context{})

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if got := first.Get("author", ""); got != "hexparrot" {
		t.Errorf("author = %q", got)
	}
	if got := first.Get("title", ""); got != "Cowboy Bebop" {
		t.Errorf("title = %q", got)
	}
	if got := first.Get("detail", ""); got != "Updated Cowboy Bebop on MyAnimeList" {
		t.Errorf("detail = %q", got)
	}
	if got := first.Get("score", ""); got != "9" {
		t.Errorf("score = %q", got)
	}
	if got := first.Get("episodes_watched", ""); got != "26" {
		t.Errorf("episodes_watched = %q", got)
	}
}

func TestAnimeList_FinishDateWins(t *testing.T) {
	doc := model.Document{Kind: model.KindXML, Content: []byte(animeListXML)}
	records := extract.Parse(context.Background(), NewAnimeList(), doc, extract.Context{})
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if got := records[0].Get("timestamp", ""); got != "2012-02-20T00:00:00" {
		t.Errorf("finished entry timestamp = %q, want finish date", got)
	}
	// "0000-00-00" counts as absent: the start date steps in.
	if got := records[1].Get("timestamp", ""); got != "2013-05-01T00:00:00" {
		t.Errorf("dropped entry timestamp = %q, want start date", got)
	}
	// No usable date at all falls back to the epoch.
	if got := records[2].Get("timestamp", ""); got != "1970-01-01T00:00:00" {
		t.Errorf("dateless entry timestamp = %q, want epoch", got)
	}
}

func TestAnimeList_DefaultsForMissingFields(t *testing.T) {
	doc := model.Document{Kind: model.KindXML, Content: []byte(animeListXML)}
	records := extract.Parse(context.Background(), NewAnimeList(), doc, extract.Context{})
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if got := records[2].Get("score", ""); got != "0" {
		t.Errorf("defaulted score = %q, want 0", got)
	}
	if got := records[2].Get("status", ""); got != "unknown" {
		t.Errorf("defaulted status = %q, want unknown", got)
	}
}

func TestAnimeList_NotXML(t *testing.T) {
	doc := model.Document{Kind: model.KindXML, Content: []byte("author,message\nalice,hi\n")}
	records := extract.Parse(context.Background(), NewAnimeList(), doc, extract.Context{})
	if len(records) != 0 {
		t.Errorf("expected 0 records for non-XML content, got %d", len(records))
	}
}
