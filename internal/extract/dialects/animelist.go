package dialects

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// AnimeList extracts MyAnimeList XML exports: the list owner from
// myinfo/user_name, one candidate per <anime> entry. The finish date
// wins over the start date as the timestamp; "0000-00-00" counts as
// absent, and a fully dateless entry falls back to the epoch.
type AnimeList struct{}

func NewAnimeList() *AnimeList { return &AnimeList{} }

func (e *AnimeList) Name() string        { return "animelist" }
func (e *AnimeList) Kinds() []model.Kind { return []model.Kind{model.KindXML} }
func (e *AnimeList) Required() []string  { return []string{"title"} }

type animeListExport struct {
	MyInfo struct {
		UserName string `xml:"user_name"`
	} `xml:"myinfo"`
	Anime []animeEntry `xml:"anime"`
}

type animeEntry struct {
	SeriesTitle     string `xml:"series_title"`
	MyScore         string `xml:"my_score"`
	MyStatus        string `xml:"my_status"`
	WatchedEpisodes string `xml:"my_watched_episodes"`
	MyStartDate     string `xml:"my_start_date"`
	MyFinishDate    string `xml:"my_finish_date"`
}

func (e *AnimeList) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	var export animeListExport
	if err := xml.Unmarshal(content, &export); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}

	author := strings.TrimSpace(export.MyInfo.UserName)
	if author == "" {
		author = "Unknown"
	}

	if len(export.Anime) == 0 {
		pctx.Logf("animelist: no anime entries found")
	}

	var candidates []extract.Candidate
	for _, anime := range export.Anime {
		if ctx.Err() != nil {
			break
		}

		title := strings.TrimSpace(anime.SeriesTitle)
		if title == "" {
			title = "Unknown Title"
		}

		candidates = append(candidates, extract.Candidate{
			"author":           author,
			"title":            title,
			"score":            orDefault(anime.MyScore, "0"),
			"status":           orDefault(anime.MyStatus, "unknown"),
			"episodes_watched": orDefault(anime.WatchedEpisodes, "0"),
			"timestamp":        entryTimestamp(anime),
			"detail":           fmt.Sprintf("Updated %s on MyAnimeList", title),
		})
	}
	return candidates, nil
}

func entryTimestamp(anime animeEntry) string {
	finish := strings.TrimSpace(anime.MyFinishDate)
	start := strings.TrimSpace(anime.MyStartDate)
	switch {
	case finish != "" && finish != "0000-00-00":
		return finish + "T00:00:00"
	case start != "" && start != "0000-00-00":
		return start + "T00:00:00"
	default:
		return "1970-01-01T00:00:00"
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
