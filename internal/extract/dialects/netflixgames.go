package dialects

import (
	"context"
	"fmt"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
	"github.com/hexparrot/dataprepper/internal/tabular"
)

// NetflixGames extracts game-session CSV exports, the sibling of the
// viewing-history table: a Game Title column instead of Title, plus
// platform and device telemetry. Rows without a game title are skipped;
// a missing start time keeps the epoch fallback instead of borrowing
// the contextual date.
type NetflixGames struct{}

func NewNetflixGames() *NetflixGames { return &NetflixGames{} }

func (e *NetflixGames) Name() string        { return "netflixgames" }
func (e *NetflixGames) Kinds() []model.Kind { return []model.Kind{model.KindCSV} }
func (e *NetflixGames) Required() []string  { return []string{"game_title"} }

func (e *NetflixGames) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	rows, err := tabular.Parse(string(content))
	if err != nil {
		return nil, err
	}

	var candidates []extract.Candidate
	for _, row := range rows {
		if ctx.Err() != nil {
			break
		}

		title := row["Game Title"]
		if title == "" {
			pctx.Logf("netflixgames: skipping row without a game title")
			continue
		}

		start := row["Start Time"]
		if start == "" {
			start = "1970-01-01T00:00:00"
		}

		profile := orDefault(row["Profile Name"], "Unknown Profile")
		platform := orDefault(row["Platform"], "Unknown Platform")

		candidates = append(candidates, extract.Candidate{
			"author":       profile,
			"profile":      profile,
			"game_title":   title,
			"game_version": orDefault(row["Game Version"], "Unknown Version"),
			"timestamp":    start,
			"duration":     row["Duration"],
			"platform":     platform,
			"device_type":  row["Device Type"],
			"country":      row["Country"],
			"esn":          row["Esn"],
			"ip":           row["Ip"],
			"message":      fmt.Sprintf("Playing %s on %s", title, platform),
			"detail":       fmt.Sprintf("Playing %s on %s", title, platform),
			"product":      "Netflix Games",
		})
	}
	return candidates, nil
}
