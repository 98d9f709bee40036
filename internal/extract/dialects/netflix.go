package dialects

import (
	"context"
	"fmt"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
	"github.com/hexparrot/dataprepper/internal/tabular"
)

// Netflix extracts viewing-history CSV exports. The profile that
// watched becomes the author, the start time becomes the timestamp, and
// a human-readable detail is synthesized from the title. Rows missing a
// title or start time are skipped.
type Netflix struct{}

func NewNetflix() *Netflix { return &Netflix{} }

func (e *Netflix) Name() string        { return "netflix" }
func (e *Netflix) Kinds() []model.Kind { return []model.Kind{model.KindCSV} }
func (e *Netflix) Required() []string  { return []string{"title"} }

func (e *Netflix) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	rows, err := tabular.Parse(string(content))
	if err != nil {
		return nil, err
	}

	var candidates []extract.Candidate
	for _, row := range rows {
		if ctx.Err() != nil {
			break
		}

		title := row["Title"]
		startTime := row["Start Time"]
		if title == "" || startTime == "" {
			pctx.Logf("netflix: skipping entry due to missing data")
			continue
		}

		candidates = append(candidates, extract.Candidate{
			"author":    row["Profile Name"],
			"profile":   row["Profile Name"],
			"title":     title,
			"timestamp": startTime,
			"duration":  row["Duration"],
			"device":    row["Device Type"],
			"country":   row["Country"],
			"message":   fmt.Sprintf("Watched %s on Netflix", title),
			"detail":    fmt.Sprintf("Watched %s on Netflix", title),
			"product":   "Netflix",
		})
	}
	return candidates, nil
}
