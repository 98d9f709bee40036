package dialects

import (
	"context"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
	"github.com/hexparrot/dataprepper/internal/tabular"
)

// Tabular is the generic CSV/TSV hypothesis: delimiter is sniffed, the
// header row names the fields, and every value passes through verbatim.
// It additionally requires a non-blank message column, which keeps it
// from "winning" service-specific tables that a dedicated extractor
// understands better.
type Tabular struct{}

func NewTabular() *Tabular { return &Tabular{} }

func (e *Tabular) Name() string        { return "tabular" }
func (e *Tabular) Kinds() []model.Kind { return []model.Kind{model.KindCSV} }
func (e *Tabular) Required() []string  { return []string{"message"} }

func (e *Tabular) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	rows, err := tabular.Parse(string(content))
	if err != nil {
		return nil, err
	}

	candidates := make([]extract.Candidate, 0, len(rows))
	for _, row := range rows {
		if ctx.Err() != nil {
			break
		}
		candidates = append(candidates, extract.Candidate(row))
	}
	return candidates, nil
}
