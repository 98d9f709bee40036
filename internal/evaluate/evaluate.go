// Package evaluate is the offline corpus harness: it runs every
// registered extractor over every document in a directory and tabulates
// the results for manual comparative tuning. Nothing here feeds back
// into arbitration.
package evaluate

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/hexparrot/dataprepper/internal/arbiter"
	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
	"github.com/hexparrot/dataprepper/internal/pipeline"
	"github.com/hexparrot/dataprepper/internal/timestamp"
)

// Cell is one (document, extractor) measurement.
type Cell struct {
	// Valid is the count of valid records produced; the arbiter's
	// scoring axis
	Valid int

	// CompleteTimestamps counts records whose timestamp fully parsed
	// rather than passing through raw. Informational only: it never
	// influences the winner.
	CompleteTimestamps int
}

// Row holds every extractor's measurements for one document.
type Row struct {
	Document string
	Winner   string
	Cells    map[string]Cell
}

// Table is the corpus-wide (document x extractor) result grid.
type Table struct {
	Extractors []string
	Rows       []Row
}

// Harness runs the evaluation.
type Harness struct {
	registry *extract.Registry
	timeout  time.Duration
	verbose  bool
}

// New creates a harness over a registry. timeout bounds each extractor
// invocation, as in arbitration.
func New(registry *extract.Registry, timeout time.Duration, verbose bool) *Harness {
	return &Harness{registry: registry, timeout: timeout, verbose: verbose}
}

// Run walks a corpus directory and measures every applicable extractor
// against every supported document. Unreadable documents are skipped
// with a diagnostic; they do not abort the run.
func (h *Harness) Run(ctx context.Context, dir string, logf func(string, ...any)) (*Table, error) {
	table := &Table{}
	for _, ex := range h.registry.All() {
		table.Extractors = append(table.Extractors, ex.Name())
	}

	arb := arbiter.New(h.registry, h.timeout)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		doc, err := pipeline.ReadDocument(path, timestamp.DefaultContextDate)
		if err != nil {
			if logf != nil {
				logf("skipping %s: %v", path, err)
			}
			return nil
		}
		if doc.Kind == model.KindUnknown {
			return nil
		}

		table.Rows = append(table.Rows, h.measure(ctx, arb, doc, logf))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus: %w", err)
	}

	sort.Slice(table.Rows, func(i, j int) bool {
		return table.Rows[i].Document < table.Rows[j].Document
	})
	return table, nil
}

// measure runs every extractor for the document's kind individually,
// then records which one arbitration would pick.
func (h *Harness) measure(ctx context.Context, arb *arbiter.Arbiter, doc model.Document, logf func(string, ...any)) Row {
	row := Row{
		Document: filepath.Base(doc.Path),
		Cells:    make(map[string]Cell),
	}

	pctx := extract.Context{Date: doc.ContextDate}
	if h.verbose {
		pctx.Log = logf
	}

	for _, ex := range h.registry.ForKind(doc.Kind) {
		records := extract.Parse(ctx, ex, doc, pctx)

		cell := Cell{Valid: len(records)}
		for _, rec := range records {
			if timestamp.Canonical(rec.Get("timestamp", "")) {
				cell.CompleteTimestamps++
			}
		}
		row.Cells[ex.Name()] = cell
	}

	row.Winner = arb.Arbitrate(ctx, doc, pctx).Winner
	return row
}
