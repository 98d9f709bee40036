// Package arbiter races every applicable extractor over one document
// and selects a winner by valid-record count.
package arbiter

import (
	"context"
	"time"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// NoWinner is the sentinel winner name reported when every extractor
// produced zero valid records.
const NoWinner = "none"

// Outcome is the result of one arbitration: the winning extractor's
// records plus the full per-extractor score map. The score map is
// always populated so a better quality metric can later replace the
// selection rule without changing this interface.
type Outcome struct {
	Winner  string         `json:"winner"`
	Records []model.Record `json:"records"`
	Scores  map[string]int `json:"scores"`
}

// NoRecords reports whether arbitration found nothing usable.
func (o Outcome) NoRecords() bool {
	return o.Winner == NoWinner
}

// Arbiter runs the parser race. It is stateless: no memory of which
// extractor "usually wins" is kept between documents, so identical
// input always yields an identical outcome.
type Arbiter struct {
	registry *extract.Registry
	timeout  time.Duration
}

// New creates an arbiter over a registry. timeout bounds each extractor
// invocation; zero means no bound.
func New(registry *extract.Registry, timeout time.Duration) *Arbiter {
	return &Arbiter{registry: registry, timeout: timeout}
}

type raceResult struct {
	index   int
	records []model.Record
}

// Arbitrate invokes every extractor registered for the document's kind
// and picks the one producing the most valid records. Ties break by
// registration order. The rule is deliberately crude: more records is
// not a claim of semantic correctness, only the best proxy available
// without an oracle.
//
// A panicking, failing or timed-out extractor scores zero; nothing an
// individual extractor does can abort the rest of the race, and
// Arbitrate itself never returns an error.
func (a *Arbiter) Arbitrate(ctx context.Context, doc model.Document, pctx extract.Context) Outcome {
	if pctx.Date == "" {
		pctx.Date = doc.ContextDate
	}

	extractors := a.registry.ForKind(doc.Kind)
	results := make(chan raceResult, len(extractors))

	// The invocations are independent and embarrassingly parallel;
	// scoring is a pure function of each extractor's final output, so
	// completion order does not matter.
	for i, ex := range extractors {
		go func(index int, ex extract.Extractor) {
			defer func() {
				if r := recover(); r != nil {
					pctx.Logf("%s: panic recovered: %v", ex.Name(), r)
					results <- raceResult{index: index}
				}
			}()

			runCtx := ctx
			var cancel context.CancelFunc
			if a.timeout > 0 {
				runCtx, cancel = context.WithTimeout(ctx, a.timeout)
				defer cancel()
			}

			records := extract.Parse(runCtx, ex, doc, pctx)
			if runCtx.Err() != nil {
				// Timeout counts the same as an empty parse.
				pctx.Logf("%s: %v", ex.Name(), runCtx.Err())
				records = nil
			}
			results <- raceResult{index: index, records: records}
		}(i, ex)
	}

	// Collect until every extractor reported or the overall deadline
	// passed. An extractor stuck inside a call that never polls the
	// context cannot be interrupted, so past the deadline it is
	// abandoned with score zero rather than allowed to stall the whole
	// arbitration; the buffered channel absorbs its eventual send.
	var deadline <-chan time.Time
	if a.timeout > 0 {
		timer := time.NewTimer(a.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	byIndex := make([][]model.Record, len(extractors))
collect:
	for range extractors {
		select {
		case res := <-results:
			byIndex[res.index] = res.records
		case <-deadline:
			pctx.Logf("arbitration deadline reached; unfinished extractors score zero")
			break collect
		}
	}

	scores := make(map[string]int, len(extractors))
	winner := NoWinner
	winning := []model.Record{}
	best := 0
	for i, ex := range extractors {
		score := len(byIndex[i])
		scores[ex.Name()] = score
		// Strict > keeps the first-registered extractor on ties.
		if score > best {
			best = score
			winner = ex.Name()
			winning = byIndex[i]
		}
	}

	return Outcome{
		Winner:  winner,
		Records: winning,
		Scores:  scores,
	}
}
