package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/hexparrot/dataprepper/internal/model"
	"github.com/hexparrot/dataprepper/internal/timestamp"
)

// Candidate is one raw field map pulled out of a document fragment,
// before normalization and validation.
type Candidate = map[string]string

// Extractor is one format-specific hypothesis for turning a raw
// document into records. Implementations supply only candidate
// extraction; sanitization, normalization and validation are shared.
//
// Extractors are pure functions of (document, context): no side effects
// beyond reading the input, no state carried between invocations.
type Extractor interface {
	// Name identifies the extractor in score maps and reports
	Name() string

	// Kinds lists the document kinds this extractor applies to
	Kinds() []model.Kind

	// Required lists extra required record fields beyond the defaults
	Required() []string

	// ExtractCandidates pulls raw field maps out of the sanitized
	// content. A fragment that does not match the expected shape is
	// skipped, never fatal; zero candidates is a valid empty result.
	ExtractCandidates(ctx context.Context, content []byte, pctx Context) ([]Candidate, error)
}

// Context is the read-only per-document input shared by every extractor
// invocation, plus an explicit reporting sink so extractors never touch
// a shared logger.
type Context struct {
	// Date is the contextual fallback date (YYYY-MM-DD), e.g. derived
	// from the containing filename
	Date string

	// Log receives skip/leniency diagnostics; nil means discard
	Log func(format string, args ...any)
}

// Logf reports a diagnostic through the context's sink, if any.
func (c Context) Logf(format string, args ...any) {
	if c.Log != nil {
		c.Log(format, args...)
	}
}

// Parse runs the full shared pipeline for one extractor over one
// document: sanitize, extract candidates, normalize, validate. Only
// valid records are returned; invalid ones are dropped silently.
func Parse(ctx context.Context, ex Extractor, doc model.Document, pctx Context) []model.Record {
	content := doc.Content
	if doc.Kind != model.KindImage {
		content = Sanitize(content)
	}

	candidates, err := ex.ExtractCandidates(ctx, content, pctx)
	if err != nil {
		pctx.Logf("%s: %v", ex.Name(), err)
		return nil
	}

	records := make([]model.Record, 0, len(candidates))
	for _, candidate := range candidates {
		rec := Normalize(candidate, pctx.Date)
		if rec.Get("detail", "") == "" {
			rec.Set("detail", synthesizeDetail(ex.Name(), rec))
		}
		if rec.Valid(ex.Required()...) {
			records = append(records, rec)
		}
	}
	return records
}

// Normalize turns a raw candidate into a record: every string field is
// trimmed, and the timestamp field (if present) is routed through the
// timestamp normalizer with the contextual date. Normalization is
// idempotent.
func Normalize(candidate Candidate, contextDate string) model.Record {
	rec := model.NewRecord()
	for key, value := range candidate {
		rec.Set(key, strings.TrimSpace(value))
	}
	if ts, ok := rec["timestamp"]; ok {
		rec.Set("timestamp", timestamp.Normalize(ts, contextDate))
	}
	return rec
}

// synthesizeDetail builds the default human-readable description for
// records whose extractor did not set one.
func synthesizeDetail(extractorName string, rec model.Record) string {
	ts := rec.Get("timestamp", "")
	date := ts
	if len(ts) >= 10 {
		date = ts[:10]
	}
	return fmt.Sprintf("Conversation via %s on %s", extractorName, date)
}
