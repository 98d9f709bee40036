package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hexparrot/dataprepper/internal/arbiter"
	"github.com/hexparrot/dataprepper/internal/cache"
	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/extract/dialects"
	"github.com/hexparrot/dataprepper/internal/model"
)

// Pipeline orchestrates per-document processing: read, arbitrate, emit.
type Pipeline struct {
	arbiter *arbiter.Arbiter
	cache   cache.Cache
	config  *model.Config
}

// New creates a pipeline with the given configuration and the built-in
// extractor registry.
func New(cfg *model.Config) *Pipeline {
	return NewWithRegistry(cfg, dialects.Default())
}

// NewWithRegistry creates a pipeline over a caller-supplied registry.
func NewWithRegistry(cfg *model.Config, registry *extract.Registry) *Pipeline {
	p := &Pipeline{
		arbiter: arbiter.New(registry, cfg.Parse.ExtractorTimeout),
		config:  cfg,
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.Disk && cfg.Cache.Dir != "" {
			p.cache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			p.cache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
		}
	}

	return p
}

// DocumentResult is the complete output for one document: the winning
// record set plus the diagnostics that are always reported.
type DocumentResult struct {
	Path    string         `json:"path"`
	Kind    model.Kind     `json:"kind"`
	Winner  string         `json:"winner"`
	Scores  map[string]int `json:"scores"`
	Records []model.Record `json:"records"`
}

// ProcessFile reads one document and arbitrates it. Identical document
// bytes seen earlier in the run reuse the cached outcome: personal-data
// exports routinely contain the same file several times over.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*DocumentResult, error) {
	doc, err := ReadDocument(path, p.config.Parse.DefaultDate)
	if err != nil {
		return nil, err
	}
	return p.Process(ctx, doc)
}

// Process arbitrates an already-loaded document.
func (p *Pipeline) Process(ctx context.Context, doc model.Document) (*DocumentResult, error) {
	key := cache.Key(doc.Content)

	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var cached DocumentResult
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.Path = doc.Path
				return &cached, nil
			}
		}
	}

	pctx := extract.Context{Date: doc.ContextDate}
	if p.config.Output.Verbose {
		pctx.Log = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	outcome := p.arbiter.Arbitrate(ctx, doc, pctx)
	result := &DocumentResult{
		Path:    doc.Path,
		Kind:    doc.Kind,
		Winner:  outcome.Winner,
		Scores:  outcome.Scores,
		Records: outcome.Records,
	}

	if p.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = p.cache.Set(key, data, 0)
		}
	}

	return result, nil
}
