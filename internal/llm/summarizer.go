package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/hexparrot/dataprepper/internal/evaluate"
)

// Summarizer wraps a provider with the evaluation-report defaults.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer; returns nil when no provider is
// configured.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// GenerateSummary produces a Markdown summary of the evaluation table.
func (s *Summarizer) GenerateSummary(ctx context.Context, table *evaluate.Table) (string, error) {
	timeout := time.Duration(s.config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Table:     table,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s summarize: %w", s.provider.Name(), err)
	}
	return resp.Summary, nil
}
