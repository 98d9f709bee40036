// Package llm generates optional natural-language summaries of
// evaluation reports. The summary is presentation only: it never feeds
// back into arbitration, validation or scoring.
package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hexparrot/dataprepper/internal/evaluate"
	"github.com/hexparrot/dataprepper/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a summary for the request
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for summarization
type SummarizeRequest struct {
	// Table is the corpus evaluation to describe
	Table *evaluate.Table

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model is the provider-specific model name
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the generated summary
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// BuildPrompt renders the default prompt. The model is only ever asked
// to describe the counts it is given, never to judge which parse is
// semantically correct: record counts are a crude proxy and the prompt
// says so.
func BuildPrompt(table *evaluate.Table) string {
	var b strings.Builder

	b.WriteString(`You are summarizing a parser evaluation for a personal-data ingestion tool.
The table counts valid records each format extractor produced per document; the
winner column is chosen purely by highest count. Describe the counts as given.
Do not claim any extractor is "correct" - higher count is a heuristic, not a
verdict. Keep it under 200 words of Markdown.

Totals per extractor (valid records across the corpus):
`)

	totals := table.TotalValid()
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %d\n", name, totals[name])
	}

	fmt.Fprintf(&b, "\nDocuments evaluated: %d\n", len(table.Rows))
	return b.String()
}
