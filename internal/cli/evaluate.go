package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hexparrot/dataprepper/internal/evaluate"
	"github.com/hexparrot/dataprepper/internal/extract/dialects"
	"github.com/hexparrot/dataprepper/internal/llm"
	"github.com/hexparrot/dataprepper/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	evalOut     string
	evalTimeout time.Duration
	evalLLM     bool
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <dir>",
	Short: "Run every extractor over a corpus and tabulate the results",
	Long: `Evaluate runs every registered extractor over every supported document
under a directory and writes a CSV grid: one row per document, one
column per extractor, each cell "valid/complete" (valid record count,
and how many of those carry a fully parsed timestamp). The trailing
column names the extractor arbitration would pick.

The grid exists for manual comparative tuning of the extractors; it
never feeds back into arbitration.

With --llm, a natural-language summary of the grid is appended, using
the provider configured under llm (API key from DATAPREPPER_LLM_APIKEY
or OPENAI_API_KEY).`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&evalOut, "out", "-", "output path for the CSV grid (- for stdout)")
	evaluateCmd.Flags().DurationVar(&evalTimeout, "timeout", 30*time.Second, "per-extractor timeout")
	evaluateCmd.Flags().BoolVar(&evalLLM, "llm", false, "append an LLM-generated summary of the grid")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	dir := args[0]

	logf := func(format string, a ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", a...)
	}

	harness := evaluate.New(dialects.Default(), evalTimeout, verbose)
	table, err := harness.Run(context.Background(), dir, logf)
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		fmt.Fprintf(os.Stderr, "No supported documents under %s\n", dir)
		return nil
	}

	if evalOut == "" || evalOut == "-" {
		if err := table.WriteCSV(os.Stdout); err != nil {
			return err
		}
	} else {
		f, err := os.Create(evalOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := table.WriteCSV(f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(table.Rows), evalOut)
	}

	if evalLLM {
		return summarizeTable(table)
	}
	return nil
}

// summarizeTable appends an LLM summary of the evaluation grid to
// stderr. Missing configuration is an error only when the summary was
// explicitly requested, which it was.
func summarizeTable(table *evaluate.Table) error {
	cfg := evalLLMConfig()
	summarizer, err := llm.NewSummarizer(llm.ConfigFromModel(cfg))
	if err != nil {
		return err
	}
	if summarizer == nil {
		return fmt.Errorf("no LLM provider configured (set llm.provider or DATAPREPPER_LLM_PROVIDER)")
	}

	summary, err := summarizer.GenerateSummary(context.Background(), table)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n--- Summary ---\n%s\n", summary)
	return nil
}

// evalLLMConfig assembles LLM settings from viper plus the API-key
// environment variables. The key never passes through config files.
func evalLLMConfig() model.LLMConfig {
	cfg := model.DefaultConfig().LLM
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.BaseURL = v
	}
	if v := viper.GetInt("llm.timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetInt("llm.max_tokens"); v > 0 {
		cfg.MaxTokens = v
	}
	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}

	cfg.APIKey = os.Getenv("DATAPREPPER_LLM_APIKEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg
}
