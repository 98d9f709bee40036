package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/hexparrot/dataprepper/internal/arbiter"
	"github.com/hexparrot/dataprepper/internal/model"
	"github.com/hexparrot/dataprepper/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	parseOut     string
	parseFull    bool
	parseDate    string
	parseTimeout time.Duration
	parseNoCache bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a single document into canonical records",
	Long: `Parse races every extractor registered for the document's kind,
selects the result with the most valid records, and emits the winning
record list as JSON.

The contextual date used to complete time-only timestamps is taken from
a YYYY-MM-DD prefix in the filename unless overridden with --date.

Example:
  dataprepper parse "2005-08-13 [Saturday].htm"
  dataprepper parse export.csv --out records.json
  dataprepper parse chat.html --full`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseOut, "out", "-", "output path for records JSON (- for stdout)")
	parseCmd.Flags().BoolVar(&parseFull, "full", false, "emit the full result (winner, score map, records)")
	parseCmd.Flags().StringVar(&parseDate, "date", "", "contextual date (YYYY-MM-DD) overriding the filename")
	parseCmd.Flags().DurationVar(&parseTimeout, "timeout", 30*time.Second, "per-extractor timeout")
	parseCmd.Flags().BoolVar(&parseNoCache, "no-cache", false, "disable the duplicate-document cache")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := model.DefaultConfig()
	cfg.Parse.ExtractorTimeout = parseTimeout
	cfg.Cache.Enabled = !parseNoCache
	cfg.Output.Verbose = verbose

	p := pipeline.New(cfg)

	doc, err := pipeline.ReadDocument(path, cfg.Parse.DefaultDate)
	if err != nil {
		return err
	}
	if parseDate != "" {
		doc.ContextDate = parseDate
	}

	result, err := p.Process(context.Background(), doc)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	reportScores(result)

	renderer := pipeline.NewRenderer(cfg.Output.Indent)
	if parseFull {
		if parseOut == "" || parseOut == "-" {
			return renderer.WriteResult(result, os.Stdout)
		}
		f, err := os.Create(parseOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		return renderer.WriteResult(result, f)
	}
	return renderer.WriteFile(result, parseOut)
}

// reportScores prints winner identity and the per-extractor score map.
// Counts are always reported; an empty parse is a warning, not an
// error.
func reportScores(result *pipeline.DocumentResult) {
	names := make([]string, 0, len(result.Scores))
	for name := range result.Scores {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s: %d\n", name, result.Scores[name])
	}

	if result.Winner == arbiter.NoWinner {
		fmt.Fprintf(os.Stderr, "Warning: no extractor produced valid records for %s\n", result.Path)
		return
	}
	fmt.Fprintf(os.Stderr, "Winner: %s (%d records)\n", result.Winner, len(result.Records))
}
