package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hexparrot/dataprepper/internal/arbiter"
	"github.com/hexparrot/dataprepper/internal/model"
	"github.com/hexparrot/dataprepper/internal/pipeline"
	"github.com/hexparrot/dataprepper/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	batchOutDir  string
	batchWorkers int
	batchRate    float64
	batchTimeout time.Duration
	batchNoCache bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Parse every supported document under a directory",
	Long: `Batch walks a directory tree, arbitrates every supported document on a
worker pool, and reports one line per document. Documents are
independent, so order of completion does not matter; results are
reported sorted by path.

With --out-dir, each document's winning record set is written as
<name>.json in that directory. Without it, only the per-document
summary lines are printed.

Example:
  dataprepper batch ./exports
  dataprepper batch ./exports --out-dir ./records --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "directory for per-document record JSON")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "concurrent documents")
	batchCmd.Flags().Float64Var(&batchRate, "rate", 0, "records per second emitted downstream (0 = unlimited)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Second, "per-extractor timeout")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "disable the duplicate-document cache")

	_ = viper.BindPFlag("concurrency.workers", batchCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("concurrency.records_per_second", batchCmd.Flags().Lookup("rate"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg := model.DefaultConfig()
	cfg.Parse.ExtractorTimeout = batchTimeout
	cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	cfg.Concurrency.RecordsPerSecond = viper.GetFloat64("concurrency.records_per_second")
	cfg.Cache.Enabled = !batchNoCache
	cfg.Output.Verbose = verbose
	if cfg.Concurrency.Workers <= 0 {
		cfg.Concurrency.Workers = batchWorkers
	}

	if batchOutDir != "" {
		if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	p := pipeline.New(cfg)
	throughput := worker.NewThroughput(cfg.Concurrency.RecordsPerSecond, cfg.Concurrency.Burst)
	batch := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, throughput)

	results, err := batch.ProcessDir(context.Background(), dir)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(os.Stderr, "No supported documents under %s\n", dir)
		return nil
	}

	renderer := pipeline.NewRenderer(cfg.Output.Indent)

	var documents, records, failures, empty int
	for _, res := range results {
		if res.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "ERROR  %s: %v\n", res.Path, res.Err)
			continue
		}

		documents++
		records += len(res.Result.Records)
		if res.Result.Winner == arbiter.NoWinner {
			empty++
		}
		fmt.Fprintf(os.Stderr, "%-12s %4d records  %s\n", res.Result.Winner, len(res.Result.Records), res.Path)

		if batchOutDir != "" {
			out := filepath.Join(batchOutDir, recordsFilename(res.Path))
			if err := renderer.WriteFile(res.Result, out); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\n%d documents, %d records, %d without a winner, %d errors\n",
		documents, records, empty, failures)
	return nil
}

// recordsFilename maps a source path to its output JSON name.
func recordsFilename(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".json"
}
