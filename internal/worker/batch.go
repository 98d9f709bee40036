package worker

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/hexparrot/dataprepper/internal/model"
	"github.com/hexparrot/dataprepper/internal/pipeline"
)

// Processor is the per-document entry point the batch driver drives.
type Processor interface {
	ProcessFile(ctx context.Context, path string) (*pipeline.DocumentResult, error)
}

// ParseJob arbitrates one document.
type ParseJob struct {
	Path       string
	Processor  Processor
	Throughput *Throughput
}

// Execute runs the job.
func (j *ParseJob) Execute(ctx context.Context) Result {
	result, err := j.Processor.ProcessFile(ctx, j.Path)
	if err != nil {
		return &ParseResult{Path: j.Path, Err: err}
	}

	// Emission toward downstream persistence is what the throughput
	// limit protects, so wait after the parse, sized by record count.
	if err := j.Throughput.WaitRecords(ctx, len(result.Records)); err != nil {
		return &ParseResult{Path: j.Path, Err: err}
	}

	return &ParseResult{Path: j.Path, Result: result}
}

// ParseResult is the outcome of one document job.
type ParseResult struct {
	Path   string
	Result *pipeline.DocumentResult
	Err    error
}

// GetError returns the job error, if any.
func (r *ParseResult) GetError() error {
	return r.Err
}

// BatchProcessor runs the pipeline over many documents concurrently.
// Documents are independent; only the per-document record set must be
// complete before it is emitted, which the job boundary guarantees.
type BatchProcessor struct {
	processor   Processor
	concurrency int
	throughput  *Throughput
}

// NewBatchProcessor creates a batch driver.
func NewBatchProcessor(processor Processor, concurrency int, throughput *Throughput) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
		throughput:  throughput,
	}
}

// ProcessPaths arbitrates the given documents on the worker pool.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ParseResult {
	if len(paths) == 0 {
		return []*ParseResult{}
	}

	// The watcher needs a context that is guaranteed to end with this
	// call; a background parent would otherwise strand it forever.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		<-runCtx.Done()
		pool.Shutdown()
	}()

	for _, path := range paths {
		pool.Submit(&ParseJob{
			Path:       path,
			Processor:  b.processor,
			Throughput: b.throughput,
		})
	}

	results := pool.Wait()
	parsed := make([]*ParseResult, 0, len(results))
	for _, result := range results {
		parsed = append(parsed, result.(*ParseResult))
	}

	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Path < parsed[j].Path })
	return parsed
}

// ProcessDir walks a directory tree and arbitrates every supported
// document in it.
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string) ([]*ParseResult, error) {
	paths, err := CollectDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("collect documents: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// CollectDocuments lists the supported document paths under dir,
// sorted for reproducible runs.
func CollectDocuments(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if model.KindOfPath(path) != model.KindUnknown {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
