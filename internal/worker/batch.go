package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
)

// Extractor turns one payload source (URL or file path) into a report.
type Extractor interface {
	ExtractSource(ctx context.Context, source string) (*model.Report, error)
}

// ExtractTask is one payload source queued for extraction.
type ExtractTask struct {
	Source    string
	Extractor Extractor
	Limiter   *Limiter // Optional; paces remote sources per host
}

// Run executes the extraction.
func (t *ExtractTask) Run(ctx context.Context) TaskResult {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx, t.Source); err != nil {
			return &ExtractResult{Source: t.Source, Error: err}
		}
	}
	report, err := t.Extractor.ExtractSource(ctx, t.Source)
	return &ExtractResult{Source: t.Source, Report: report, Error: err}
}

// ExtractResult is the outcome of one extraction task.
type ExtractResult struct {
	Source string
	Report *model.Report
	Error  error
}

// Err returns the task error, if any.
func (r *ExtractResult) Err() error {
	return r.Error
}

// BatchProcessor extracts many payload sources concurrently.
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor with per-host rate limiting.
func NewBatchProcessor(extractor Extractor, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		extractor:   extractor,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSecond, burst),
	}
}

// ProcessSources extracts the given sources concurrently and returns one
// result per source, in completion order.
func (b *BatchProcessor) ProcessSources(ctx context.Context, sources []string) []*ExtractResult {
	if len(sources) == 0 {
		return []*ExtractResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, source := range sources {
		pool.Submit(&ExtractTask{
			Source:    source,
			Extractor: b.extractor,
			Limiter:   b.limiter,
		})
	}

	results := pool.Wait()

	out := make([]*ExtractResult, len(results))
	for i, r := range results {
		out[i] = r.(*ExtractResult)
	}
	return out
}

// ProcessFile reads sources from a file (one per line) and extracts them
// concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*ExtractResult, error) {
	sources, err := ReadSourcesFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return b.ProcessSources(ctx, sources), nil
}

// ReadSourcesFromFile reads payload sources from a file, one per line,
// skipping blanks and #-comments and dropping duplicates.
func ReadSourcesFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			sources = append(sources, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return sources, nil
}
