package ingest

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/ingest/collector"
)

const defaultConcurrency = 1

// Upserter is the privileged write path a pipeline feeds. directory.Service satisfies it.
type Upserter interface {
	UpsertAttraction(ctx context.Context, entry domain.Entry) (*domain.Entry, error)
}

// Stats summarises one pipeline run.
type Stats struct {
	Upserted int64
	Failed   int64
	Duration time.Duration
}

type ImportPipeline struct {
	collector   collector.Collector[domain.Entry]
	upserter    Upserter
	concurrency int
}

type ImportPipelineOption func(p *ImportPipeline)

// WithConcurrency runs n upserts at a time. Each row is still its own write.
func WithConcurrency(n int) ImportPipelineOption {
	return func(p *ImportPipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

func NewImportPipeline(c collector.Collector[domain.Entry], upserter Upserter, opts ...ImportPipelineOption) *ImportPipeline {
	p := &ImportPipeline{
		collector:   c,
		upserter:    upserter,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run drains the collector and upserts every mapped row. Row failures are counted, not returned;
// the returned error is reserved for collection setup and cancellation.
func (p *ImportPipeline) Run(ctx context.Context) (Stats, error) {
	start := time.Now()

	results, err := p.collector.Collect(ctx)
	if err != nil {
		return Stats{}, err
	}

	var (
		upserted atomic.Int64
		failed   atomic.Int64
		wg       sync.WaitGroup
	)

	wg.Add(p.concurrency)
	for w := 0; w < p.concurrency; w++ {
		go func() {
			defer wg.Done()
			for res := range results {
				if !res.Ok() {
					slog.Error("Error collecting entry", "error", res.Err)
					failed.Add(1)
					continue
				}
				saved, err := p.upserter.UpsertAttraction(ctx, res.Result)
				if err != nil {
					slog.Error("Error saving entry", "name", res.Result.Name, "error", err)
					failed.Add(1)
					continue
				}
				slog.Debug("Entry saved", "id", saved.ID, "slug", saved.Slug)
				upserted.Add(1)
			}
		}()
	}
	wg.Wait()

	stats := Stats{
		Upserted: upserted.Load(),
		Failed:   failed.Load(),
		Duration: time.Since(start),
	}
	slog.Info("Import pipeline run completed", "upserted", stats.Upserted, "failed", stats.Failed, "duration", stats.Duration)

	return stats, ctx.Err()
}
