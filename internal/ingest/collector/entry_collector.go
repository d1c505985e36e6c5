package collector

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/ingest/reader"
)

const defaultWorkers = 10

type EntryCollector struct {
	Reader  reader.RawParallelReader
	Mapper  reader.Mapper
	Options *reader.MappingOptions
	Workers int
}

func NewEntryCollector(r reader.RawParallelReader, mapper reader.Mapper) *EntryCollector {
	return &EntryCollector{
		Reader:  r,
		Mapper:  mapper,
		Workers: defaultWorkers,
	}
}

func (ec *EntryCollector) Collect(ctx context.Context) (<-chan Result[domain.Entry], error) {
	records, err := ec.Reader.ReadParallel(ctx, ec.Workers)
	if err != nil {
		return nil, err
	}

	out := make(chan Result[domain.Entry])
	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case res, ok := <-records:
				if !ok {
					slog.Info("Reader channel closed, stopping collection")
					return
				}

				var next Result[domain.Entry]
				if res.Err != nil {
					next.Err = res.Err
				} else if entry, err := ec.Mapper.Map(res.Record, ec.Options); err != nil {
					slog.Error("failed to map record to entry", "error", err)
					next.Err = err
				} else {
					next.Result = entry
				}

				select {
				case out <- next:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
