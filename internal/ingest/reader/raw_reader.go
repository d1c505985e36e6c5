package reader

import (
	"context"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/pkg/apis"
)

type Reader interface {
	Read() ([]map[string]string, error)
}

type ParallelReaderResult struct {
	Record map[string]string
	Err    error
}

type RawParallelReader interface {
	ReadParallel(ctx context.Context, workerCount int) (<-chan ParallelReaderResult, error)
}

type MappingOptions struct {
	// Strict fails the row on any conversion error, not only on required fields.
	Strict bool
}

type Mapper interface {
	Map(record map[string]string, opt *MappingOptions) (domain.Entry, error)
}

type MappingLoader interface {
	Load(validate bool) (*apis.DataMapping, error)
}
