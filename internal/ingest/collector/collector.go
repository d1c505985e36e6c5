package collector

import "context"

// Result carries one collected value or the error that replaced it.
type Result[T any] struct {
	Result T
	Err    error
}

// Ok reports whether the result holds a value.
func (r Result[T]) Ok() bool {
	return r.Err == nil
}

// Collector streams results until its source is drained or ctx is done.
// The returned channel is closed by the collector.
type Collector[T any] interface {
	Collect(ctx context.Context) (<-chan Result[T], error)
}
