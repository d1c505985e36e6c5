// Package capability caches whether an optional backend capability is currently usable.
//
// A caller tries the capability, and on failure marks it unavailable for a TTL so
// subsequent calls skip straight to their fallback until the mark expires.
package capability

import (
	"context"
	"sync"
	"time"
)

const NearbyQuery = "nearby_query"

const DefaultTTL = 5 * time.Minute

type Probe interface {
	// Available reports whether name has not been marked unavailable within the TTL.
	Available(ctx context.Context, name string) bool
	MarkUnavailable(ctx context.Context, name string)
}

// MemoryProbe is a per-process Probe.
type MemoryProbe struct {
	mu    sync.Mutex
	ttl   time.Duration
	until map[string]time.Time
	now   func() time.Time
}

func NewMemoryProbe(ttl time.Duration) *MemoryProbe {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryProbe{
		ttl:   ttl,
		until: make(map[string]time.Time),
		now:   time.Now,
	}
}

func (p *MemoryProbe) Available(_ context.Context, name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	until, marked := p.until[name]
	if !marked {
		return true
	}
	if !p.now().Before(until) {
		delete(p.until, name)
		return true
	}
	return false
}

func (p *MemoryProbe) MarkUnavailable(_ context.Context, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.until[name] = p.now().Add(p.ttl)
}
