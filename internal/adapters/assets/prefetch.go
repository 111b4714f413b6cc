package assets

import (
	"context"
	"sync"

	"github.com/riftcard/riftcard/pkg/logger"
	"github.com/riftcard/riftcard/pkg/metrics"
)

// Default prefetch configuration constants.
const (
	defaultPrefetchWorkers = 4
)

// PrefetchPool warms the asset cache for a known id set at startup so the
// first renders skip CDN round-trips. It only populates the cache: renders
// themselves are never queued or scheduled here, and a failed warm just
// leaves the id to load on demand.
type PrefetchPool struct {
	resolver Resolver
	workers  int
	logger   logger.Logger
}

// PoolOption applies a configuration option to the PrefetchPool.
type PoolOption func(*PrefetchPool)

// WithWorkers sets the number of concurrent warmers.
func WithWorkers(n int) PoolOption {
	return func(p *PrefetchPool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithPoolLogger sets a custom logger for the pool.
func WithPoolLogger(l logger.Logger) PoolOption {
	return func(p *PrefetchPool) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPrefetchPool creates a pool over the given resolver.
func NewPrefetchPool(resolver Resolver, opts ...PoolOption) *PrefetchPool {
	p := &PrefetchPool{
		resolver: resolver,
		workers:  defaultPrefetchWorkers,
		logger:   logger.Get().Named("prefetch"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Warm validates every id, fanning out across the pool's workers. It returns
// when all ids are attempted or ctx is canceled; failures are logged and
// counted, never fatal.
func (p *PrefetchPool) Warm(ctx context.Context, ids []string) {
	jobs := make(chan string)
	var wg sync.WaitGroup

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				if err := p.resolver.Validate(ctx, id); err != nil {
					metrics.RecordPrefetchFailed()
					p.logger.Warn(ctx, "prefetch failed", logger.String("asset", id), logger.Error(err))
					continue
				}
				metrics.RecordPrefetchWarmed()
			}
		}()
	}

	for _, id := range ids {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return
		case jobs <- id:
		}
	}
	close(jobs)
	wg.Wait()
	p.logger.Info(ctx, "prefetch complete", logger.Int("assets", len(ids)))
}
