// Package assets resolves game-asset ids ("champion/Ahri", "item/3078") to
// icon bytes. Lookups hit a process-wide content-addressed cache first and
// fall back to a Loader on miss. Cached entries never change and are never
// invalidated; a racy first population is harmless since every loader
// returns the same bytes for an id, so the cache takes no lock on that path.
package assets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riftcard/riftcard/pkg/metrics"
)

// Loader produces icon bytes for an asset id. Implementations: the Data
// Dragon HTTP loader in production, an in-memory map in tests.
type Loader interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// Resolver is the asset lookup surface the render pipeline depends on.
type Resolver interface {
	// Validate confirms the asset exists, populating the cache as a side
	// effect. Returns ErrAssetMissing naming the id on failure.
	Validate(ctx context.Context, id string) error
	// Resolve returns the icon bytes for an id.
	Resolve(ctx context.Context, id string) ([]byte, error)
}

// CachedResolver implements Resolver over a Loader with a sync.Map cache.
type CachedResolver struct {
	loader Loader

	cache sync.Map // id -> []byte
	size  int64    // approximate entry count, for the gauge only
	mu    sync.Mutex
}

// NewCachedResolver creates a resolver over the given loader.
func NewCachedResolver(loader Loader) *CachedResolver {
	return &CachedResolver{loader: loader}
}

// Validate confirms the asset is resolvable.
func (r *CachedResolver) Validate(ctx context.Context, id string) error {
	_, err := r.Resolve(ctx, id)
	return err
}

// Resolve returns icon bytes, fetching through the loader on first use.
func (r *CachedResolver) Resolve(ctx context.Context, id string) ([]byte, error) {
	if cached, ok := r.cache.Load(id); ok {
		metrics.RecordAssetCacheHit()
		return cached.([]byte), nil
	}
	metrics.RecordAssetCacheMiss()

	start := time.Now()
	data, err := r.loader.Fetch(ctx, id)
	metrics.RecordAssetFetchLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordAssetFetchError()
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetMissing, id, err)
	}
	if len(data) == 0 {
		metrics.RecordAssetFetchError()
		return nil, fmt.Errorf("%w: %s: empty response", ErrAssetMissing, id)
	}

	// Last write wins on a concurrent first load; both writers hold
	// identical bytes.
	if _, loaded := r.cache.LoadOrStore(id, data); !loaded {
		r.mu.Lock()
		r.size++
		metrics.UpdateAssetCacheSize(int(r.size))
		r.mu.Unlock()
	}
	return data, nil
}
