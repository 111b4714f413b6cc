// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riftcard/riftcard/internal/adapters/assets"
	"github.com/riftcard/riftcard/internal/adapters/render"
	"github.com/riftcard/riftcard/internal/domain/compose"
	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/domain/normalize"
	"github.com/riftcard/riftcard/internal/riot"
	"github.com/riftcard/riftcard/pkg/logger"
	"github.com/riftcard/riftcard/pkg/metrics"
)

// Service implements the API dependencies for the report renderer.
type Service struct {
	mu sync.RWMutex

	// Core components
	loader   assets.Loader
	resolver assets.Resolver
	pipeline *render.Pipeline
	prefetch *assets.PrefetchPool

	// Configuration
	scale           float64
	prefetchWorkers int

	// State
	started bool
	renders atomic.Int64
	failed  atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLoader sets the asset loader backing the resolver cache.
func WithLoader(loader assets.Loader) Option {
	return func(s *Service) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// WithRenderScale sets the raster supersampling factor.
func WithRenderScale(scale float64) Option {
	return func(s *Service) {
		if scale > 0 {
			s.scale = scale
		}
	}
}

// WithPrefetchWorkers sets the number of cache-warming goroutines.
func WithPrefetchWorkers(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.prefetchWorkers = count
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scale:           2.0,
		prefetchWorkers: 4,
		logger:          nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting report renderer service...")

	if s.loader == nil {
		s.loader = assets.NewDragonLoader()
	}
	s.resolver = assets.NewCachedResolver(s.loader)

	pipeline, err := render.NewPipeline(s.resolver, render.WithScale(s.scale))
	if err != nil {
		return err
	}
	s.pipeline = pipeline

	s.prefetch = assets.NewPrefetchPool(s.resolver,
		assets.WithWorkers(s.prefetchWorkers),
		assets.WithPoolLogger(s.logger),
	)

	s.started = true
	s.logger.Info(ctx, "report renderer service started",
		logger.Float64("scale", s.scale),
		logger.Int("prefetchWorkers", s.prefetchWorkers),
	)

	return nil
}

// Stop shuts down the service. The asset cache survives for the process
// lifetime so there is nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "report renderer service stopped")
}

// RenderTraditionalMatch renders a Summoner's Rift style report PNG.
func (s *Service) RenderTraditionalMatch(ctx context.Context, payload *riot.MatchPayload, tracked []model.TrackedPlayer) ([]byte, error) {
	return s.renderMatch(ctx, payload, tracked, model.VariantTraditional)
}

// RenderArenaMatch renders an arena report PNG.
func (s *Service) RenderArenaMatch(ctx context.Context, payload *riot.MatchPayload, tracked []model.TrackedPlayer) ([]byte, error) {
	return s.renderMatch(ctx, payload, tracked, model.VariantArena)
}

func (s *Service) renderMatch(ctx context.Context, payload *riot.MatchPayload, tracked []model.TrackedPlayer, want model.Variant) ([]byte, error) {
	s.mu.RLock()
	started := s.started
	pipeline := s.pipeline
	s.mu.RUnlock()

	if !started {
		return nil, ErrNotStarted
	}

	start := time.Now()
	out, err := s.doRender(ctx, pipeline, payload, tracked, want)
	if err != nil {
		s.failed.Add(1)
		metrics.RecordRenderError(ErrorKind(err))
		s.logger.Error(ctx, "render failed",
			logger.String("variant", string(want)),
			logger.String("kind", ErrorKind(err)),
			logger.Error(err),
		)
		return nil, err
	}

	s.renders.Add(1)
	metrics.RecordRender(string(want))
	metrics.RecordRenderDuration(string(want), float64(time.Since(start).Milliseconds()))
	s.logger.Info(ctx, "rendered match report",
		logger.String("variant", string(want)),
		logger.Int("bytes", len(out)),
	)
	return out, nil
}

func (s *Service) doRender(ctx context.Context, pipeline *render.Pipeline, payload *riot.MatchPayload, tracked []model.TrackedPlayer, want model.Variant) ([]byte, error) {
	m, err := normalize.Normalize(payload, tracked)
	if err != nil {
		return nil, err
	}
	if m.Variant() != want {
		return nil, ErrVariantMismatch
	}

	composeStart := time.Now()
	tree, err := compose.Compose(m, highlightedNames(tracked))
	if err != nil {
		return nil, err
	}
	metrics.RecordComposeDuration(float64(time.Since(composeStart).Milliseconds()))

	return pipeline.Render(ctx, tree, render.PresetFor(want))
}

// highlightedNames collects the game names whose rows get the accent color.
func highlightedNames(tracked []model.TrackedPlayer) []string {
	names := make([]string, 0, len(tracked))
	for _, t := range tracked {
		if t.GameName != "" {
			names = append(names, t.GameName)
		}
	}
	return names
}

// Prefetch warms the asset cache for the given ids without rendering.
func (s *Service) Prefetch(ctx context.Context, ids []string) {
	s.mu.RLock()
	pool := s.prefetch
	s.mu.RUnlock()

	if pool == nil {
		return
	}
	pool.Warm(ctx, ids)
}

// Stats is a point-in-time operational snapshot of the renderer.
type Stats struct {
	Started         bool    `json:"started"`
	RenderScale     float64 `json:"render_scale"`
	PrefetchWorkers int     `json:"prefetch_workers"`
	Renders         int64   `json:"renders"`
	FailedRenders   int64   `json:"failed_renders"`
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Started:         s.started,
		RenderScale:     s.scale,
		PrefetchWorkers: s.prefetchWorkers,
		Renders:         s.renders.Load(),
		FailedRenders:   s.failed.Load(),
	}
}
