package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riftcard/riftcard/internal/adapters/assets"
	"github.com/riftcard/riftcard/internal/adapters/http/api"
	app "github.com/riftcard/riftcard/internal/app"
	"github.com/riftcard/riftcard/internal/config"
	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to flush logs: " + err.Error() + "\n")
		}
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	loader := assets.NewDragonLoader(
		assets.WithDataDragonBase(cfg.DataDragonBaseURL),
		assets.WithCommunityDragonBase(cfg.CommunityDragonBaseURL),
		assets.WithGameVersion(cfg.GameVersion),
		assets.WithFetchTimeout(time.Duration(cfg.AssetTimeoutMS)*time.Millisecond),
	)

	// Create and start the service with configuration options
	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithLoader(loader),
		app.WithRenderScale(cfg.RenderScale),
		app.WithPrefetchWorkers(cfg.PrefetchWorkers),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Warm the small fixed icon sets so the first render only fetches
	// match-specific assets.
	go svc.Prefetch(ctx, warmupIDs())

	// HTTP mux and routes.
	mux := http.NewServeMux()

	apiServer := api.NewServer(svc, svc, api.WithMaxBodyBytes(cfg.MaxBodyBytes))
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// warmupIDs lists the icons every report draws regardless of match content.
func warmupIDs() []string {
	ids := []string{
		"medal/1", "medal/2", "medal/3",
	}
	for _, tier := range []string{
		"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM",
		"EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER",
	} {
		ids = append(ids, "rank/"+tier)
	}
	for _, lane := range []model.Lane{
		model.LaneTop, model.LaneJungle, model.LaneMiddle, model.LaneBottom, model.LaneUtility,
	} {
		ids = append(ids, "lane/"+string(lane))
	}
	for _, q := range []model.QueueType{model.QueueClash, model.QueueARAMClash} {
		ids = append(ids, "mode/"+string(q))
	}
	return ids
}
