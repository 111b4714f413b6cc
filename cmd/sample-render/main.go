// Command sample-render renders the built-in fixture matches to PNG files.
// It exercises the full pipeline against the live asset CDNs, which makes it
// a quick end-to-end smoke check without running the HTTP service.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/riftcard/riftcard/internal/adapters/assets"
	app "github.com/riftcard/riftcard/internal/app"
	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/sample"
	"github.com/riftcard/riftcard/pkg/logger"
)

const renderTimeout = 2 * time.Minute

func main() {
	var (
		outDir  = flag.String("out", ".", "Directory for the rendered PNG files")
		variant = flag.String("variant", "all", "Which fixtures to render: traditional, loss, arena, all")
		scale   = flag.Float64("scale", 2.0, "Raster supersampling factor")
		version = flag.String("game-version", "", "Data Dragon patch override, e.g. 14.17.1")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
	defer cancel()

	var loaderOpts []assets.LoaderOption
	if *version != "" {
		loaderOpts = append(loaderOpts, assets.WithGameVersion(*version))
	}

	svc := app.New(
		app.WithLoader(assets.NewDragonLoader(loaderOpts...)),
		app.WithRenderScale(*scale),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer svc.Stop()

	tracked := []model.TrackedPlayer{sample.Tracked()}
	jobs := fixtureJobs(*variant)
	if len(jobs) == 0 {
		os.Stderr.WriteString("unknown variant: " + *variant + "\n")
		os.Exit(2)
	}

	log := logger.Get()
	for _, job := range jobs {
		out, err := job.render(ctx, svc, tracked)
		if err != nil {
			log.Error(ctx, "render failed", logger.String("fixture", job.name), logger.Error(err))
			os.Exit(1)
		}

		path := filepath.Join(*outDir, "riftcard_"+job.name+"_"+uuid.NewString()+".png")
		if err := os.WriteFile(path, out, 0o644); err != nil {
			log.Error(ctx, "write failed", logger.String("path", path), logger.Error(err))
			os.Exit(1)
		}
		log.Info(ctx, "wrote report", logger.String("path", path), logger.Int("bytes", len(out)))
	}
}

type fixtureJob struct {
	name   string
	render func(ctx context.Context, svc *app.Service, tracked []model.TrackedPlayer) ([]byte, error)
}

func fixtureJobs(variant string) []fixtureJob {
	traditional := fixtureJob{"traditional", func(ctx context.Context, svc *app.Service, tracked []model.TrackedPlayer) ([]byte, error) {
		return svc.RenderTraditionalMatch(ctx, sample.TraditionalPayload(false), tracked)
	}}
	loss := fixtureJob{"loss", func(ctx context.Context, svc *app.Service, tracked []model.TrackedPlayer) ([]byte, error) {
		return svc.RenderTraditionalMatch(ctx, sample.TraditionalPayload(true), tracked)
	}}
	arena := fixtureJob{"arena", func(ctx context.Context, svc *app.Service, tracked []model.TrackedPlayer) ([]byte, error) {
		return svc.RenderArenaMatch(ctx, sample.ArenaPayload(), tracked)
	}}

	switch variant {
	case "traditional":
		return []fixtureJob{traditional}
	case "loss":
		return []fixtureJob{loss}
	case "arena":
		return []fixtureJob{arena}
	case "all":
		return []fixtureJob{traditional, loss, arena}
	default:
		return nil
	}
}
