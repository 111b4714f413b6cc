package service_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	service "github.com/riftcard/riftcard/internal/app"
	"github.com/riftcard/riftcard/internal/adapters/assets"
	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/sample"
	"github.com/riftcard/riftcard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

// stubLoader serves the same tiny icon for every id, optionally failing one.
type stubLoader struct {
	icon    []byte
	missing string
}

func (l *stubLoader) Fetch(_ context.Context, id string) ([]byte, error) {
	if id == l.missing {
		return nil, fmt.Errorf("no such asset %s", id)
	}
	return l.icon, nil
}

func newStubLoader() *stubLoader {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return &stubLoader{icon: buf.Bytes()}
}

func startedService(opts ...service.Option) *service.Service {
	svc := service.New(append([]service.Option{
		service.WithLoader(newStubLoader()),
		service.WithRenderScale(1),
	}, opts...)...)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithRenderScale(1),
			service.WithPrefetchWorkers(2),
			service.WithLoader(newStubLoader()),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New(service.WithLoader(newStubLoader()))
		defer svc.Stop()

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And it should be marked as started", func() {
				stats := svc.GetStats()
				So(stats.Started, ShouldBeTrue)
			})

			Convey("And starting again is a no-op", func() {
				So(svc.Start(context.Background()), ShouldBeNil)
			})
		})
	})

	Convey("Given a service that was never started", t, func() {
		svc := service.New()

		Convey("Rendering fails with ErrNotStarted", func() {
			_, err := svc.RenderTraditionalMatch(context.Background(), sample.TraditionalPayload(false), nil)
			So(err, ShouldWrap, service.ErrNotStarted)
		})
	})
}

func TestService_RenderTraditionalMatch(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		defer svc.Stop()
		ctx := context.Background()
		tracked := []model.TrackedPlayer{sample.Tracked()}

		Convey("A traditional payload renders to a PNG", func() {
			out, err := svc.RenderTraditionalMatch(ctx, sample.TraditionalPayload(false), tracked)
			So(err, ShouldBeNil)

			img, err := png.Decode(bytes.NewReader(out))
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldBeGreaterThan, 0)

			stats := svc.GetStats()
			So(stats.Renders, ShouldEqual, int64(1))
		})

		Convey("An arena payload on the traditional endpoint is rejected", func() {
			_, err := svc.RenderTraditionalMatch(ctx, sample.ArenaPayload(), tracked)
			So(err, ShouldWrap, service.ErrVariantMismatch)
			So(service.ErrorKind(err), ShouldEqual, service.KindDataIntegrity)
		})

		Convey("A payload with an unknown queue is a data defect", func() {
			payload := sample.TraditionalPayload(false)
			payload.Info.QueueID = 9999
			_, err := svc.RenderTraditionalMatch(ctx, payload, tracked)
			So(err, ShouldNotBeNil)
			So(service.ErrorKind(err), ShouldEqual, service.KindDataIntegrity)

			stats := svc.GetStats()
			So(stats.FailedRenders, ShouldEqual, int64(1))
		})
	})
}

func TestService_RenderArenaMatch(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		defer svc.Stop()
		ctx := context.Background()
		tracked := []model.TrackedPlayer{sample.Tracked()}

		Convey("An arena payload renders to a PNG", func() {
			out, err := svc.RenderArenaMatch(ctx, sample.ArenaPayload(), tracked)
			So(err, ShouldBeNil)

			_, err = png.Decode(bytes.NewReader(out))
			So(err, ShouldBeNil)
		})

		Convey("A traditional payload on the arena endpoint is rejected", func() {
			_, err := svc.RenderArenaMatch(ctx, sample.TraditionalPayload(false), tracked)
			So(err, ShouldWrap, service.ErrVariantMismatch)
		})
	})
}

func TestService_ErrorKind(t *testing.T) {
	Convey("Given a loader missing one champion icon", t, func() {
		loader := newStubLoader()
		loader.missing = "champion/Ahri"
		svc := service.New(service.WithLoader(loader), service.WithRenderScale(1))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		Convey("The failure is classified as a missing asset", func() {
			_, err := svc.RenderTraditionalMatch(context.Background(), sample.TraditionalPayload(false), []model.TrackedPlayer{sample.Tracked()})
			So(err, ShouldWrap, assets.ErrAssetMissing)
			So(service.ErrorKind(err), ShouldEqual, service.KindAssetMissing)
		})
	})
}

func TestService_Prefetch(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService(service.WithPrefetchWorkers(2))
		defer svc.Stop()

		Convey("Warming ids does not error and is safe to repeat", func() {
			svc.Prefetch(context.Background(), []string{"champion/Ahri", "item/3078"})
			svc.Prefetch(context.Background(), []string{"champion/Ahri"})
			So(svc.GetStats().Started, ShouldBeTrue)
		})
	})
}
