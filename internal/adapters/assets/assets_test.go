package assets_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/riftcard/riftcard/internal/adapters/assets"
	"github.com/riftcard/riftcard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// mapLoader serves assets from memory and counts fetches.
type mapLoader struct {
	data    map[string][]byte
	fetches atomic.Int64
}

func (l *mapLoader) Fetch(_ context.Context, id string) ([]byte, error) {
	l.fetches.Add(1)
	if b, ok := l.data[id]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("no such asset %s", id)
}

func TestCachedResolver(t *testing.T) {
	Convey("Given a resolver over an in-memory loader", t, func() {
		loader := &mapLoader{data: map[string][]byte{
			"champion/Ahri": []byte("ahri-png"),
			"item/3078":     []byte("item-png"),
		}}
		r := assets.NewCachedResolver(loader)
		ctx := context.Background()

		Convey("A present asset resolves and validates", func() {
			So(r.Validate(ctx, "champion/Ahri"), ShouldBeNil)
			b, err := r.Resolve(ctx, "champion/Ahri")
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, "ahri-png")
		})

		Convey("The second lookup is served from cache", func() {
			_, err := r.Resolve(ctx, "item/3078")
			So(err, ShouldBeNil)
			_, err = r.Resolve(ctx, "item/3078")
			So(err, ShouldBeNil)
			So(loader.fetches.Load(), ShouldEqual, 1)
		})

		Convey("A missing asset fails with ErrAssetMissing naming the id", func() {
			err := r.Validate(ctx, "champion/Nobody")
			So(errors.Is(err, assets.ErrAssetMissing), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "champion/Nobody")
		})
	})
}

func TestDragonLoaderRouting(t *testing.T) {
	Convey("Given the CDN loader", t, func() {
		l := assets.NewDragonLoader(assets.WithGameVersion("14.17.1"))
		ctx := context.Background()

		Convey("An id without a kind is unsupported", func() {
			_, err := l.Fetch(ctx, "bogus")
			So(errors.Is(err, assets.ErrUnsupportedAsset), ShouldBeTrue)
		})

		Convey("An unknown kind is unsupported", func() {
			_, err := l.Fetch(ctx, "totem/42")
			So(errors.Is(err, assets.ErrUnsupportedAsset), ShouldBeTrue)
		})
	})
}

func TestPrefetchPool(t *testing.T) {
	Convey("Given a prefetch pool over a resolver", t, func() {
		loader := &mapLoader{data: map[string][]byte{
			"champion/Ahri":  []byte("a"),
			"champion/Akali": []byte("b"),
			"item/1055":      []byte("c"),
		}}
		r := assets.NewCachedResolver(loader)
		pool := assets.NewPrefetchPool(r, assets.WithWorkers(2))

		Convey("When warming a mixed id set", func() {
			pool.Warm(context.Background(), []string{
				"champion/Ahri", "champion/Akali", "item/1055", "item/9999",
			})

			Convey("Then present assets are cached and misses are tolerated", func() {
				before := loader.fetches.Load()
				So(r.Validate(context.Background(), "champion/Ahri"), ShouldBeNil)
				So(loader.fetches.Load(), ShouldEqual, before) // cache hit, no refetch
			})
		})

		Convey("A canceled context stops the warm without hanging", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			pool.Warm(ctx, []string{"champion/Ahri", "champion/Akali"})
		})
	})
}
