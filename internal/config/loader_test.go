package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/riftcard/riftcard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"RIFTCARD_CONFIG",
		"RIFTCARD_ADDR",
		"RIFTCARD_LOG_LEVEL",
		"RIFTCARD_GAME_VERSION",
		"RIFTCARD_RENDER_SCALE",
		"RIFTCARD_PREFETCH_WORKERS",
		"RIFTCARD_ASSET_TIMEOUT_MS",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.GameVersion, convey.ShouldEqual, "14.17.1")
				convey.So(cfg.RenderScale, convey.ShouldEqual, 2.0)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("RIFTCARD_ADDR", ":8080")
			_ = os.Setenv("RIFTCARD_GAME_VERSION", "14.18.1")
			_ = os.Setenv("RIFTCARD_RENDER_SCALE", "1.5")
			_ = os.Setenv("RIFTCARD_PREFETCH_WORKERS", "8")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.GameVersion, convey.ShouldEqual, "14.18.1")
				convey.So(cfg.RenderScale, convey.ShouldEqual, 1.5)
				convey.So(cfg.PrefetchWorkers, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
log_level: "debug"
game_version: "14.16.1"
render_scale: 3
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("RIFTCARD_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.GameVersion, convey.ShouldEqual, "14.16.1")
				convey.So(cfg.RenderScale, convey.ShouldEqual, 3.0)
			})
		})

		convey.Convey("When env vars and file disagree", func() {
			tmpFile := createTempConfigFile(t, "addr: \":9090\"\n")
			_ = os.Setenv("RIFTCARD_CONFIG", tmpFile)
			_ = os.Setenv("RIFTCARD_ADDR", ":7070")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
			})
		})

		convey.Convey("When a value fails validation", func() {
			_ = os.Setenv("RIFTCARD_RENDER_SCALE", "-1")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then Load reports an invalid config", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}
