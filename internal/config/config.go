// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDragonBaseURL points at the versioned static asset CDN.
	DataDragonBaseURL string `koanf:"data_dragon_base_url"`

	// CommunityDragonBaseURL points at the community asset mirror.
	CommunityDragonBaseURL string `koanf:"community_dragon_base_url"`

	// GameVersion selects the Data Dragon patch, e.g. "14.17.1".
	GameVersion string `koanf:"game_version"`

	// AssetTimeoutMS bounds a single asset fetch.
	AssetTimeoutMS int `koanf:"asset_timeout_ms"`

	// PrefetchWorkers sets the number of cache-warming goroutines.
	PrefetchWorkers int `koanf:"prefetch_workers"`

	// RenderScale is the raster supersampling factor.
	RenderScale float64 `koanf:"render_scale"`

	// MaxBodyBytes caps the accepted request body size.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// New creates a Config with service defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   ":9080",
		DataDragonBaseURL:      "https://ddragon.leagueoflegends.com",
		CommunityDragonBaseURL: "https://raw.communitydragon.org",
		GameVersion:            "14.17.1",
		AssetTimeoutMS:         10_000,
		PrefetchWorkers:        4,
		RenderScale:            2.0,
		MaxBodyBytes:           4 << 20,
	}
}
