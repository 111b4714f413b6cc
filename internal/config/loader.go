package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RIFTCARD_CONFIG is set
//  3. env (prefix RIFTCARD_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("RIFTCARD_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: RIFTCARD_ADDR, RIFTCARD_RENDER_SCALE, ...
	// Map env keys like RIFTCARD_RENDER_SCALE -> render_scale (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("RIFTCARD_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "riftcard_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.GameVersion == "":
		return fmt.Errorf("%w: game_version must not be empty", ErrInvalidConfig)
	case c.RenderScale <= 0:
		return fmt.Errorf("%w: render_scale must be positive", ErrInvalidConfig)
	case c.PrefetchWorkers <= 0:
		return fmt.Errorf("%w: prefetch_workers must be positive", ErrInvalidConfig)
	}
	return nil
}
