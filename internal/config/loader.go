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
//  2. file (YAML) if MARQUEE_CONFIG is set
//  3. env (prefix MARQUEE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MARQUEE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MARQUEE_ADDR, MARQUEE_DEFAULT_LIMIT, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("MARQUEE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "marquee_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot run with. Scorer
// weights are checked here so a bad deploy fails at startup instead of
// silently reverting to defaults per request.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxLimit < 1:
		return fmt.Errorf("%w: max_limit must be at least 1", ErrInvalidConfig)
	case c.DefaultLimit < 1 || c.DefaultLimit > c.MaxLimit:
		return fmt.Errorf("%w: default_limit must be in [1, max_limit]", ErrInvalidConfig)
	case c.PurchaseWeight < 0 || c.DistanceWeight < 0 || c.PriceWeight < 0 || c.TasteWeight < 0:
		return fmt.Errorf("%w: scorer weights must not be negative", ErrInvalidConfig)
	}
	return nil
}
