// Package config loads game configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	LogLevel slog.Level
	NoColor  bool

	// Honeycomb export; an empty key leaves tracing as a no-op.
	HoneycombAPIKey  string
	HoneycombDataset string
}

// Load reads an optional .env file and then the environment.
// Variables specific to one game are prefixed, e.g. RELICRUNNER_SEED.
func Load(prefix string, envFiles ...string) (Config, error) {
	// .env is for local development; its absence is not an error
	_ = godotenv.Load(envFiles...)
	return FromLookup(prefix, os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable lookup.
func FromLookup(prefix string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{LogLevel: slog.LevelWarn}
	key := func(name string) string { return strings.ToUpper(prefix) + "_" + name }

	if v, ok := lookup(key("SEED")); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", key("SEED"), v, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookup(key("LOG_LEVEL")); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", key("LOG_LEVEL"), v, err)
		}
	}

	if _, ok := lookup("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	if v, ok := lookup(key("NO_COLOR")); ok && v != "" && v != "0" && v != "false" {
		cfg.NoColor = true
	}

	cfg.HoneycombAPIKey, _ = lookup("HONEYCOMB_API_KEY")
	cfg.HoneycombDataset, _ = lookup("HONEYCOMB_DATASET")

	return cfg, nil
}
