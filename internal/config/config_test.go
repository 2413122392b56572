package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup("relicrunner", lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.HoneycombAPIKey)
}

func TestFromLookupValues(t *testing.T) {
	cfg, err := FromLookup("relicrunner", lookupFrom(map[string]string{
		"RELICRUNNER_SEED":      "42",
		"RELICRUNNER_LOG_LEVEL": "debug",
		"RELICRUNNER_NO_COLOR":  "1",
		"HONEYCOMB_API_KEY":     "key",
		"HONEYCOMB_DATASET":     "games",
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "key", cfg.HoneycombAPIKey)
	assert.Equal(t, "games", cfg.HoneycombDataset)
}

func TestFromLookupIgnoresOtherPrefix(t *testing.T) {
	cfg, err := FromLookup("boredomquest", lookupFrom(map[string]string{
		"RELICRUNNER_SEED": "42",
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestFromLookupErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"bad seed", map[string]string{"BOREDOMQUEST_SEED": "abc"}},
		{"bad level", map[string]string{"BOREDOMQUEST_LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup("boredomquest", lookupFrom(tt.vars))
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFGTEST_SEED=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CFGTEST_SEED") })

	cfg, err := Load("cfgtest", path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}
