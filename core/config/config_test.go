package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "roundest.db", cfg.Database.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "roundest", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, 0, cfg.Ranking.CacheTTLSeconds)
	assert.Equal(t, "pokeapi", cfg.Catalog.Source)
	assert.Equal(t, 100, cfg.Catalog.BatchSize)
	assert.Equal(t, 1025, cfg.Catalog.MaxDexID)
	assert.Equal(t, "https://beta.pokeapi.co/graphql/v1beta", cfg.Catalog.Endpoint)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_PORT", "5432")
	t.Setenv("RANKING_CACHE_TTL_SECONDS", "5")
	t.Setenv("CATALOG_BATCH_SIZE", "25")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 5, cfg.Ranking.CacheTTLSeconds)
	assert.Equal(t, 25, cfg.Catalog.BatchSize)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "LOG_LEVEL=debug\nCATALOG_SOURCE=storage\nCATALOG_OBJECT=snapshots/gen1.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("CATALOG_SOURCE")
		os.Unsetenv("CATALOG_OBJECT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "storage", cfg.Catalog.Source)
	assert.Equal(t, "snapshots/gen1.json", cfg.Catalog.Object)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]struct {
		key, value, msg string
	}{
		"Driver":    {"DATABASE_DRIVER", "oracle", "invalid database driver"},
		"Source":    {"CATALOG_SOURCE", "ftp", "invalid catalog source"},
		"BatchSize": {"CATALOG_BATCH_SIZE", "0", "batch size must be positive"},
		"TTL":       {"RANKING_CACHE_TTL_SECONDS", "-1", "must not be negative"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := LoadConfig(t.TempDir())
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}
