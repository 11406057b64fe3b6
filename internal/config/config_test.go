package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"GRPC_ADDR", "API_TOKEN", "OTEL_ENDPOINT", "OTEL_ENABLED", "DISPLAY_LOCALE", "REGION_CATALOG_PATH", "SERIES_SEED"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.GRPCAddr)
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.Equal(t, "tokenvest-backend", cfg.ServiceName)
	assert.Empty(t, cfg.OTELEndpoint)
	assert.True(t, cfg.OTELEnabled)
	assert.Equal(t, "en-US", cfg.DisplayLocale)
	assert.Empty(t, cfg.RegionCatalogPath)
	assert.Equal(t, uint64(0), cfg.SeriesSeed)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("OTEL_ENABLED", "false")
	t.Setenv("DISPLAY_LOCALE", "de-DE")
	t.Setenv("SERIES_SEED", "42")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GRPCAddr)
	assert.False(t, cfg.OTELEnabled)
	assert.Equal(t, "de-DE", cfg.DisplayLocale)
	assert.Equal(t, uint64(42), cfg.SeriesSeed)
}

func TestLoad_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_TOKEN=from-file\nREGION_CATALOG_PATH=regions.yaml\n"), 0o600))

	t.Setenv("API_TOKEN", "from-env")
	t.Setenv("REGION_CATALOG_PATH", "")
	require.NoError(t, os.Unsetenv("REGION_CATALOG_PATH"))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIToken)
	assert.Equal(t, "regions.yaml", cfg.RegionCatalogPath)
}

func TestParseEnv_Error(t *testing.T) {
	t.Setenv("SERIES_SEED", "not-a-number")

	var cfg Config
	err := ParseEnv(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
