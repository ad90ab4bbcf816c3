package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 64, cfg.CacheMB)
	require.Equal(t, 7, cfg.MaxSearchDepth)
}

func TestLoadHonorsCacheMBEnvOverride(t *testing.T) {
	t.Setenv("CACHE_MB", "128")
	os.Unsetenv("CHESSPLUSPLUS_DEBUG")
	cfg := Load()
	require.Equal(t, 128, cfg.CacheMB)
}

func TestLoadFallsBackToDefaultsWithoutEnvOrFile(t *testing.T) {
	os.Unsetenv("CACHE_MB")
	os.Unsetenv("CHESSPLUSPLUS_DEBUG")
	cfg := Load()
	require.Equal(t, DefaultConfig().MaxSearchDepth, cfg.MaxSearchDepth)
}
