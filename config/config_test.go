package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("http:\n  address: \":8000\"\nworker:\n  cache_warm_minutes: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.HTTP.Address)
	assert.Equal(t, 2, cfg.Worker.CacheWarmMinutes)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

// A ticker cannot run on a zero interval, so an unset period falls back
// to the default instead of panicking the worker.
func TestWorkerConfig_WarmInterval(t *testing.T) {
	assert.Equal(t, 5*time.Minute, WorkerConfig{}.WarmInterval())
	assert.Equal(t, 5*time.Minute, WorkerConfig{CacheWarmMinutes: -1}.WarmInterval())
	assert.Equal(t, 10*time.Minute, WorkerConfig{CacheWarmMinutes: 10}.WarmInterval())
}
