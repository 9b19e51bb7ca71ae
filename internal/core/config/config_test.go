package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8088", cfg.Server.Listen)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, "todos", cfg.Storage.Redis.Key)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9999"
storage:
  backend: redis
  redis:
    addr: redis.internal:6379
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Listen)
	assert.Equal(t, StorageRedis, cfg.Storage.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Storage.Redis.Addr)

	// Unset values keep their defaults.
	assert.Equal(t, "http://localhost:8088", cfg.Server.URL)
	assert.Equal(t, "todos", cfg.Storage.Redis.Key)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: cassandra
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "storage: [")

	_, err := Load(path)
	assert.Error(t, err)
}
