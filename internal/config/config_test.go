package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default().GRPCPort, cfg.GRPCPort)
	assert.Equal(t, Default().BroadcastCapacity, cfg.BroadcastCapacity)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookstream.yml")
	content := `
grpc_port: 60000
depth_max: 250
require_auth: true
api_keys: ["abc", "def"]
market_universe_file: /etc/bookstream/universe.yml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60000, cfg.GRPCPort)
	assert.Equal(t, 250, cfg.DepthMax)
	assert.True(t, cfg.RequireAuth)
	assert.Equal(t, []string{"abc", "def"}, cfg.APIKeys)
	assert.Equal(t, "/etc/bookstream/universe.yml", cfg.MarketUniverseFile)
	// fields not present in the file keep their defaults
	assert.Equal(t, Default().MetricsPort, cfg.MetricsPort)
}

func TestLoad_MalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("grpc_port: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGetEnv_FallsBackOnUnsetOrUnparsable(t *testing.T) {
	assert.Equal(t, 7, GetEnv("BOOKSTREAM_TEST_UNSET", 7))

	t.Setenv("BOOKSTREAM_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnv("BOOKSTREAM_TEST_INT", 7))

	t.Setenv("BOOKSTREAM_TEST_INT", "42")
	assert.Equal(t, 42, GetEnv("BOOKSTREAM_TEST_INT", 7))

	t.Setenv("BOOKSTREAM_TEST_BOOL", "true")
	assert.True(t, GetEnv("BOOKSTREAM_TEST_BOOL", false))
}
