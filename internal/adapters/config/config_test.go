package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOSConfig_Override(t *testing.T) {
	t.Setenv(EnvConfigDir, "/from/env")
	dir := t.TempDir()

	c, err := NewOSConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), c.ConfigPath("config.yaml"))
	assert.Equal(t, filepath.Join(dir, "logs", "netuse.log"), c.LogPath("netuse.log"))
}

func TestNewOSConfig_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	c, err := NewOSConfig("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), c.ConfigPath("config.yaml"))
}

func TestNewOSConfig_Home(t *testing.T) {
	t.Setenv(EnvConfigDir, "")

	c, err := NewOSConfig("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(c.HomeDir(), dirName, "config.yaml"), c.ConfigPath("config.yaml"))
}

func TestGetEnvOrDefault(t *testing.T) {
	c := &OSConfig{}
	t.Setenv("NETUSE_TEST_VALUE", "set")
	assert.Equal(t, "set", c.GetEnvOrDefault("NETUSE_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", c.GetEnvOrDefault("NETUSE_TEST_UNSET_VALUE", "fallback"))
}
