package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "application/json", cfg.MediaType)
	assert.True(t, cfg.Validate)
	assert.False(t, cfg.Strict)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OPENAPI_UPGRADE_LOG_LEVEL", "debug")
	t.Setenv("OPENAPI_UPGRADE_MEDIA_TYPE", "application/xml")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "application/xml", cfg.MediaType)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nstrict: true\n"), 0o600))
	t.Setenv("OPENAPI_UPGRADE_CONFIG", path)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Strict)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("OPENAPI_UPGRADE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	t.Setenv("OPENAPI_UPGRADE_FORMAT", "yaml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "", "output format")
	flags.Bool("strict", false, "strict mode")
	require.NoError(t, flags.Parse([]string{"--format=json"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	// Unset flags do not clobber lower layers.
	assert.False(t, cfg.Strict)
}
