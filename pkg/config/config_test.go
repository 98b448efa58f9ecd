package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/staticize/pkg/config"
	"github.com/arthur-debert/staticize/pkg/errors"
)

func setConfigHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestLoadDefaults(t *testing.T) {
	setConfigHome(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "toml", cfg.Export.Format)
	assert.False(t, cfg.NoColor)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	setConfigHome(t, dir)

	cfgDir := filepath.Join(dir, "staticize")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(cfgDir, "config.toml"),
		[]byte("no_color = true\n\n[export]\nformat = \"yaml\"\n"),
		0644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Export.Format)
	assert.True(t, cfg.NoColor)
}

func TestEnvOverrides(t *testing.T) {
	setConfigHome(t, t.TempDir())
	t.Setenv("STATICIZE_EXPORT__FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Export.Format)
}

func TestInvalidFormatRejected(t *testing.T) {
	setConfigHome(t, t.TempDir())
	t.Setenv("STATICIZE_EXPORT__FORMAT", "xml")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
