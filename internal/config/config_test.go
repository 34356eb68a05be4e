package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory so a developer's own config
// file does not leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(ConfigPathEnv, "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Layout.Path)
	assert.Equal(t, "", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, filepath.Join(os.TempDir(), "dockyard.log"), cfg.Log.File)
	assert.Equal(t, "", cfg.Trace.Endpoint)
	assert.Equal(t, "dockyard", cfg.Trace.ServiceName)
	assert.True(t, cfg.Trace.Insecure)
	assert.Equal(t, 24, cfg.UI.FloatingWidth)
	assert.Equal(t, 8, cfg.UI.FloatingHeight)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DOCKYARD_LAYOUT_PATH", "/tmp/custom-layout.yaml")
	t.Setenv("DOCKYARD_LOG_LEVEL", "debug")
	t.Setenv("DOCKYARD_LOG_DEVELOPMENT", "true")
	t.Setenv("DOCKYARD_TRACE_ENDPOINT", "localhost:4318")
	t.Setenv("DOCKYARD_UI_FLOATING_WIDTH", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom-layout.yaml", cfg.Layout.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "localhost:4318", cfg.Trace.Endpoint)
	assert.Equal(t, 30, cfg.UI.FloatingWidth)
}

func TestLoad_ConfigFileFromHome(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "dockyard")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	body := `
[layout]
path = "/srv/layout.json"

[trace]
service_name = "editor"

[ui]
floating_height = 12
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/layout.json", cfg.Layout.Path)
	assert.Equal(t, "editor", cfg.Trace.ServiceName)
	assert.Equal(t, 12, cfg.UI.FloatingHeight)
	assert.Equal(t, 24, cfg.UI.FloatingWidth)
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	home := isolate(t)
	t.Setenv(ConfigPathEnv, filepath.Join(home, "nope.toml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveFloatingSize(t *testing.T) {
	isolate(t)
	t.Setenv("DOCKYARD_UI_FLOATING_HEIGHT", "0")

	_, err := Load()
	assert.Error(t, err)
}
