package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps Load away from the developer's real config locations.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv(EnvConfigPath, "")
	os.Unsetenv(EnvConfigPath)
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, warning, err := Load()
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "json", cfg.Storage.Format)
	assert.Equal(t, "data/students.json", cfg.Storage.DataPath)
	assert.Equal(t, "logs/registro.log", cfg.Log.Path)
	assert.Equal(t, LoadErrorEmpty, cfg.OnLoadError)
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	isolate(t)
	content := "storage:\n  format: xml\n  data_path: records.xml\nlog:\n  path: ops.log\n"
	require.NoError(t, os.WriteFile("registro.yaml", []byte(content), 0o644))

	cfg, warning, err := Load()
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "xml", cfg.Storage.Format)
	assert.Equal(t, "records.xml", cfg.Storage.DataPath)
	assert.Equal(t, "ops.log", cfg.Log.Path)
	// Missing keys still fall back.
	assert.Equal(t, LoadErrorEmpty, cfg.OnLoadError)
}

func TestLoadFromHomeDirectory(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".registro")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "storage:\n  format: xml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "registro.yaml"), []byte(content), 0o644))

	cfg, warning, err := Load()
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "xml", cfg.Storage.Format)
}

func TestLoadMalformedFallsBackToDefaults(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("registro.yaml", []byte(":\n  - not yaml"), 0o644))

	cfg, warning, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, warning)
	assert.Equal(t, "json", cfg.Storage.Format)
}

func TestLoadExplicitPathOverrides(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  format: xml\n"), 0o644))
	t.Setenv(EnvConfigPath, path)

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Storage.Format)
}

func TestLoadExplicitPathMissingIsError(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	_, _, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("registro.yaml", []byte("storage:\n  format: csv\n"), 0o644))

	_, _, err := Load()
	assert.Error(t, err)
}

func TestValidateOnLoadError(t *testing.T) {
	cfg := Default()
	cfg.OnLoadError = "panic"
	assert.Error(t, cfg.Validate())

	cfg.OnLoadError = LoadErrorExit
	assert.NoError(t, cfg.Validate())
}
