package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabd1/Registro/internal/app"
	"github.com/rafabd1/Registro/internal/config"
	"github.com/rafabd1/Registro/internal/store"
)

func testConfig(t *testing.T, format string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.Format = format
	cfg.Storage.DataPath = filepath.Join(dir, "students."+format)
	cfg.Log.Path = filepath.Join(dir, "registro.log")
	return cfg
}

func runSession(t *testing.T, cfg *config.Config, script string) string {
	t.Helper()
	out := &bytes.Buffer{}
	a, err := app.New(cfg, strings.NewReader(script), out)
	require.NoError(t, err)
	defer a.Close()
	require.NoError(t, a.Run(context.Background()))
	return out.String()
}

func TestInteractiveAddViewExit(t *testing.T) {
	cfg := testConfig(t, store.FormatJSON)

	// add Alice, list, then exit via menu number.
	script := "1\nAlice\nalice@example.com\nCS\n2\n3.9\n2\n8\n"
	output := runSession(t, cfg, script)

	assert.Contains(t, output, "Student added successfully!")
	assert.Contains(t, output, "Alice")
	assert.Contains(t, output, "Goodbye!")

	// The session wrote the data file and the operation log.
	fs, err := store.NewFileStore(cfg.Storage.DataPath, cfg.Storage.Format)
	require.NoError(t, err)
	records, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].Name)

	logData, err := os.ReadFile(cfg.Log.Path)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "added student "+records[0].ID)
}

func TestInteractiveUnknownChoice(t *testing.T) {
	cfg := testConfig(t, store.FormatJSON)
	output := runSession(t, cfg, "99\nexit\n")
	assert.Contains(t, output, "unknown command")
}

func TestInteractiveCommandNames(t *testing.T) {
	cfg := testConfig(t, store.FormatJSON)
	output := runSession(t, cfg, "help\nlist\nexit\n")
	assert.Contains(t, output, "Available commands:")
	assert.Contains(t, output, "No students found.")
}

func TestEOFEndsSession(t *testing.T) {
	cfg := testConfig(t, store.FormatJSON)
	// Script runs out without an explicit exit.
	_ = runSession(t, cfg, "")
}

func TestErrorsAreReportedNotFatal(t *testing.T) {
	cfg := testConfig(t, store.FormatJSON)
	// view a missing id, then exit: the loop keeps going.
	output := runSession(t, cfg, "3\nnope\nexit\n")
	assert.Contains(t, output, "Error:")
	assert.Contains(t, output, "student not found")
}

func TestOneShotCommand(t *testing.T) {
	cfg := testConfig(t, store.FormatJSON)
	out := &bytes.Buffer{}
	input := "Alice\nalice@example.com\nCS\n2\n3.9\n"
	a, err := app.New(cfg, strings.NewReader(input), out)
	require.NoError(t, err)
	require.NoError(t, a.RunCommand(context.Background(), "add", nil))
	require.NoError(t, a.Close())

	out2 := &bytes.Buffer{}
	a2, err := app.New(cfg, strings.NewReader(""), out2)
	require.NoError(t, err)
	defer a2.Close()
	require.NoError(t, a2.RunCommand(context.Background(), "list", nil))
	assert.Contains(t, out2.String(), "Alice")
}

func TestOneShotUnknownCommand(t *testing.T) {
	cfg := testConfig(t, store.FormatJSON)
	a, err := app.New(cfg, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	defer a.Close()
	assert.Error(t, a.RunCommand(context.Background(), "frobnicate", nil))
}

func TestLoadErrorEmptyPolicy(t *testing.T) {
	cfg := testConfig(t, store.FormatJSON)
	require.NoError(t, os.WriteFile(cfg.Storage.DataPath, []byte("{broken"), 0o644))

	out := &bytes.Buffer{}
	a, err := app.New(cfg, strings.NewReader(""), out)
	require.NoError(t, err)
	defer a.Close()

	assert.Contains(t, out.String(), "Starting with an empty collection.")
	require.NoError(t, a.RunCommand(context.Background(), "list", nil))
	assert.Contains(t, out.String(), "No students found.")
}

func TestLoadErrorExitPolicy(t *testing.T) {
	cfg := testConfig(t, store.FormatJSON)
	cfg.OnLoadError = config.LoadErrorExit
	require.NoError(t, os.WriteFile(cfg.Storage.DataPath, []byte("{broken"), 0o644))

	_, err := app.New(cfg, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	var formatErr *store.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestFormatSwitchSession(t *testing.T) {
	// Write with JSON, then reopen the same logical data under XML.
	jsonCfg := testConfig(t, store.FormatJSON)
	runSession(t, jsonCfg, "1\nAlice\nalice@example.com\nCS\n2\n3.9\n8\n")

	fs, err := store.NewFileStore(jsonCfg.Storage.DataPath, store.FormatJSON)
	require.NoError(t, err)
	records, err := fs.Load()
	require.NoError(t, err)

	xmlCfg := testConfig(t, store.FormatXML)
	xmlStore, err := store.NewFileStore(xmlCfg.Storage.DataPath, store.FormatXML)
	require.NoError(t, err)
	require.NoError(t, xmlStore.Save(records))

	output := runSession(t, xmlCfg, "2\n8\n")
	assert.Contains(t, output, "Alice")

	data, err := os.ReadFile(xmlCfg.Storage.DataPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<student>")
}
