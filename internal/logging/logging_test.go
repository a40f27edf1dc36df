package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesDirAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ops.log")

	l, err := Open(path)
	require.NoError(t, err)
	l.Infof("added student %s", "a1b2c3d4")
	l.Errorf("delete %s: not found", "nope")
	require.NoError(t, l.Close())

	// A second session appends instead of truncating.
	l, err = Open(path)
	require.NoError(t, err)
	l.Infof("session resumed")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "INFO added student a1b2c3d4")
	assert.Contains(t, lines[1], "ERROR delete nope: not found")
	assert.Contains(t, lines[2], "INFO session resumed")
	// log.LstdFlags puts a date like 2024/01/02 in front of the message.
	assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} `, lines[0])
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Infof("goes nowhere")
	l.Errorf("also nowhere")
	assert.NoError(t, l.Close())
}
