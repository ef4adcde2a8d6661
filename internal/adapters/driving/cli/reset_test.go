package cli

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

func stubReset(t *testing.T, tty bool) {
	t.Helper()
	now = func() time.Time { return time.Date(2026, 10, 16, 8, 5, 9, 0, time.UTC) }
	stdinIsTTY = func() bool { return tty }
	t.Cleanup(func() {
		now = time.Now
		stdinIsTTY = func() bool { return false }
	})
}

func writeDataFile(t *testing.T) string {
	t.Helper()
	data := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(data, []byte("{broken"), 0o600))
	return data
}

func TestReset_WithYes(t *testing.T) {
	stubReset(t, false)
	c := newTestConnector(t)
	data := writeDataFile(t)
	backup := data + ".bak-20261016-080509"

	out, err := execute(t, c, dataArgs(c, data, "reset", "--yes")...)

	require.NoError(t, err)
	assert.Equal(t, "Moved "+data+" to "+backup+"\n", out)
	assert.NoFileExists(t, data)
	raw, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(raw))

	// The next run starts empty.
	out, err = execute(t, c, dataArgs(c, data, "summary")...)
	require.NoError(t, err)
	requireContains(t, out, "Total Trips: 0")
}

func TestReset_WithoutConfirmationNoTTY(t *testing.T) {
	stubReset(t, false)
	c := newTestConnector(t)
	data := writeDataFile(t)

	_, err := execute(t, c, dataArgs(c, data, "reset")...)

	assert.ErrorIs(t, err, domain.ErrNotConfirmed)
	assert.Contains(t, err.Error(), "--yes")
	assert.FileExists(t, data)
}

func TestReset_InteractiveConfirm(t *testing.T) {
	stubReset(t, true)
	c := newTestConnector(t)
	data := writeDataFile(t)

	out, err := executeContext(context.Background(), t, c, "y\n", dataArgs(c, data, "reset")...)

	require.NoError(t, err)
	requireContains(t, out, "[y/N]")
	requireContains(t, out, "Moved "+data)
	assert.NoFileExists(t, data)
}

func TestReset_InteractiveDecline(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "", "maybe\n"} {
		t.Run(strings.TrimSpace(answer), func(t *testing.T) {
			stubReset(t, true)
			c := newTestConnector(t)
			data := writeDataFile(t)

			out, err := executeContext(context.Background(), t, c, answer, dataArgs(c, data, "reset")...)

			require.NoError(t, err)
			requireContains(t, out, "Reset cancelled.")
			assert.FileExists(t, data)
		})
	}
}

func TestReset_MissingFile(t *testing.T) {
	stubReset(t, false)
	c := newTestConnector(t)
	data := filepath.Join(t.TempDir(), "data.json")

	out, err := execute(t, c, dataArgs(c, data, "reset", "--yes")...)

	require.NoError(t, err)
	assert.Equal(t, data+" does not exist; nothing to reset.\n", out)
}

func TestReset_MemoryBackend(t *testing.T) {
	stubReset(t, false)
	c := newTestConnector(t)

	out, err := execute(t, c, "--config-dir", c.configDir, "--backend", "memory", "reset")

	require.NoError(t, err)
	requireContains(t, out, "nothing to reset")
}

func TestConfirmed(t *testing.T) {
	tests := map[string]bool{
		"y\n":     true,
		"Y\n":     true,
		" yes \n": true,
		"YES":     true,
		"n\n":     false,
		"\n":      false,
		"":        false,
		"yep\n":   false,
	}
	for input, want := range tests {
		assert.Equal(t, want, confirmed(bufio.NewReader(strings.NewReader(input))), "%q", input)
	}
}
