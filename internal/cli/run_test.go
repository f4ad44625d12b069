package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logchain/logchain/internal/config"
)

// TestRunScenario_ReferenceFlow checks the full reference run:
// Warning lands on the console, Error is appended to the file, the
// unknown message's failure text is printed, and the run still succeeds.
func TestRunScenario_ReferenceFlow(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "file_path")
	cfg := &config.Config{FilePath: logPath}

	var stdout bytes.Buffer
	err := runScenario(context.Background(), cfg, &stdout)
	require.NoError(t, err)

	assert.Equal(t, "warning\nUnknownMessage!\n", stdout.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "Error\n", string(data))
}

func TestRunScenario_AppendsAcrossRuns(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "file_path")
	cfg := &config.Config{FilePath: logPath}

	for i := 0; i < 2; i++ {
		var stdout bytes.Buffer
		require.NoError(t, runScenario(context.Background(), cfg, &stdout))
	}

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "Error\nError\n", string(data), "second run must append, not overwrite")
}

func TestRunScenario_BadFilePathFails(t *testing.T) {
	cfg := &config.Config{FilePath: t.TempDir()} // a directory, not a file

	var stdout bytes.Buffer
	err := runScenario(context.Background(), cfg, &stdout)
	require.Error(t, err)
	assert.Empty(t, stdout.String())
}

func TestRunScenario_SyncOption(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "file_path")
	cfg := &config.Config{FilePath: logPath, Sync: true}

	var stdout bytes.Buffer
	require.NoError(t, runScenario(context.Background(), cfg, &stdout))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "Error\n", string(data))
}
