package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todo.log")
	logger, err := New("info", path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("tasks loaded", zap.Int("tasks", 3))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"tasks loaded"`)
	assert.Contains(t, string(data), `"tasks":3`)
	assert.Contains(t, string(data), `"time":`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "todo.log"))
	assert.Error(t, err)
}

func TestInstall(t *testing.T) {
	logger, err := New("debug", filepath.Join(t.TempDir(), "todo.log"))
	require.NoError(t, err)

	restore := Install(logger)
	assert.Same(t, logger, zap.L())
	restore()
	assert.NotSame(t, logger, zap.L())
}
