package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chup1x/carprice/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carprice.log")

	log, err := New(config.LogConfig{Level: "info", File: path, FileMaxSizeMB: 1})
	require.NoError(t, err)

	log.Info("server started")
	log.Debug("not written")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"server started"`)
	assert.NotContains(t, string(data), "not written")
}

func TestNewLevels(t *testing.T) {
	log, err := New(config.LogConfig{Level: "debug", FileMaxSizeMB: 1})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New(config.LogConfig{Level: "warn", FileMaxSizeMB: 1})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
