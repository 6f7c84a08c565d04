package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/weather-fireworks/internal/config"
)

func TestTerminalLoggerWritesToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	log, err := newLogger(config.LoggingConfig{Level: "info", Format: "console"}, true)
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, logFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestLoggerFallsBackToInfo(t *testing.T) {
	t.Chdir(t.TempDir())

	log, err := newLogger(config.LoggingConfig{Level: "loud", Format: "json"}, true)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1))
	assert.True(t, log.Core().Enabled(0))
}
