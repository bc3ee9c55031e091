package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nurse-roster/internal/config"
)

func TestDualHandler_ErrorsGoToBothSinks(t *testing.T) {
	var core, errs bytes.Buffer

	log := newLogger(newCoreHandler(envLocal, &core), &errs)
	log = log.With(slog.String("op", "test"))

	log.Info("shift added")
	log.Warn("unknown shift code")
	log.Error("failed to save shift")

	assert.Contains(t, core.String(), "shift added")
	assert.Contains(t, core.String(), "unknown shift code")
	assert.Contains(t, core.String(), "failed to save shift")

	assert.NotContains(t, errs.String(), "shift added")
	assert.NotContains(t, errs.String(), "unknown shift code")
	assert.Contains(t, errs.String(), "failed to save shift")
	assert.Contains(t, errs.String(), "op=test")
}

func TestNewCoreHandler_Levels(t *testing.T) {
	var buf bytes.Buffer

	slog.New(newCoreHandler(envProd, &buf)).Debug("hidden")
	assert.Empty(t, buf.String())

	slog.New(newCoreHandler(envDev, &buf)).Debug("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
}

func TestSetupLogger_WritesRotatingErrorFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")

	log, closeLog := setupLogger(envProd, config.Log{ErrorFile: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	log.Error("db is down")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "db is down")
}
