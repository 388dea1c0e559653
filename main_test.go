package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/checkers-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	t.Run("Configured level", func(t *testing.T) {
		// Given: a config asking for warnings only
		logger := initLogger(&config.Config{LogLevel: "warn"})

		// Then: info is filtered out and warnings pass
		assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		logger := initLogger(&config.Config{LogLevel: "chatty"})

		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	})
}

func TestConfigPath(t *testing.T) {
	t.Run("Environment override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yml")
		t.Setenv(configEnv, path)

		assert.Equal(t, path, configPath())
	})

	t.Run("Working directory", func(t *testing.T) {
		t.Setenv(configEnv, "")

		assert.Equal(t, "config.yml", filepath.Base(configPath()))
	})
}
