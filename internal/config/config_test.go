package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))

		// When: it is loaded
		conf := MustLoad(path)

		// Then: the remaining values fall back to their defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "./match.yml", conf.Replay.Script)
		assert.False(t, conf.Replay.Pretty)
		assert.Zero(t, conf.Registry.MaxMatches)
	})

	t.Run("Repository config", func(t *testing.T) {
		conf := MustLoad(filepath.Join("..", "..", "config.yml"))

		assert.Equal(t, "info", conf.LogLevel)
		assert.True(t, conf.Replay.Pretty)
	})

	t.Run("Missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
