package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/checkers-backend/internal"
	"github.com/rocketscienceinc/checkers-backend/internal/config"
)

// configEnv overrides the location of config.yml.
const configEnv = "CHECKERS_CONFIG"

// main - replays the match script named in config.yml against a fresh in-memory registry. The replay
// result is written to stdout as JSON, logs go to stderr.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(configPath())
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("replay failed: %w", err))
	}
}

// configPath - $CHECKERS_CONFIG, or config.yml in the working directory.
func configPath() string {
	if path := os.Getenv(configEnv); path != "" {
		return path
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, "config.yml")
}

// initLogger - JSON logs on stderr so they never mix with the replay output. Unknown levels fall back
// to info.
func initLogger(conf *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(conf.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
