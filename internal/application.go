package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/checkers-backend/internal/config"
	"github.com/rocketscienceinc/checkers-backend/internal/pkg"
	"github.com/rocketscienceinc/checkers-backend/internal/replay"
	"github.com/rocketscienceinc/checkers-backend/internal/repository"
	"github.com/rocketscienceinc/checkers-backend/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Replay(ctx, logger, conf, os.Stdout)
}

// Replay - plays the configured match script against a fresh in-memory registry and writes the
// result as JSON to out.
func Replay(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	script, err := replay.Load(conf.Replay.Script)
	if err != nil {
		return fmt.Errorf("could not load match script: %w", err)
	}

	playerRepo := repository.NewPlayerRepository()
	matchRepo := repository.NewMatchRepository(conf.Registry.MaxMatches)
	matchUseCase := usecase.NewMatchManager(logger, playerRepo, matchRepo, pkg.NewIDGenerator())
	runner := replay.NewRunner(logger, matchUseCase)

	log.Info("Replaying match script", "path", conf.Replay.Script, "steps", len(script.Steps))

	result, err := runner.Run(ctx, script)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	removed, err := matchUseCase.CleanupFinished(ctx)
	if err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}
	log.Debug("Registry cleaned up", "removed", removed)

	encoder := json.NewEncoder(out)
	if conf.Replay.Pretty {
		encoder.SetIndent("", "  ")
	}

	if err = encoder.Encode(result); err != nil {
		return fmt.Errorf("could not write replay result: %w", err)
	}

	return nil
}
