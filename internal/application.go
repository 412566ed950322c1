package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/battleship-backend/internal/config"
	"github.com/rocketscienceinc/battleship-backend/internal/service"
	"github.com/rocketscienceinc/battleship-backend/internal/usecase"
	"github.com/rocketscienceinc/battleship-backend/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	seed := conf.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Info("Starting battleship", "grid_size", conf.GridSize, "auto_deploy", conf.AutoDeploy, "seed", seed)

	opponentService := service.NewOpponentService()
	session := usecase.NewSession(logger, conf.Rules(), rand.New(rand.NewSource(seed)), opponentService)

	// run console server
	consoleErrCh := make(chan error, 1)
	go func() {
		consoleServer := console.New(logger, session)
		consoleErrCh <- consoleServer.Start(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console server error: %w", err)
		}

		log.Info("Console closed, shutting down")

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
