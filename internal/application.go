package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tokenguess-backend/internal/config"
	"github.com/rocketscienceinc/tokenguess-backend/internal/repository"
	"github.com/rocketscienceinc/tokenguess-backend/internal/resolver"
	"github.com/rocketscienceinc/tokenguess-backend/internal/service"
	"github.com/rocketscienceinc/tokenguess-backend/internal/timer"
	"github.com/rocketscienceinc/tokenguess-backend/transport/console"
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

	sessionRepo := repository.NewSessionRepository()
	tokenResolver := resolver.NewRandom(conf.Resolver.Seed)
	gamePlayService := service.NewGamePlayService(logger, tokenResolver, newTimerFactory(conf.Timer), sessionRepo)

	// run console session
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console session", "timer", !conf.Timer.Disabled)
		consoleServer := console.New(logger, gamePlayService)
		consoleErrCh <- consoleServer.Serve(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}

		log.Info("Console session closed")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newTimerFactory(conf config.Timer) service.TimerFactory {
	if conf.Disabled {
		return nil
	}

	return func() service.RunnableTimer {
		return timer.NewCountdown(conf.Tick)
	}
}
