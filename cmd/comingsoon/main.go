// Command comingsoon serves a coming-soon page in front of a site until it launches.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/comingsoon/app"
	"github.com/dmitrymomot/comingsoon/core/logger"
	"github.com/dmitrymomot/comingsoon/middleware"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.ForEnv(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	)
	logger.SetAsDefault(log)

	a, err := app.New(ctx, cfg, app.WithLogger(log))
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("failed to release resources", logger.Error(err))
		}
	}()

	return a.Run(ctx)
}
