// Command api runs the accountability backend.
//
// Subcommands:
//
//	serve    start the HTTP API (default)
//	migrate  apply pending database migrations
//	config   print the resolved configuration
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianloooooh/accountability-app/internal/config"
	"github.com/brianloooooh/accountability-app/internal/database"
	"github.com/brianloooooh/accountability-app/internal/handler"
	"github.com/brianloooooh/accountability-app/internal/lib/utils"
	"github.com/brianloooooh/accountability-app/internal/logger"
	"github.com/brianloooooh/accountability-app/internal/middleware"
	"github.com/brianloooooh/accountability-app/internal/repository"
	"github.com/brianloooooh/accountability-app/internal/router"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/brianloooooh/accountability-app/internal/service"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:          "api",
		Short:        "Accountability habit tracking backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the resolved configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				utils.PrintJSON(cfg)
				return nil
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger service: %w", err)
	}

	log := logger.NewLogger(cfg, loggerService)

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv, services)

	e := router.Setup(handlers, middlewares)
	srv.SetupHTTPServer(e)

	// Run the listener in the background so the main goroutine can wait
	// for termination signals.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	// Stop the reminder scheduler before the server tears down the job
	// queue it enqueues into.
	services.Reminder.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info().Msg("shutdown complete")
	return nil
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger service: %w", err)
	}

	log := logger.NewLogger(cfg, loggerService)

	return database.Migrate(ctx, log, cfg)
}
