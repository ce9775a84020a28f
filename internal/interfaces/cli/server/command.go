package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"briefing/internal/domain/channel"
	"briefing/internal/infrastructure/config"
	"briefing/internal/infrastructure/database"
	"briefing/internal/infrastructure/migration"
	"briefing/internal/infrastructure/repository"
	httpRouter "briefing/internal/interfaces/http"
	"briefing/internal/shared/logger"
)

var (
	env           string
	skipMigration bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the briefing state HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipMigration, "skip-migration", false, "Skip database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, ginMode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if !skipMigration {
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("migrations completed")
	}

	// Every channel needs a cursor row so the summary always reports the
	// full set.
	stateRepo := repository.NewChannelStateRepository(database.Get())
	if err := stateRepo.Seed(cmd.Context(), channel.All()); err != nil {
		return fmt.Errorf("failed to seed channel state: %w", err)
	}

	router := httpRouter.NewRouter(database.Get(), cfg, logger.NewLogger())
	router.SetupRoutes(logger.NewLogger())

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
