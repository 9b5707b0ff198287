package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpadapter "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API, the order feed and the scheduled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "migrate the schema before serving")
	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	config, logger, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := openDatabase(config, logger)
	if err != nil {
		return err
	}
	if migrate {
		if err = postgres.Migrate(db.WithContext(ctx)); err != nil {
			closeDatabase(db, logger)
			return fmt.Errorf("migrate: %w", err)
		}
	}

	app, err := NewCompositionRoot(ctx, config, db, logger)
	if err != nil {
		closeDatabase(db, logger)
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("Failed to release resources", "error", closeErr)
		}
	}()

	e, err := httpadapter.NewRouter(
		httpadapter.NewServer(app.CreateHTTPHandlers()),
		app.CreateAuthenticator(),
		app.Hub(),
		httpadapter.RouterConfig{
			AllowedOrigins: config.CORSAllowedOrigins,
			RateLimit:      config.RateLimitRPS,
			RateBurst:      config.RateLimitBurst,
			Logger:         logger.With("component", "http"),
		},
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		app.Hub().Run(ctx)
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", config.HTTPPort)
		if startErr := e.Start(":" + config.HTTPPort); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	if err = httpadapter.Shutdown(e, shutdownTimeout); err != nil {
		logger.Warn("HTTP server did not shut down cleanly", "error", err)
	}
	cancel()
	<-hubDone
	return nil
}
