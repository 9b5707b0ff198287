package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"procurement/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// NewRootCommand builds the procurement CLI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "procurement",
		Short: "Purchase orders of internal sectors",
		Long: `Procurement serves the purchase-order workflow: supervisors build a cart
and submit it for a sector, approvers approve or reject it, and purchasing
fulfills and exports approved orders.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
		newTokenCommand(),
	)
	return root
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, logger, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := openDatabase(config, logger)
			if err != nil {
				return err
			}
			defer closeDatabase(db, logger)

			if err = postgres.Migrate(db.WithContext(cmd.Context())); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("Schema is up to date")
			return nil
		},
	}
}

// bootstrap loads and validates the configuration and builds the logger.
func bootstrap() (Config, *slog.Logger, error) {
	config, err := LoadConfig()
	if err != nil {
		return Config{}, nil, err
	}
	if err = config.Validate(); err != nil {
		return Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := config.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return config, logger, nil
}

func openDatabase(config Config, logger *slog.Logger) (*gorm.DB, error) {
	return postgres.Open(config.Database().DSN(), logger)
}

func closeDatabase(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database", "error", err)
	}
}
