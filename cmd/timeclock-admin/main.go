package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeclock/timeclock-backend/internal/migrate"
	"github.com/timeclock/timeclock-backend/pkg/config"
	"github.com/timeclock/timeclock-backend/pkg/database"
	"github.com/timeclock/timeclock-backend/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:     "timeclock-admin",
		Short:   "Administrative tasks for the timeclock backend",
		Version: "1.0.0",
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(ctx context.Context, db *database.DB) error {
				if err := migrate.Apply(ctx, db); err != nil {
					return err
				}
				fmt.Println("schema applied")
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert default configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(ctx context.Context, db *database.DB) error {
				if err := migrate.Seed(ctx, db); err != nil {
					return err
				}
				fmt.Println("seed data inserted")
				return nil
			})
		},
	}
}

func withDatabase(fn func(context.Context, *database.DB) error) error {
	cfg, err := config.Load("timeclock-admin")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New("timeclock-admin", cfg.Server.Environment)

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	return fn(ctx, db)
}
