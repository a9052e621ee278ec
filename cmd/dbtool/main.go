package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/adapters/cache"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/adapters/repositories"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/config"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/db"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:          "dbtool",
		Short:        "Prepare and maintain the load planner database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending schema migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cfg, func(conn *sql.DB) error { return nil })
			},
		},
		&cobra.Command{
			Use:   "seed [path]",
			Short: "Migrate, store the preset catalogs and load a packing list or seed file",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := cfg.SeedPath
				if len(args) == 1 {
					path = args[0]
				}
				return withDB(cfg, func(conn *sql.DB) error {
					return seed(cmd.Context(), conn, cfg.DBDriver, path)
				})
			},
		},
		newPurgeCmd(&cfg),
	)
	return root
}

func newPurgeCmd(cfg **config.Config) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge-cache",
		Short: "Delete cached plans older than a given age",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(*cfg, func(conn *sql.DB) error {
				n, err := cache.ForDriver(conn, (*cfg).DBDriver).Purge(cmd.Context(), olderThan)
				if err != nil {
					return err
				}
				slog.Info("plan cache purged", "removed", n, "older_than", olderThan)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 24*time.Hour, "Minimum age of entries to delete")
	return cmd
}

// withDB connects, migrates and hands the connection to fn.
func withDB(cfg *config.Config, fn func(conn *sql.DB) error) error {
	conn, err := db.Connect(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	slog.Info("initializing database schema", "driver", cfg.DBDriver)
	if err := db.Migrate(conn, cfg.DBDriver); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	slog.Info("schema ready")

	return fn(conn)
}

func seed(ctx context.Context, conn *sql.DB, driver, path string) error {
	boxes, vehicles := repositories.ForDriver(conn, driver)

	slog.Info("seeding database")
	if err := repositories.SeedVehicles(ctx, vehicles); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	if path != "" {
		var err error
		if strings.EqualFold(filepath.Ext(path), ".json") {
			err = repositories.SeedFromJSON(ctx, path, boxes, vehicles)
		} else {
			err = repositories.SeedBoxes(ctx, path, boxes)
		}
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
	}
	slog.Info("seeding complete")
	return nil
}
