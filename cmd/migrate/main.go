package main

import (
	"fmt"
	"os"

	"learnpath/internal/config"
	"learnpath/internal/database"
	"learnpath/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var steps int

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the catalog database schema",
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(mg *database.Migrator) error {
				return mg.Up(cmd.Context())
			})
		},
	})

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations (sqlite only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(mg *database.Migrator) error {
				if err := mg.Down(steps); err != nil {
					return err
				}
				logger.Get().Info("Rolled back migrations", zap.Int("steps", steps))
				return nil
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back; 0 rolls back all")
	root.AddCommand(down)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(mg *database.Migrator) error {
				v, dirty, err := mg.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
				return nil
			})
		},
	})

	return root
}

// withMigrator loads config, opens the database and hands fn a migrator.
func withMigrator(fn func(mg *database.Migrator) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg)
	if err != nil {
		return err
	}
	if cfg.DB.Driver == database.DriverOracle {
		defer db.Close()
	}

	mg, err := database.NewMigrator(db, cfg.DB.Driver)
	if err != nil {
		return err
	}
	defer mg.Close()

	return fn(mg)
}
