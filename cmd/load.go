package cmd

import (
	"context"
	"fmt"

	"github.com/datasynth-io/shopsynth/internal/config"
	"github.com/datasynth-io/shopsynth/internal/loader"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	loadDataDir string
	loadDB      string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load serialized CSVs into the relational store",
	Long: `Create the destination schema if needed and upsert all five tables inside a
single transaction, parents before children. Re-running against the same
store is idempotent: the end state depends only on the latest input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if !cmd.Flags().Changed("data-dir") {
			loadDataDir = cfg.DataDir
		}
		if !cmd.Flags().Changed("db") {
			loadDB, err = cfg.GetDatabaseURL()
			if err != nil {
				return err
			}
		}

		db, dialect, err := loader.Open(cfg.Database.Provider, loadDB)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()

		color.Cyan("📦 Ensuring schema...")
		if err := loader.EnsureSchema(ctx, db, dialect); err != nil {
			return err
		}

		color.Cyan("📥 Ingesting CSVs from %s...", loadDataDir)
		if err := loader.Ingest(ctx, db, dialect, loadDataDir); err != nil {
			return err
		}

		color.Green("✅ Loaded dataset into %s", loadDB)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadDataDir, "data-dir", "data", "Directory containing CSV files")
	loadCmd.Flags().StringVar(&loadDB, "db", "", "Database URL (default from config/env)")
}
