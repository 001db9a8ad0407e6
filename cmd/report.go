package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/datasynth-io/shopsynth/internal/config"
	"github.com/datasynth-io/shopsynth/internal/loader"
	"github.com/datasynth-io/shopsynth/internal/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	reportDB    string
	reportLimit uint64
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the per-customer sales summary",
	Long: `Run the fixed aggregation across all five tables: order count, units
purchased, revenue, average rating and review count per customer and
category, ordered by revenue.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if !cmd.Flags().Changed("db") {
			reportDB, err = cfg.GetDatabaseURL()
			if err != nil {
				return err
			}
		}

		db, _, err := loader.Open(cfg.Database.Provider, reportDB)
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := report.TopCustomers(context.Background(), db, reportLimit)
		if err != nil {
			return err
		}

		color.Cyan("=== Sales summary (top %d) ===\n", reportLimit)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCUSTOMER\tCATEGORY\tORDERS\tUNITS\tREVENUE\tAVG RATING\tREVIEWS")
		for _, r := range rows {
			rating := "-"
			if r.AvgRating.Valid {
				rating = fmt.Sprintf("%.2f", r.AvgRating.Float64)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%.2f\t%s\t%d\n",
				r.CustomerID, r.CustomerName, r.Category, r.OrdersCount, r.Units, r.Revenue, rating, r.ReviewsCount)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportDB, "db", "", "Database URL (default from config/env)")
	reportCmd.Flags().Uint64Var(&reportLimit, "limit", 10, "Maximum number of rows to print")
}
