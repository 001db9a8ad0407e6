package cmd

import (
	"fmt"
	"time"

	"github.com/datasynth-io/shopsynth/internal/config"
	"github.com/datasynth-io/shopsynth/internal/csvio"
	"github.com/datasynth-io/shopsynth/internal/generator"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	genCustomers int
	genProducts  int
	genOrders    int
	genReviews   int
	genSeed      int64
	genOut       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic dataset and serialize it to CSV",
	Long: `Generate customers, products, orders, order items and reviews with a seeded
random source and write them as CSV files plus a manifest. The same seed and
counts always reproduce the same dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override config.
		if !cmd.Flags().Changed("customers") {
			genCustomers = cfg.Counts.Customers
		}
		if !cmd.Flags().Changed("products") {
			genProducts = cfg.Counts.Products
		}
		if !cmd.Flags().Changed("orders") {
			genOrders = cfg.Counts.Orders
		}
		if !cmd.Flags().Changed("reviews") {
			genReviews = cfg.Counts.Reviews
		}
		if !cmd.Flags().Changed("seed") {
			genSeed = cfg.Seed
		}
		if !cmd.Flags().Changed("out") {
			genOut = cfg.DataDir
		}

		genCfg := generator.Config{
			Customers: genCustomers,
			Products:  genProducts,
			Orders:    genOrders,
			Reviews:   genReviews,
		}

		color.Cyan("🎲 Generating dataset (seed %d)...", genSeed)

		ds, err := generator.New(genSeed).Generate(genCfg)
		if err != nil {
			return err
		}

		if err := csvio.WriteDataset(genOut, ds); err != nil {
			return err
		}

		manifest := csvio.Manifest{
			GeneratedAt: time.Now().UTC(),
			Seed:        genSeed,
			Counts: csvio.ManifestCounts{
				Customers: genCfg.Customers,
				Products:  genCfg.Products,
				Orders:    genCfg.Orders,
				Reviews:   genCfg.Reviews,
			},
			Files: map[string]int{
				csvio.CustomersFile:  len(ds.Customers),
				csvio.ProductsFile:   len(ds.Products),
				csvio.OrdersFile:     len(ds.Orders),
				csvio.OrderItemsFile: len(ds.OrderItems),
				csvio.ReviewsFile:    len(ds.Reviews),
			},
		}
		if err := csvio.WriteManifest(genOut, manifest); err != nil {
			return err
		}

		color.Green("✅ Wrote %d customers, %d products, %d orders, %d order items, %d reviews to %s",
			len(ds.Customers), len(ds.Products), len(ds.Orders), len(ds.OrderItems), len(ds.Reviews), genOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&genCustomers, "customers", 120, "Number of customers to generate")
	generateCmd.Flags().IntVar(&genProducts, "products", 60, "Number of products to generate")
	generateCmd.Flags().IntVar(&genOrders, "orders", 240, "Number of orders to generate")
	generateCmd.Flags().IntVar(&genReviews, "reviews", 150, "Number of reviews to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Random seed")
	generateCmd.Flags().StringVar(&genOut, "out", "data", "Output directory for CSV files")
}
