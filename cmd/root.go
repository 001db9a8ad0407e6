package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "shopsynth",
	Short: "Generate a synthetic e-commerce dataset and load it into a relational store",
	Long: `shopsynth synthesizes a referentially consistent e-commerce dataset
(customers, products, orders, order items, reviews), serializes it to CSV,
and loads it into a relational database with foreign-key constraints and
idempotent upserts.

Database Support:
- SQLite (default, embedded)
- PostgreSQL
- MySQL`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./shopsynth.config.json)")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("shopsynth.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
