package cmd

import (
	"github.com/datasynth-io/shopsynth/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a shopsynth project in the current directory",
	Long:  `Create a default shopsynth.config.json and the data directory for serialized datasets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return err
		}

		color.Green("✅ Project initialized")
		color.Cyan("📄 Config written to %s", config.ConfigFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
