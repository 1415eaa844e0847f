package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/innpulsa-research/zasca-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "zasca-cli",
	Short: "ZASCA/RUES research-data preparation pipeline",
	Long:  "Reshapes the geocoded RUES/ZASCA merge into a long panel, assigns city and program centers, computes distances, and filters far-away observations.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
