package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/filingscan/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "filingscan",
	Short: "Largest-number scanner for financial filings",
	Long:  "Scans the extracted text of a PDF filing and reports the largest numbers found, both as raw literals and after contextual magnitude scaling (\"in millions\" phrasing, fiscal-year table boundaries).",
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
