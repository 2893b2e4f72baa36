package cmd

import (
	"fmt"
	"os"

	"brandlens-cli/internal/config"

	"github.com/spf13/cobra"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "brandlens",
	Short: "brandlens - brand research from your terminal",
	Long: `brandlens collects brand names, submits them to an AI research agent,
and renders the verified results as a sortable, filterable table that can be
exported to CSV or JSON.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(config.InitConfig)
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}
