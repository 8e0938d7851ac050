// Package cmd provides the CLI commands for warequote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warequote/core/rates"
	"warequote/internal/config"
	"warequote/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "warequote",
	Short: "Quote warehousing, transport and container packing services",
	Long: `warequote prices storage, transport and container packing jobs
and negotiates discounts against customer history.

Examples:
  warequote quote storage --type floor_space --length 25 --width 20 --weeks 4
  warequote quote transport --from 2000 --to 3000 --vehicle truck
  warequote chat
  warequote rates`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.warequote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadRates builds the rate tables, applying any configured overrides
func loadRates() (*rates.Table, error) {
	table := rates.Default()
	if path := config.Get().Pricing.RatesFile; path != "" {
		if err := table.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("warequote version 0.1.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}
