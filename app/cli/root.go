package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logo-banner/config"
	"logo-banner/utils"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logo-banner",
		Short: "Compose logo banners from an SVG catalog and export them as PNG.",
		Long: `logo-banner serves a catalog of technology logos, lets clients filter it,
pick and arrange a selection and export the composition as a 1584x396 PNG.

Examples:
  # Start the HTTP API
  logo-banner serve

  # Browse the catalog
  logo-banner catalog --search "react vue"

  # Export the preset selection without a server
  logo-banner export --preset --sort asc --out banner.png`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewCatalogCmd())
	rootCmd.AddCommand(NewExportCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	os.Exit(run(NewRootCmd()))
}

// run executes cmd and flushes the logger before the exit code is returned
func run(cmd *cobra.Command) int {
	defer utils.SyncLogger()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// loadConfig reads the configuration and sets up logging
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := utils.InitLogger(cfg.Log.Level, cfg.Log.Development); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}
