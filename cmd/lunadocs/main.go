package main

import (
	"context"
	"fmt"
	"os"

	_ "lunadocs/docs"
	"lunadocs/internal/app"
	"lunadocs/internal/config"
	"lunadocs/internal/logger"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lunadocs",
		Short: "Lunaby documentation site and content tools",
		Long: `Serves the Lunaby API documentation site with its admin CMS and
manages documentation sections from the command line.

Configuration is read from .env and the environment (DB_DRIVER, DB_PATH,
FALLBACK_PATH, ADMIN_USERNAME, ...).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stdout and the log directory")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewSeedCheckCommand())

	return rootCmd
}

// loadApp reads the configuration and wires the application. Tools only
// get a real logger with --verbose so their stdout stays clean.
func loadApp(cmd *cobra.Command, withLogger bool) (*config.Config, *app.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		withLogger = true
	}
	if withLogger {
		logger.InitLogger(cfg)
	}

	warnings, err := cfg.Validate()
	if withLogger {
		for _, w := range warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
		}
	}
	if err != nil {
		return nil, nil, err
	}

	a, err := app.InitApp(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init app: %w", err)
	}
	return cfg, a, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
