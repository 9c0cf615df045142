package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/initia-labs/sidecar/app"
	"github.com/initia-labs/sidecar/config"
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"

	logFormatPlain = "plain"
	logFormatJSON  = "json"
)

// Version is set at build time.
var Version = "dev"

// NewRootCmd creates the sidecar command. Running it without a subcommand
// starts the JSON-RPC server.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sidecar",
		Short:         "Ethereum JSON-RPC bridge for the Aptos REST API",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStart,
	}

	addPersistentFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

func addPersistentFlags(flags *pflag.FlagSet) {
	flags.StringP(flagConfig, "c", "", "Path to the TOML config file; defaults are used when empty")
	flags.String(flagLogLevel, "info", "The logging level (trace|debug|info|warn|error)")
	flags.String(flagLogFormat, logFormatPlain, "The logging format (plain|json)")
}

func runStart(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	sidecar, err := app.NewSidecarApp(logger, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sidecar.Start(ctx); err != nil {
		return err
	}

	logger.Info("sidecar stopped")
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}
