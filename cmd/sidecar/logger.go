package main

import (
	"fmt"
	"io"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newLogger(cmd *cobra.Command) (log.Logger, error) {
	level, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}
	format, err := cmd.Flags().GetString(flagLogFormat)
	if err != nil {
		return nil, err
	}

	return buildLogger(cmd.ErrOrStderr(), level, format)
}

func buildLogger(w io.Writer, level, format string) (log.Logger, error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := []log.Option{log.LevelOption(logLevel)}
	switch format {
	case logFormatPlain:
		opts = append(opts, log.ColorOption(false))
	case logFormatJSON:
		opts = append(opts, log.OutputJSONOption())
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return log.NewLogger(w, opts...), nil
}
