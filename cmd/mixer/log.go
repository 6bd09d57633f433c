package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

const (
	logFormatFlag = "logformat"
	logLevelFlag  = "loglevel"
	logOutputFlag = "logoutput"

	formatJSON = "json"
	formatText = "text"

	outputStdout = "stdout"
	outputStderr = "stderr"
)

func registerLoggingFlags(cmd *cobra.Command, cfg envConfig) {
	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, cfg.LogFormat, "log format: text or json")
	flags.String(logLevelFlag, cfg.LogLevel, "log level: debug, info, warn or error")
	flags.String(logOutputFlag, outputStderr, "log destination: stdout or stderr")
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString(logLevelFlag)
	format, _ := cmd.Flags().GetString(logFormatFlag)
	output, _ := cmd.Flags().GetString(logOutputFlag)

	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	var w io.Writer

	switch output {
	case outputStdout:
		w = cmd.OutOrStdout()
	case outputStderr:
		w = cmd.ErrOrStderr()
	default:
		return nil, fmt.Errorf("invalid log output: %s", output)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case formatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case formatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}
