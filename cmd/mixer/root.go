package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// envConfig supplies flag defaults from the environment.
type envConfig struct {
	LogLevel  string `env:"MIXER_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"MIXER_LOG_FORMAT" envDefault:"text"`
	Output    string `env:"MIXER_OUTPUT" envDefault:"table"`
}

func parseEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// app carries state shared by subcommands.
type app struct {
	env envConfig
	log *slog.Logger
}

// New builds the command tree.
func New() *cobra.Command {
	a := &app{log: slog.New(slog.DiscardHandler)}

	cfg, envErr := parseEnv()
	a.env = cfg

	cmd := &cobra.Command{
		Use:   "mixer [sub-command]",
		Short: "Check method composition schemas",
		Long: `mixer lints merge schemas and dry-runs them against stub targets,
  reporting how every member is layered after composition.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}

			log, err := newLogger(cmd)
			if err != nil {
				return err
			}

			a.log = log

			return nil
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	registerLoggingFlags(cmd, cfg)
	cmd.AddCommand(a.newCheckCommand())
	cmd.AddCommand(newStrategiesCommand())

	return cmd
}
