package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/config"
	"github.com/alexisbeaulieu97/datepick/internal/logger"
)

type rootFlags struct {
	configPath string
	locale     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "datepick",
		Short:         "datepick is a locale-aware date, week, month and time picker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the interactive picker.
			if len(args) == 0 {
				return runPick(cmd, flags, &pickOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a picker configuration file")
	cmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "BCP 47 locale tag (overrides the config file)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newGridCmd(flags))
	cmd.AddCommand(newLocaleCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// overrides carries command-line values that win over the config file.
type overrides struct {
	mode  string
	value *string
}

// loadConfig reads the config file if one was given, applies flag
// overrides and validates the result.
func loadConfig(flags *rootFlags, o overrides) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if strings.TrimSpace(flags.configPath) != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = parsed
	}

	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	if o.mode != "" {
		cfg.Mode = o.mode
		// A value from the file belongs to the file's mode.
		cfg.Value = ""
	}
	if o.value != nil {
		cfg.Value = *o.value
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*logger.Logger, error) {
	opts := cfg.LoggerOptions()
	opts.Writer = cmd.ErrOrStderr()
	opts.Component = "datepick"
	log, err := logger.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}
