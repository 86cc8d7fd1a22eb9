package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/picker"
	"github.com/alexisbeaulieu97/datepick/pkg/diff"
)

type validateOptions struct {
	mode string
	diff bool
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check a value against a selection mode and print its canonical form",
		Long: `Validate parses the value exactly as the picker would when it is assigned
programmatically. Keys are sorted and de-duplicated; malformed or out of range
input is reported and nothing is printed on stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Selection mode the value belongs to (default: from config)")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show on stderr how the keys were rewritten")

	return cmd
}

func runValidate(cmd *cobra.Command, flags *rootFlags, opts *validateOptions, value string) error {
	cfg, err := loadConfig(flags, overrides{mode: opts.mode})
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	loc, err := cfg.Localizer()
	if err != nil {
		return fmt.Errorf("resolve locale: %w", err)
	}
	pickerOpts, err := pickerOptions(cfg, log)
	if err != nil {
		return err
	}

	ctl := picker.New(cfg.PickerMode(), loc, pickerOpts...)
	defer ctl.Close()

	if err := ctl.SetValue(value); err != nil {
		return fmt.Errorf("invalid %s value: %w", ctl.Mode(), err)
	}

	canonical := ctl.Value()
	if opts.diff {
		fmt.Fprint(cmd.ErrOrStderr(), diff.Keys(value, canonical))
	}
	fmt.Fprintln(cmd.OutOrStdout(), canonical)
	return nil
}
