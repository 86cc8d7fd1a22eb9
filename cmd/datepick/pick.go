package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/datepick/internal/config"
	"github.com/alexisbeaulieu97/datepick/internal/logger"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
	"github.com/alexisbeaulieu97/datepick/internal/tui"
)

var errNotTerminal = errors.New("pick draws on stderr, which is not a terminal; use 'datepick grid' for plain output")

type pickOptions struct {
	mode        string
	value       string
	weekNumbers bool
}

// uiIsTerminal reports whether the picker's drawing surface is a terminal.
// Stdout stays free for the result so the command can be captured.
var uiIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func newPickCmd(flags *rootFlags) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive picker and print the chosen value",
		Long: `Pick opens a keyboard-driven calendar. Press q to leave; the value selected
at that point is printed on stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Selection mode (date, dates, dateTime, dateRange, time, week, weeks, month, months, year, years)")
	cmd.Flags().StringVar(&opts.value, "value", "", "Initial value in the mode's format")
	cmd.Flags().BoolVarP(&opts.weekNumbers, "week-numbers", "w", false, "Show the week number column")

	return cmd
}

func runPick(cmd *cobra.Command, flags *rootFlags, opts *pickOptions) error {
	if !uiIsTerminal() {
		return errNotTerminal
	}

	o := overrides{mode: opts.mode}
	if cmd.Flags().Changed("value") {
		o.value = &opts.value
	}
	cfg, err := loadConfig(flags, o)
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

	bridge := &tui.Bridge{}
	model := tui.NewModel(cfg.PickerMode(), loc, tui.Options{
		WeekNumbers: cfg.ShowWeekNumbers || opts.weekNumbers,
		Picker:      append(pickerOpts, picker.WithOnChange(bridge.Send)),
	})
	ctl := model.Controller()
	defer ctl.Close()

	if err := ctl.SetValue(cfg.Value); err != nil {
		return fmt.Errorf("initial value: %w", err)
	}

	program := tea.NewProgram(model, tea.WithOutput(cmd.ErrOrStderr()))
	bridge.Attach(program)
	log.Info("picker started", "mode", string(ctl.Mode()), "locale", loc.Tag())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	value := ctl.Value()
	log.Info("picker finished", "value", value)
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// pickerOptions translates the shared config into controller options.
func pickerOptions(cfg *config.Config, log *logger.Logger) ([]picker.Option, error) {
	earliest, latest, err := cfg.Bounds()
	if err != nil {
		return nil, err
	}
	return []picker.Option{
		picker.WithLogger(log),
		picker.WithBounds(earliest, latest),
		picker.WithDebounce(cfg.Debounce),
	}, nil
}
