package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/calkey"
	"github.com/alexisbeaulieu97/datepick/internal/grid"
	"github.com/alexisbeaulieu97/datepick/internal/locale"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

type gridOptions struct {
	year        int
	month       int
	weekNumbers bool
	adjacent    bool
	jsonOutput  bool
}

// gridClock is swapped in tests.
var gridClock = time.Now

func newGridCmd(flags *rootFlags) *cobra.Command {
	opts := &gridOptions{}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print one month page as plain text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVar(&opts.year, "year", 0, "Year to show (default: current year)")
	cmd.Flags().IntVar(&opts.month, "month", 0, "Month to show, 1-12 (default: current month)")
	cmd.Flags().BoolVarP(&opts.weekNumbers, "week-numbers", "w", false, "Prefix each row with its week number")
	cmd.Flags().BoolVar(&opts.adjacent, "adjacent", false, "Show days of the neighbouring months")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the cells as JSON")

	return cmd
}

func runGrid(cmd *cobra.Command, flags *rootFlags, opts *gridOptions) error {
	if opts.month < 0 || opts.month > 12 {
		return fmt.Errorf("month %d is out of range 1-12", opts.month)
	}

	cfg, err := loadConfig(flags, overrides{mode: string(picker.ModeDate)})
	if err != nil {
		return err
	}
	loc, err := cfg.Localizer()
	if err != nil {
		return fmt.Errorf("resolve locale: %w", err)
	}
	pickerOpts, err := pickerOptions(cfg, nil)
	if err != nil {
		return err
	}

	ctl := picker.New(picker.ModeDate, loc, append(pickerOpts, picker.WithClock(gridClock))...)
	defer ctl.Close()

	year, month := ctl.ActiveYear(), ctl.ActiveMonth()
	if opts.year != 0 {
		year = opts.year
	}
	if opts.month != 0 {
		month = opts.month - 1
	}
	ctl.ShowMonth(year, month)

	weeks := cfg.ShowWeekNumbers || opts.weekNumbers
	rows := grid.Rows(ctl, grid.Options{WeekNumbers: weeks})
	if opts.jsonOutput {
		return renderGridJSON(cmd.OutOrStdout(), grid.Title(ctl), rows)
	}
	return renderGridText(cmd.OutOrStdout(), loc, grid.Title(ctl), rows, weeks, opts.adjacent)
}

func renderGridText(w io.Writer, loc *locale.Localizer, title string, rows [][]grid.Cell, weeks, adjacent bool) error {
	const cellWidth = 4

	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')

	header := grid.WeekdayHeader(loc, locale.Short)
	if weeks {
		fmt.Fprintf(&b, "%*s", cellWidth, "Wk")
	}
	for _, name := range orderForDirection(loc, header) {
		fmt.Fprintf(&b, "%*s", cellWidth, name)
	}
	b.WriteByte('\n')

	for _, row := range rows {
		if weeks {
			fmt.Fprintf(&b, "%*s", cellWidth, loc.FormatWeekNumber(row[0].WeekNumber))
		}
		labels := make([]string, len(row))
		for i, cell := range row {
			switch {
			case cell.Adjacent && !adjacent:
				labels[i] = ""
			case cell.Today:
				labels[i] = cell.Label + "*"
			default:
				labels[i] = cell.Label
			}
		}
		for _, label := range orderForDirection(loc, labels) {
			fmt.Fprintf(&b, "%*s", cellWidth, label)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// orderForDirection reverses a row for right-to-left locales.
func orderForDirection(loc *locale.Localizer, row []string) []string {
	if loc.Direction() != locale.RTL {
		return row
	}
	out := slices.Clone(row)
	slices.Reverse(out)
	return out
}

type gridJSONCell struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Adjacent bool   `json:"adjacent,omitempty"`
	Weekend  bool   `json:"weekend,omitempty"`
	Today    bool   `json:"today,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
	Week     string `json:"week,omitempty"`
}

type gridJSONPayload struct {
	Title string           `json:"title"`
	Rows  [][]gridJSONCell `json:"rows"`
}

func renderGridJSON(w io.Writer, title string, rows [][]grid.Cell) error {
	payload := gridJSONPayload{Title: title, Rows: make([][]gridJSONCell, len(rows))}
	for i, row := range rows {
		payload.Rows[i] = make([]gridJSONCell, len(row))
		for j, cell := range row {
			payload.Rows[i][j] = gridJSONCell{
				Key:      calkey.DayKey(cell.Year, cell.Month, cell.Day),
				Label:    cell.Label,
				Adjacent: cell.Adjacent,
				Weekend:  cell.Weekend,
				Today:    cell.Today,
				Disabled: cell.Disabled,
				Week:     cell.WeekKey,
			}
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
