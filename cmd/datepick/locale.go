package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/locale"
)

func newLocaleCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale [tag]",
		Short: "Show the calendar facts resolved for a locale",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := flags.locale
			if len(args) == 1 {
				tag = args[0]
			}
			if tag == "" {
				cfg, err := loadConfig(flags, overrides{})
				if err != nil {
					return err
				}
				tag = cfg.Locale
			}
			loc, err := locale.New(tag)
			if err != nil {
				return err
			}
			return renderLocale(cmd, loc)
		},
	}

	return cmd
}

func renderLocale(cmd *cobra.Command, loc *locale.Localizer) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	region := loc.Region()
	if !loc.RegionMapped() {
		region += " (default week data)"
	}

	weekend := make([]string, 0, 2)
	for _, d := range loc.WeekendDays() {
		weekend = append(weekend, loc.WeekdayName(d, locale.Long))
	}
	weekdays := make([]string, 0, 7)
	for _, d := range loc.Weekdays() {
		weekdays = append(weekdays, loc.WeekdayName(d, locale.Short))
	}
	months := make([]string, 0, 12)
	for m := 0; m < 12; m++ {
		months = append(months, loc.MonthName(m, locale.Long))
	}

	fmt.Fprintf(writer, "TAG\t%s\n", loc.Tag())
	fmt.Fprintf(writer, "REGION\t%s\n", region)
	fmt.Fprintf(writer, "DIRECTION\t%s\n", loc.Direction())
	fmt.Fprintf(writer, "FIRST DAY\t%s\n", loc.WeekdayName(loc.FirstDayOfWeek(), locale.Long))
	fmt.Fprintf(writer, "WEEKEND\t%s\n", strings.Join(weekend, ", "))
	fmt.Fprintf(writer, "WEEK\t%s\n", strings.Join(weekdays, " "))
	fmt.Fprintf(writer, "MONTHS\t%s\n", strings.Join(months, ", "))

	return writer.Flush()
}
