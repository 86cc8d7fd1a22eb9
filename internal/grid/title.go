package grid

import (
	"github.com/alexisbeaulieu97/datepick/internal/calkey"
	"github.com/alexisbeaulieu97/datepick/internal/locale"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

// TimeSource extends Source with the cursor clock.
type TimeSource interface {
	Source
	ActiveHour() int
	ActiveMinute() int
}

// Title is the page heading, e.g. "March 2024" or "2020 - 2029".
func Title(src TimeSource) string {
	loc := src.Localizer()
	year := src.ActiveYear()
	switch src.Scene() {
	case picker.SceneMonth:
		return loc.Title(loc.MonthName(src.ActiveMonth(), locale.Long)) + " " + loc.FormatYear(year)
	case picker.SceneYear:
		return loc.FormatYear(year)
	case picker.SceneDecade:
		first := picker.DecadeStart(year)
		return loc.FormatYear(first) + " - " + loc.FormatYear(first+picker.DecadeStride-1)
	case picker.SceneCentury:
		first := picker.CenturyStart(year)
		return loc.FormatYear(first) + " - " + loc.FormatYear(first+picker.CenturyStride-1)
	default:
		return calkey.TimeKey(src.ActiveHour(), src.ActiveMinute())
	}
}

// WeekdayHeader returns the weekday names in locale display order.
func WeekdayHeader(loc *locale.Localizer, format locale.NameFormat) []string {
	days := loc.Weekdays()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = loc.WeekdayName(d, format)
	}
	return names
}
