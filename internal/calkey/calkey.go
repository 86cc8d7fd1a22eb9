// Package calkey converts calendar units to and from the canonical string keys
// stored in a picker selection.
//
// Months are 0-based in every function signature (0 = January) and 1-based in
// the rendered keys, so DayKey(2024, 2, 15) is "2024-03-15". Years are limited
// to 0..9999 so every key keeps its fixed width.
package calkey

import (
	"fmt"
	"regexp"
	"strconv"

	pickerrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// Kind identifies the calendar unit a key encodes.
type Kind int

const (
	KindUnknown Kind = iota
	KindDay
	KindMonth
	KindYear
	KindWeek
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindDay:
		return "day"
	case KindMonth:
		return "month"
	case KindYear:
		return "year"
	case KindWeek:
		return "week"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

const (
	MinYear = 0
	MaxYear = 9999
)

var (
	dayPattern   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	monthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	yearPattern  = regexp.MustCompile(`^(\d{4})$`)
	weekPattern  = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)
	timePattern  = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

// DayKey renders "YYYY-MM-DD".
func DayKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// MonthKey renders "YYYY-MM".
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month+1)
}

// YearKey renders "YYYY".
func YearKey(year int) string {
	return fmt.Sprintf("%04d", year)
}

// WeekKey renders "YYYY-Www" for a week-year and a 1-based week number.
func WeekKey(year, week int) string {
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// TimeKey renders a 24h "HH:MM".
func TimeKey(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// Detect reports which kind of key s looks like without validating ranges.
func Detect(s string) Kind {
	switch {
	case dayPattern.MatchString(s):
		return KindDay
	case weekPattern.MatchString(s):
		return KindWeek
	case monthPattern.MatchString(s):
		return KindMonth
	case yearPattern.MatchString(s):
		return KindYear
	case timePattern.MatchString(s):
		return KindTime
	default:
		return KindUnknown
	}
}

// ParseDay parses "YYYY-MM-DD" and checks the day exists in that month.
func ParseDay(s string) (year, month, day int, err error) {
	parts := dayPattern.FindStringSubmatch(s)
	if parts == nil {
		return 0, 0, 0, pickerrors.NewKeyError(KindDay.String(), s, "expected YYYY-MM-DD")
	}
	year, month, day = atoi(parts[1]), atoi(parts[2])-1, atoi(parts[3])
	if month < 0 || month > 11 {
		return 0, 0, 0, pickerrors.NewKeyError(KindDay.String(), s, "month out of range")
	}
	if day < 1 || day > DaysIn(year, month) {
		return 0, 0, 0, pickerrors.NewKeyError(KindDay.String(), s, "day out of range")
	}
	return year, month, day, nil
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (year, month int, err error) {
	parts := monthPattern.FindStringSubmatch(s)
	if parts == nil {
		return 0, 0, pickerrors.NewKeyError(KindMonth.String(), s, "expected YYYY-MM")
	}
	year, month = atoi(parts[1]), atoi(parts[2])-1
	if month < 0 || month > 11 {
		return 0, 0, pickerrors.NewKeyError(KindMonth.String(), s, "month out of range")
	}
	return year, month, nil
}

// ParseYear parses "YYYY".
func ParseYear(s string) (int, error) {
	parts := yearPattern.FindStringSubmatch(s)
	if parts == nil {
		return 0, pickerrors.NewKeyError(KindYear.String(), s, "expected YYYY")
	}
	return atoi(parts[1]), nil
}

// ParseWeek parses "YYYY-Www". The week must exist in that week-year.
func ParseWeek(s string) (year, week int, err error) {
	parts := weekPattern.FindStringSubmatch(s)
	if parts == nil {
		return 0, 0, pickerrors.NewKeyError(KindWeek.String(), s, "expected YYYY-Www")
	}
	year, week = atoi(parts[1]), atoi(parts[2])
	if week < 1 || week > 53 {
		return 0, 0, pickerrors.NewKeyError(KindWeek.String(), s, "week out of range")
	}
	return year, week, nil
}

// ParseTime parses a 24h "HH:MM".
func ParseTime(s string) (hour, minute int, err error) {
	parts := timePattern.FindStringSubmatch(s)
	if parts == nil {
		return 0, 0, pickerrors.NewKeyError(KindTime.String(), s, "expected HH:MM")
	}
	hour, minute = atoi(parts[1]), atoi(parts[2])
	if hour > 23 {
		return 0, 0, pickerrors.NewKeyError(KindTime.String(), s, "hour out of range")
	}
	if minute > 59 {
		return 0, 0, pickerrors.NewKeyError(KindTime.String(), s, "minute out of range")
	}
	return hour, minute, nil
}

// atoi is only called on regexp-matched digit groups.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
