package calkey

import "time"

// Date is a plain calendar day. Month is 0-based.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate normalizes overflowing fields, so NewDate(2024, 12, 1) is
// 2025-01-01 and NewDate(2024, 2, 0) is the last day of February.
func NewDate(year, month, day int) Date {
	return fromTime(civil(year, month, day))
}

// DateOf extracts the local calendar fields of t.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

// Key renders the day key.
func (d Date) Key() string {
	return DayKey(d.Year, d.Month, d.Day)
}

// AddDays moves d by n days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Weekday returns 0 for Sunday through 6 for Saturday.
func (d Date) Weekday() int {
	return int(civil(d.Year, d.Month, d.Day).Weekday())
}

// YearDay returns the 1-based ordinal of d within its year.
func (d Date) YearDay() int {
	return civil(d.Year, d.Month, d.Day).YearDay()
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// DaysUntil returns the number of days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(civil(o.Year, o.Month, o.Day).Sub(civil(d.Year, d.Month, d.Day)).Hours() / 24)
}

// DaysIn returns the length of the 0-based month.
func DaysIn(year, month int) int {
	return civil(year, month+1, 0).Day()
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod returns a non-negative remainder for positive b.
func Mod(a, b int) int {
	return ((a % b) + b) % b
}

// civil anchors the fields in UTC, which has no DST transitions, so day
// arithmetic never drifts by an hour.
func civil(year, month, day int) time.Time {
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
}

func fromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
