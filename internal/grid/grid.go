// Package grid enumerates the cells of the page a picker currently shows.
// It holds no state of its own; selection and cursor flags are read from the
// Source at enumeration time, so ranging over the same sequence twice after
// a command reflects the new state.
package grid

import (
	"iter"

	"github.com/alexisbeaulieu97/datepick/internal/calkey"
	"github.com/alexisbeaulieu97/datepick/internal/locale"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

// MonthCells is the fixed size of a month page: six weeks of seven days.
const MonthCells = 42

// PageCells is the size of year, decade and century pages.
const PageCells = 12

// Source is the read side of a picker controller.
type Source interface {
	Scene() picker.Scene
	Localizer() *locale.Localizer
	ActiveYear() int
	ActiveMonth() int
	ActiveDate() calkey.Date
	Today() calkey.Date
	HasSelectedDay(y, m, d int) bool
	HasSelectedMonth(y, m int) bool
	HasSelectedYear(y int) bool
	InSelectedRange(y, m, d int) bool
	IsDisabledDay(y, m, d int) bool
	IsDisabledMonth(y, m int) bool
	IsDisabledYear(y int) bool
	IsDisabledDecade(first int) bool
}

// Kind is the calendar unit a cell represents.
type Kind int

const (
	KindDay Kind = iota
	KindMonth
	KindYear
	KindDecade
)

// Cell describes one clickable grid cell.
type Cell struct {
	Kind  Kind
	Year  int
	Month int
	Day   int
	Label string

	Adjacent bool
	Disabled bool
	Weekend  bool
	Today    bool
	Selected bool
	Active   bool
	InRange  bool

	// Set on day cells when week numbers are enabled.
	WeekKey    string
	WeekNumber int
}

// Options tunes enumeration.
type Options struct {
	WeekNumbers bool
}

// Columns returns how many cells a row holds in scene.
func Columns(scene picker.Scene) int {
	switch scene {
	case picker.SceneMonth:
		return 7
	case picker.SceneTime:
		return 0
	default:
		return 4
	}
}

// Cells yields the cells of the current page in display order.
func Cells(src Source, opts Options) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		switch src.Scene() {
		case picker.SceneMonth:
			monthCells(src, opts, yield)
		case picker.SceneYear:
			yearCells(src, yield)
		case picker.SceneDecade:
			decadeCells(src, yield)
		case picker.SceneCentury:
			centuryCells(src, yield)
		}
	}
}

// Rows groups the current page into display rows.
func Rows(src Source, opts Options) [][]Cell {
	cols := Columns(src.Scene())
	if cols == 0 {
		return nil
	}
	var rows [][]Cell
	var row []Cell
	for cell := range Cells(src, opts) {
		row = append(row, cell)
		if len(row) == cols {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// FirstVisibleDay is the most recent locale first-day-of-week on or before
// the first of the month.
func FirstVisibleDay(loc *locale.Localizer, year, month int) calkey.Date {
	return loc.WeekStart(calkey.Date{Year: year, Month: month, Day: 1})
}

func monthCells(src Source, opts Options, yield func(Cell) bool) {
	loc := src.Localizer()
	year, month := src.ActiveYear(), src.ActiveMonth()
	active, today := src.ActiveDate(), src.Today()
	day := FirstVisibleDay(loc, year, month)

	var weekKey string
	var weekNumber int
	for i := 0; i < MonthCells; i++ {
		if opts.WeekNumbers && i%7 == 0 {
			weekKey, weekNumber = loc.WeekKey(day), loc.WeekNumber(day)
		}
		cell := Cell{
			Kind:       KindDay,
			Year:       day.Year,
			Month:      day.Month,
			Day:        day.Day,
			Label:      loc.FormatDay(day.Day),
			Adjacent:   day.Year != year || day.Month != month,
			Disabled:   src.IsDisabledDay(day.Year, day.Month, day.Day),
			Weekend:    loc.IsWeekend(day.Weekday()),
			Today:      day == today,
			Selected:   src.HasSelectedDay(day.Year, day.Month, day.Day),
			Active:     day == active,
			InRange:    src.InSelectedRange(day.Year, day.Month, day.Day),
			WeekKey:    weekKey,
			WeekNumber: weekNumber,
		}
		if !yield(cell) {
			return
		}
		day = day.AddDays(1)
	}
}

func yearCells(src Source, yield func(Cell) bool) {
	loc := src.Localizer()
	year, today := src.ActiveYear(), src.Today()
	for m := 0; m < 12; m++ {
		cell := Cell{
			Kind:     KindMonth,
			Year:     year,
			Month:    m,
			Day:      1,
			Label:    loc.MonthName(m, locale.Short),
			Disabled: src.IsDisabledMonth(year, m),
			Today:    today.Year == year && today.Month == m,
			Selected: src.HasSelectedMonth(year, m),
			Active:   src.ActiveMonth() == m,
		}
		if !yield(cell) {
			return
		}
	}
}

// decadeCells shows the decade plus one padding year on each side.
func decadeCells(src Source, yield func(Cell) bool) {
	loc := src.Localizer()
	active, today := src.ActiveYear(), src.Today()
	first := picker.DecadeStart(active)
	for y := first - 1; y <= first+picker.DecadeStride; y++ {
		cell := Cell{
			Kind:     KindYear,
			Year:     y,
			Day:      1,
			Label:    loc.FormatYear(y),
			Adjacent: y < first || y >= first+picker.DecadeStride,
			Disabled: src.IsDisabledYear(y),
			Today:    today.Year == y,
			Selected: src.HasSelectedYear(y),
			Active:   active == y,
		}
		if !yield(cell) {
			return
		}
	}
}

// centuryCells shows the ten decades of the century plus one padding decade
// on each side.
func centuryCells(src Source, yield func(Cell) bool) {
	loc := src.Localizer()
	active, today := src.ActiveYear(), src.Today()
	first := picker.CenturyStart(active)
	for d := first - picker.DecadeStride; d <= first+picker.CenturyStride; d += picker.DecadeStride {
		selected := false
		for y := d; y < d+picker.DecadeStride && !selected; y++ {
			selected = src.HasSelectedYear(y)
		}
		cell := Cell{
			Kind:     KindDecade,
			Year:     d,
			Day:      1,
			Label:    loc.FormatYear(d) + "-" + loc.FormatYear(d+picker.DecadeStride-1),
			Adjacent: d < first || d >= first+picker.CenturyStride,
			Disabled: src.IsDisabledDecade(d),
			Today:    picker.DecadeStart(today.Year) == d,
			Selected: selected,
			Active:   picker.DecadeStart(active) == d,
		}
		if !yield(cell) {
			return
		}
	}
}
