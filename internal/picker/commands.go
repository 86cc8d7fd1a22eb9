package picker

import (
	"github.com/alexisbeaulieu97/datepick/internal/calkey"
)

// SetSelectionMode switches modes. The selection is cleared because key
// formats differ between modes, and the scene jumps to the mode's entry scene.
func (c *Controller) SetSelectionMode(mode Mode) {
	if mode == c.mode || !mode.Valid() {
		return
	}
	c.log.Debug("selection mode changed", "from", string(c.mode), "to", string(mode))
	c.mode = mode
	c.selected.reset()
	c.rangeOpen = false
	c.scene = mode.EntryScene()
	c.changed("mode")
}

// ClickTitle zooms out one level: month to year, year to decade, decade to
// century. It does nothing from the century and time scenes.
func (c *Controller) ClickTitle() {
	next, ok := zoomOut[c.scene]
	if !ok {
		return
	}
	c.setScene(next)
	c.changed("title")
}

// ClickPrev pages backwards at the granularity of the current scene.
func (c *Controller) ClickPrev() { c.page(-1) }

// ClickNext pages forwards at the granularity of the current scene.
func (c *Controller) ClickNext() { c.page(+1) }

func (c *Controller) page(direction int) {
	switch c.scene {
	case SceneMonth:
		c.setActiveMonthIndex(c.activeYear*12 + c.activeMonth + direction)
	case SceneYear:
		c.activeYear += direction
		c.clampCursor()
	case SceneDecade:
		c.activeYear += direction * DecadeStride
		c.clampCursor()
	case SceneCentury:
		c.activeYear += direction * CenturyStride
		c.clampCursor()
	default:
		return
	}
	if c.onNavigate != nil {
		c.onNavigate(direction)
	}
	c.changed("page")
}

// ClickDay applies a day cell click. It is only reachable from the month scene.
func (c *Controller) ClickDay(y, m, d int) {
	c.requireScene(SceneMonth, "ClickDay")
	date := calkey.NewDate(y, m, d)
	if c.IsDisabledDay(date.Year, date.Month, date.Day) {
		c.log.Debug("disabled day ignored", "day", date.Key())
		return
	}

	switch c.mode {
	case ModeDate, ModeDateTime:
		c.selected.toggle(date.Key(), true)
	case ModeDates:
		c.selected.toggle(date.Key(), false)
	case ModeWeek:
		c.selected.toggle(c.loc.WeekKey(date), true)
	case ModeWeeks:
		c.selected.toggle(c.loc.WeekKey(date), false)
	case ModeDateRange:
		c.extendRange(date.Key())
	default:
		return
	}
	c.changed("day")
}

// extendRange starts a new range or closes the open one.
func (c *Controller) extendRange(key string) {
	if !c.rangeOpen {
		c.selected.toggle(key, true)
		c.rangeOpen = true
		return
	}
	c.selected[key] = struct{}{}
	c.rangeOpen = false
}

// ClickMonth selects a month in month modes and drills down to the month
// page otherwise. It is only reachable from the year scene.
func (c *Controller) ClickMonth(y, m int) {
	c.requireScene(SceneYear, "ClickMonth")
	if c.IsDisabledMonth(y, m) {
		c.log.Debug("disabled month ignored", "month", calkey.MonthKey(y, m))
		return
	}

	switch c.mode {
	case ModeMonth:
		c.selected.toggle(calkey.MonthKey(y, m), true)
	case ModeMonths:
		c.selected.toggle(calkey.MonthKey(y, m), false)
	default:
		c.setActiveMonthIndex(y*12 + m)
		c.setScene(SceneMonth)
	}
	c.changed("month")
}

// ClickYear selects a year in year modes and drills down to the year page
// otherwise. It is only reachable from the decade scene.
func (c *Controller) ClickYear(y int) {
	c.requireScene(SceneDecade, "ClickYear")
	if c.IsDisabledYear(y) {
		c.log.Debug("disabled year ignored", "year", calkey.YearKey(y))
		return
	}

	switch c.mode {
	case ModeYear:
		c.selected.toggle(calkey.YearKey(y), true)
	case ModeYears:
		c.selected.toggle(calkey.YearKey(y), false)
	default:
		c.activeYear = y
		c.clampCursor()
		c.setScene(SceneYear)
	}
	c.changed("year")
}

// ClickDecade drills down from the century page to the decade starting at
// first. It is only reachable from the century scene.
func (c *Controller) ClickDecade(first int) {
	c.requireScene(SceneCentury, "ClickDecade")
	if c.IsDisabledDecade(first) {
		return
	}
	c.activeYear = first
	c.clampCursor()
	c.setScene(SceneDecade)
	c.changed("decade")
}

// SetActiveHour moves the hour cursor. Out of range input wraps.
func (c *Controller) SetActiveHour(h int) {
	c.activeHour = calkey.Mod(h, 24)
	c.changed("hour")
}

// SetActiveMinute moves the minute cursor. Out of range input wraps.
func (c *Controller) SetActiveMinute(m int) {
	c.activeMinute = calkey.Mod(m, 60)
	c.changed("minute")
}

func (c *Controller) setScene(next Scene) {
	if next == c.scene {
		return
	}
	c.log.Debug("scene changed", "from", c.scene.String(), "to", next.String())
	c.scene = next
}

// setActiveMonthIndex sets the cursor from year*12+month, rolling the year
// with floor division so negative offsets work. The index is held inside the
// years a key can encode.
func (c *Controller) setActiveMonthIndex(index int) {
	index = min(max(index, calkey.MinYear*12), calkey.MaxYear*12+11)
	c.activeYear = calkey.FloorDiv(index, 12)
	c.activeMonth = calkey.Mod(index, 12)
	c.clampCursor()
}

// clampCursor keeps the cursor year inside calkey.MinYear..calkey.MaxYear and
// the cursor day inside the cursor month (31 March -> 30 April).
func (c *Controller) clampCursor() {
	c.activeYear = min(max(c.activeYear, calkey.MinYear), calkey.MaxYear)
	if days := calkey.DaysIn(c.activeYear, c.activeMonth); c.activeDay > days {
		c.activeDay = days
	}
	if c.activeDay < 1 {
		c.activeDay = 1
	}
}
