package picker

import (
	"github.com/alexisbeaulieu97/datepick/internal/calkey"
)

// Move shifts the cursor by delta units of the current scene: days on a month
// page, months on a year page, years on a decade page, decades on a century
// page and minutes on the time page. The visible page follows the cursor.
func (c *Controller) Move(delta int) {
	if delta == 0 {
		return
	}
	switch c.scene {
	case SceneMonth:
		c.setActiveDate(c.ActiveDate().AddDays(delta))
	case SceneYear:
		c.setActiveMonthIndex(c.activeYear*12 + c.activeMonth + delta)
	case SceneDecade:
		c.activeYear += delta
		c.clampCursor()
	case SceneCentury:
		c.activeYear += delta * DecadeStride
		c.clampCursor()
	case SceneTime:
		total := calkey.Mod(c.activeHour*60+c.activeMinute+delta, 24*60)
		c.activeHour, c.activeMinute = total/60, total%60
	}
	c.changed("move")
}

// Activate clicks the cell under the cursor.
func (c *Controller) Activate() {
	switch c.scene {
	case SceneMonth:
		c.ClickDay(c.activeYear, c.activeMonth, c.activeDay)
	case SceneYear:
		c.ClickMonth(c.activeYear, c.activeMonth)
	case SceneDecade:
		c.ClickYear(c.activeYear)
	case SceneCentury:
		c.ClickDecade(DecadeStart(c.activeYear))
	}
}

// GoToToday moves the cursor to the clock's current day without touching
// the selection or the scene.
func (c *Controller) GoToToday() {
	c.setActiveDate(c.Today())
	c.changed("today")
}

var (
	firstKeyDate = calkey.Date{Year: calkey.MinYear, Month: 0, Day: 1}
	lastKeyDate  = calkey.Date{Year: calkey.MaxYear, Month: 11, Day: 31}
)

func (c *Controller) setActiveDate(d calkey.Date) {
	switch {
	case d.Compare(firstKeyDate) < 0:
		d = firstKeyDate
	case d.Compare(lastKeyDate) > 0:
		d = lastKeyDate
	}
	c.activeYear, c.activeMonth, c.activeDay = d.Year, d.Month, d.Day
}

// DecadeStart returns the first year of the decade holding year.
func DecadeStart(year int) int {
	return calkey.FloorDiv(year, DecadeStride) * DecadeStride
}

// CenturyStart returns the first year of the century holding year.
func CenturyStart(year int) int {
	return calkey.FloorDiv(year, CenturyStride) * CenturyStride
}

// ShowMonth moves the cursor to month m of year y, keeping the cursor day
// where the month allows it. The scene is left alone.
func (c *Controller) ShowMonth(y, m int) {
	c.setActiveMonthIndex(y*12 + m)
	c.changed("show")
}
