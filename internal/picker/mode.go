package picker

import (
	"fmt"
	"strings"
)

// Mode is the kind of value the picker collects.
type Mode string

const (
	ModeDate      Mode = "date"
	ModeDates     Mode = "dates"
	ModeTime      Mode = "time"
	ModeDateTime  Mode = "dateTime"
	ModeDateRange Mode = "dateRange"
	ModeWeek      Mode = "week"
	ModeWeeks     Mode = "weeks"
	ModeMonth     Mode = "month"
	ModeMonths    Mode = "months"
	ModeYear      Mode = "year"
	ModeYears     Mode = "years"
)

// Modes lists every selection mode in display order.
var Modes = []Mode{
	ModeDate, ModeDates, ModeDateTime, ModeDateRange, ModeTime,
	ModeWeek, ModeWeeks, ModeMonth, ModeMonths, ModeYear, ModeYears,
}

// ParseMode resolves a mode name case-insensitively ("datetime" and
// "dateTime" are the same mode).
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown selection mode %q", s)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	for _, candidate := range Modes {
		if candidate == m {
			return true
		}
	}
	return false
}

// Plural modes toggle membership instead of replacing the selection.
func (m Mode) Plural() bool {
	switch m {
	case ModeDates, ModeWeeks, ModeMonths, ModeYears:
		return true
	default:
		return false
	}
}

// EntryScene is the scene shown when the mode is selected.
func (m Mode) EntryScene() Scene {
	switch m {
	case ModeYear, ModeYears:
		return SceneDecade
	case ModeMonth, ModeMonths:
		return SceneYear
	case ModeTime:
		return SceneTime
	default:
		return SceneMonth
	}
}

// Next cycles through Modes, wrapping at the end.
func (m Mode) Next() Mode {
	for i, candidate := range Modes {
		if candidate == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// Scene is the granularity of the visible grid.
type Scene string

const (
	SceneMonth   Scene = "month"
	SceneYear    Scene = "year"
	SceneDecade  Scene = "decade"
	SceneCentury Scene = "century"
	SceneTime    Scene = "time"
)

func (s Scene) String() string { return string(s) }

// zoomOut maps a scene to the coarser one reached through the title.
var zoomOut = map[Scene]Scene{
	SceneMonth:  SceneYear,
	SceneYear:   SceneDecade,
	SceneDecade: SceneCentury,
}

const (
	// DecadeStride is how far prev/next moves on a decade page.
	DecadeStride = 10
	// CenturyStride is how far prev/next moves on a century page.
	CenturyStride = 100
)
