package picker

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/datepick/internal/calkey"
	pickerrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// Value derives the external value string:
//   - dateTime: "<first day>T<HH:MM>", or "" with no day selected
//   - time: "<HH:MM>"
//   - otherwise: the selected keys, sorted and comma-joined
func (c *Controller) Value() string {
	switch c.mode {
	case ModeTime:
		return calkey.TimeKey(c.activeHour, c.activeMinute)
	case ModeDateTime:
		keys := c.selected.sorted()
		if len(keys) == 0 {
			return ""
		}
		return keys[0] + "T" + calkey.TimeKey(c.activeHour, c.activeMinute)
	default:
		return c.selected.join()
	}
}

// parsedValue is a fully validated SetValue input, applied in one step.
type parsedValue struct {
	keys      []string
	cursor    *calkey.Date
	hour      int
	minute    int
	setTime   bool
}

// SetValue replaces the selection with a value in the format Value produces
// for the current mode. Malformed input is rejected with a *errors.KeyError
// and leaves the controller untouched; it is never clamped or partially
// applied. The cursor moves to the earliest selected unit. An empty string
// clears the selection. In dateRange mode a single day is a closed one-day
// range, the same state two clicks on that day leave behind.
func (c *Controller) SetValue(value string) error {
	parsed, err := c.parseValue(strings.TrimSpace(value))
	if err != nil {
		c.log.Debug("value rejected", "input", value, "mode", string(c.mode), "error", err.Error())
		return err
	}

	c.selected.reset()
	for _, k := range parsed.keys {
		c.selected[k] = struct{}{}
	}
	c.rangeOpen = false
	if parsed.cursor != nil {
		c.setActiveDate(*parsed.cursor)
	}
	if parsed.setTime {
		c.activeHour, c.activeMinute = parsed.hour, parsed.minute
	}
	c.changed("set-value")
	return nil
}

func (c *Controller) parseValue(value string) (parsedValue, error) {
	var out parsedValue
	if value == "" {
		if c.mode == ModeTime {
			return out, pickerrors.NewKeyError(calkey.KindTime.String(), value, "time value cannot be empty")
		}
		return out, nil
	}

	switch c.mode {
	case ModeTime:
		h, m, err := calkey.ParseTime(value)
		if err != nil {
			return out, err
		}
		out.hour, out.minute, out.setTime = h, m, true
		return out, nil

	case ModeDateTime:
		day, clock, ok := strings.Cut(value, "T")
		if !ok {
			return out, pickerrors.NewKeyError("dateTime", value, "expected YYYY-MM-DDTHH:MM")
		}
		h, m, err := calkey.ParseTime(clock)
		if err != nil {
			return out, err
		}
		if err := c.collect(&out, []string{day}, calkey.KindDay); err != nil {
			return out, err
		}
		out.hour, out.minute, out.setTime = h, m, true
		return out, nil
	}

	kind := c.keyKind()
	parts := strings.Split(value, ",")
	switch {
	case c.mode == ModeDateRange && len(parts) > 2:
		return out, pickerrors.NewKeyError(kind.String(), value, "a range has at most two days")
	case c.mode != ModeDateRange && !c.mode.Plural() && len(parts) > 1:
		return out, pickerrors.NewKeyError(kind.String(), value, fmt.Sprintf("mode %s accepts a single key", c.mode))
	}
	if err := c.collect(&out, parts, kind); err != nil {
		return out, err
	}
	return out, nil
}

// keyKind is the key format stored by the current mode.
func (c *Controller) keyKind() calkey.Kind {
	switch c.mode {
	case ModeWeek, ModeWeeks:
		return calkey.KindWeek
	case ModeMonth, ModeMonths:
		return calkey.KindMonth
	case ModeYear, ModeYears:
		return calkey.KindYear
	default:
		return calkey.KindDay
	}
}

// collect validates every part as a key of kind, canonicalises it, and
// points the cursor at the earliest one.
func (c *Controller) collect(out *parsedValue, parts []string, kind calkey.Kind) error {
	seen := make(map[string]struct{}, len(parts))
	for _, raw := range parts {
		part := strings.TrimSpace(raw)
		if got := calkey.Detect(part); got != kind && got != calkey.KindUnknown {
			return pickerrors.NewKeyError(kind.String(), part, fmt.Sprintf("looks like a %s key, mode %s stores %s keys", got, c.mode, kind))
		}
		key, first, err := c.canonical(part, kind)
		if err != nil {
			return err
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.keys = append(out.keys, key)
		if out.cursor == nil || first.Compare(*out.cursor) < 0 {
			f := first
			out.cursor = &f
		}
	}
	return nil
}

// canonical parses one key and returns it with the first day it covers.
func (c *Controller) canonical(part string, kind calkey.Kind) (string, calkey.Date, error) {
	switch kind {
	case calkey.KindDay:
		y, m, d, err := calkey.ParseDay(part)
		if err != nil {
			return "", calkey.Date{}, err
		}
		if c.IsDisabledDay(y, m, d) {
			return "", calkey.Date{}, pickerrors.NewKeyError(kind.String(), part, "outside the allowed range")
		}
		return calkey.DayKey(y, m, d), calkey.Date{Year: y, Month: m, Day: d}, nil

	case calkey.KindWeek:
		y, w, err := calkey.ParseWeek(part)
		if err != nil {
			return "", calkey.Date{}, err
		}
		start := c.loc.WeekStart(calkey.Date{Year: y, Month: 0, Day: 4}).AddDays(7 * (w - 1))
		if c.loc.WeekKey(start) != part {
			return "", calkey.Date{}, pickerrors.NewKeyError(kind.String(), part, fmt.Sprintf("week-year %d has no week %d", y, w))
		}
		if c.outside(start, start.AddDays(6)) {
			return "", calkey.Date{}, pickerrors.NewKeyError(kind.String(), part, "outside the allowed range")
		}
		return part, start, nil

	case calkey.KindMonth:
		y, m, err := calkey.ParseMonth(part)
		if err != nil {
			return "", calkey.Date{}, err
		}
		if c.IsDisabledMonth(y, m) {
			return "", calkey.Date{}, pickerrors.NewKeyError(kind.String(), part, "outside the allowed range")
		}
		return calkey.MonthKey(y, m), calkey.Date{Year: y, Month: m, Day: 1}, nil

	default:
		y, err := calkey.ParseYear(part)
		if err != nil {
			return "", calkey.Date{}, err
		}
		if c.IsDisabledYear(y) {
			return "", calkey.Date{}, pickerrors.NewKeyError(kind.String(), part, "outside the allowed range")
		}
		return calkey.YearKey(y), calkey.Date{Year: y, Month: 0, Day: 1}, nil
	}
}
