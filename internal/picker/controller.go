// Package picker holds the date picker state machine: the visible scene, the
// navigation cursor, the selection mode and the selected keys. It knows
// nothing about rendering; a renderer reads state through the query methods,
// calls commands in response to input, and redraws when told to.
//
// A Controller is owned by a single widget and must be driven from one
// goroutine. Only the debounced change notification runs elsewhere, and it
// receives a value captured at the time of the mutation.
package picker

import (
	"time"

	"github.com/alexisbeaulieu97/datepick/internal/calkey"
	"github.com/alexisbeaulieu97/datepick/internal/locale"
	"github.com/alexisbeaulieu97/datepick/internal/logger"
	"github.com/alexisbeaulieu97/datepick/internal/notify"
	pickerrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// Option customises a Controller.
type Option func(*settings)

type settings struct {
	log        *logger.Logger
	clock      func() time.Time
	min, max   *calkey.Date
	onChange   func(string)
	delay      time.Duration
	scheduler  notify.Scheduler
	onRedraw   func()
	onNavigate func(direction int)
}

// WithLogger sets the logger used for state transition traces. Without it
// the controller logs nothing.
func WithLogger(l *logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the source of "now" used for the initial cursor and
// for today markers.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithBounds restricts selectable days to [earliest, latest]. Either may be nil.
func WithBounds(earliest, latest *calkey.Date) Option {
	return func(s *settings) {
		s.min, s.max = earliest, latest
	}
}

// WithOnChange registers the debounced value listener.
func WithOnChange(fn func(value string)) Option {
	return func(s *settings) { s.onChange = fn }
}

// WithDebounce sets the notification window.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) { s.delay = d }
}

// WithScheduler replaces the timer source of the change notification.
func WithScheduler(sched notify.Scheduler) Option {
	return func(s *settings) { s.scheduler = sched }
}

// WithOnRedraw registers a callback invoked synchronously after every
// mutating command.
func WithOnRedraw(fn func()) Option {
	return func(s *settings) { s.onRedraw = fn }
}

// WithOnNavigate registers a callback invoked after prev/next paging with
// the direction (-1 or +1). Renderers use it to start a page animation; the
// state is already updated when it runs.
func WithOnNavigate(fn func(direction int)) Option {
	return func(s *settings) { s.onNavigate = fn }
}

// Controller is the picker state machine.
type Controller struct {
	mode  Mode
	scene Scene
	loc   *locale.Localizer

	activeYear   int
	activeMonth  int
	activeDay    int
	activeHour   int
	activeMinute int

	selected  selection
	rangeOpen bool

	min, max *calkey.Date
	clock    func() time.Time

	log        *logger.Logger
	notifier   *notify.Debouncer
	onRedraw   func()
	onNavigate func(direction int)
}

// New creates a controller in the given mode with the cursor on the current
// date and time. An invalid mode falls back to ModeDate.
func New(mode Mode, loc *locale.Localizer, opts ...Option) *Controller {
	cfg := settings{clock: time.Now, log: logger.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !mode.Valid() {
		mode = ModeDate
	}
	if loc == nil {
		loc = locale.MustNew("en-US")
	}

	now := cfg.clock()
	c := &Controller{
		mode:         mode,
		scene:        mode.EntryScene(),
		loc:          loc,
		activeYear:   now.Year(),
		activeMonth:  int(now.Month()) - 1,
		activeDay:    now.Day(),
		activeHour:   now.Hour(),
		activeMinute: now.Minute(),
		selected:     make(selection),
		min:          cfg.min,
		max:          cfg.max,
		clock:        cfg.clock,
		log:          cfg.log,
		onRedraw:     cfg.onRedraw,
		onNavigate:   cfg.onNavigate,
	}
	if cfg.onChange != nil {
		var debounceOpts []notify.Option
		if cfg.scheduler != nil {
			debounceOpts = append(debounceOpts, notify.WithScheduler(cfg.scheduler))
		}
		c.notifier = notify.New(cfg.delay, cfg.onChange, debounceOpts...)
	}
	c.log.Debug("picker created", "mode", string(mode), "scene", c.scene.String(), "locale", loc.Tag())
	return c
}

// Close drops any pending change notification.
func (c *Controller) Close() {
	if c.notifier != nil {
		c.notifier.Stop()
	}
}

// Flush delivers a pending change notification immediately.
func (c *Controller) Flush() {
	if c.notifier != nil {
		c.notifier.Flush()
	}
}

// Localizer returns the locale facts the controller was built with.
func (c *Controller) Localizer() *locale.Localizer { return c.loc }

// Mode returns the selection mode.
func (c *Controller) Mode() Mode { return c.mode }

// Scene returns the visible scene.
func (c *Controller) Scene() Scene { return c.scene }

// IsTimeVisible reports whether hour and minute controls are shown.
func (c *Controller) IsTimeVisible() bool {
	return c.mode == ModeTime || c.mode == ModeDateTime
}

// ActiveYear returns the cursor year.
func (c *Controller) ActiveYear() int { return c.activeYear }

// ActiveMonth returns the 0-based cursor month.
func (c *Controller) ActiveMonth() int { return c.activeMonth }

// ActiveDay returns the cursor day of month.
func (c *Controller) ActiveDay() int { return c.activeDay }

// ActiveHour returns the cursor hour (0..23).
func (c *Controller) ActiveHour() int { return c.activeHour }

// ActiveMinute returns the cursor minute (0..59).
func (c *Controller) ActiveMinute() int { return c.activeMinute }

// ActiveDate returns the cursor as a calendar day.
func (c *Controller) ActiveDate() calkey.Date {
	return calkey.Date{Year: c.activeYear, Month: c.activeMonth, Day: c.activeDay}
}

// Today returns the clock's current day.
func (c *Controller) Today() calkey.Date {
	return calkey.DateOf(c.clock())
}

// Selection returns the selected keys in sorted order.
func (c *Controller) Selection() []string {
	return c.selected.sorted()
}

// HasSelectedYear reports whether year y is selected.
func (c *Controller) HasSelectedYear(y int) bool {
	return c.selected.has(calkey.YearKey(y))
}

// HasSelectedMonth reports whether the 0-based month m of year y is selected.
func (c *Controller) HasSelectedMonth(y, m int) bool {
	return c.selected.has(calkey.MonthKey(y, m))
}

// HasSelectedDay reports whether a day is selected. In week modes a day
// counts as selected when its week is.
func (c *Controller) HasSelectedDay(y, m, d int) bool {
	date := calkey.NewDate(y, m, d)
	if c.mode == ModeWeek || c.mode == ModeWeeks {
		return c.selected.has(c.loc.WeekKey(date))
	}
	return c.selected.has(date.Key())
}

// HasSelectedWeek reports whether the week key is selected.
func (c *Controller) HasSelectedWeek(key string) bool {
	return c.selected.has(key)
}

// InSelectedRange reports whether a day lies between the two ends of a
// completed dateRange selection, ends included. A one-day range holds a
// single key.
func (c *Controller) InSelectedRange(y, m, d int) bool {
	if c.mode != ModeDateRange || c.rangeOpen || len(c.selected) == 0 {
		return false
	}
	keys := c.selected.sorted()
	key := calkey.NewDate(y, m, d).Key()
	return keys[0] <= key && key <= keys[len(keys)-1]
}

// RangePending reports whether a dateRange start is waiting for its end.
func (c *Controller) RangePending() bool {
	return c.mode == ModeDateRange && c.rangeOpen
}

// IsToday reports whether the day is the clock's current day.
func (c *Controller) IsToday(y, m, d int) bool {
	return calkey.NewDate(y, m, d) == c.Today()
}

// IsDisabledDay reports whether a day falls outside the configured bounds.
func (c *Controller) IsDisabledDay(y, m, d int) bool {
	date := calkey.NewDate(y, m, d)
	return c.outside(date, date)
}

// IsDisabledMonth reports whether the whole month falls outside the bounds.
func (c *Controller) IsDisabledMonth(y, m int) bool {
	first := calkey.NewDate(y, m, 1)
	last := calkey.NewDate(y, m, calkey.DaysIn(first.Year, first.Month))
	return c.outside(first, last)
}

// IsDisabledYear reports whether the whole year falls outside the bounds.
func (c *Controller) IsDisabledYear(y int) bool {
	return c.outside(calkey.Date{Year: y, Month: 0, Day: 1}, calkey.Date{Year: y, Month: 11, Day: 31})
}

// IsDisabledDecade reports whether all ten years of a decade fall outside the bounds.
func (c *Controller) IsDisabledDecade(first int) bool {
	return c.outside(calkey.Date{Year: first, Month: 0, Day: 1}, calkey.Date{Year: first + 9, Month: 11, Day: 31})
}

// outside reports whether [from, to] has no overlap with the bounds or with
// the years a key can encode.
func (c *Controller) outside(from, to calkey.Date) bool {
	if to.Year < calkey.MinYear || from.Year > calkey.MaxYear {
		return true
	}
	if c.min != nil && to.Compare(*c.min) < 0 {
		return true
	}
	if c.max != nil && from.Compare(*c.max) > 0 {
		return true
	}
	return false
}

// requireScene panics with a ContractError when a cell command arrives from
// a scene that never renders those cells.
func (c *Controller) requireScene(want Scene, op string) {
	if c.scene != want {
		panic(pickerrors.NewContractError(op, c.scene.String()))
	}
}

// changed runs after every mutation: redraw now, notify later.
func (c *Controller) changed(reason string) {
	value := c.Value()
	c.log.Debug("picker state changed", "reason", reason, "scene", c.scene.String(), "value", value)
	if c.onRedraw != nil {
		c.onRedraw()
	}
	if c.notifier != nil {
		c.notifier.Trigger(value)
	}
}
