// Package locale exposes the calendar facts a picker needs from a locale:
// first day of week, weekend days, week numbering, localized names and text
// direction. A Localizer is an immutable snapshot; build a new one to switch
// locales.
package locale

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/he"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/alexisbeaulieu97/datepick/internal/calkey"
)

// Direction is the text direction of the locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// NameFormat selects the width of a month or weekday name.
type NameFormat string

const (
	Long   NameFormat = "long"
	Short  NameFormat = "short"
	Narrow NameFormat = "narrow"
)

// WeekNumberFunc computes the week number of a day.
type WeekNumberFunc func(d calkey.Date) int

// Option customises a Localizer at construction time.
type Option func(*Localizer)

// WithDirection overrides the direction derived from the locale script.
func WithDirection(dir Direction) Option {
	return func(l *Localizer) {
		if dir == LTR || dir == RTL {
			l.direction = dir
		}
	}
}

// WithWeekNumberFunc replaces the week number shown next to grid rows. Week
// keys keep the built-in week-year numbering so stored values stay parseable.
func WithWeekNumberFunc(fn WeekNumberFunc) Option {
	return func(l *Localizer) {
		l.weekFn = fn
	}
}

// Localizer answers calendar questions for a single locale.
type Localizer struct {
	tag       language.Tag
	region    string
	direction Direction
	firstDay  int
	weekend   []int
	mapped    bool
	names     locales.Translator
	printer   *message.Printer
	caser     cases.Caser
	weekFn    WeekNumberFunc
}

var rtlScripts = map[string]struct{}{
	"Arab": {}, "Hebr": {}, "Thaa": {}, "Syrc": {}, "Nkoo": {}, "Adlm": {}, "Rohg": {},
}

var translators = sync.OnceValue(func() *ut.UniversalTranslator {
	fallback := en.New()
	return ut.New(fallback,
		fallback, en_GB.New(), de.New(), fr.New(), es.New(), it.New(), nl.New(),
		pt_BR.New(), pl.New(), sv.New(), ru.New(), ja.New(), zh.New(), ar.New(), he.New(),
	)
})

// New builds a Localizer for a BCP 47 tag such as "en-US" or "de".
func New(tag string, opts ...Option) (*Localizer, error) {
	parsed, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", tag, err)
	}

	region := ""
	if r, conf := parsed.Region(); conf != language.No {
		region = r.String()
	}

	firstDay, mapped := lookupFirstDay(region)
	weekend, _ := lookupWeekend(region)

	l := &Localizer{
		tag:       parsed,
		region:    region,
		direction: scriptDirection(parsed),
		firstDay:  firstDay,
		weekend:   weekend,
		mapped:    mapped,
		names:     namesFor(parsed, region),
		printer:   message.NewPrinter(parsed),
		caser:     cases.Title(parsed),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// MustNew is New for tags known to be valid.
func MustNew(tag string, opts ...Option) *Localizer {
	l, err := New(tag, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

func scriptDirection(tag language.Tag) Direction {
	script, _ := tag.Script()
	if _, ok := rtlScripts[script.String()]; ok {
		return RTL
	}
	return LTR
}

func namesFor(tag language.Tag, region string) locales.Translator {
	base, _ := tag.Base()
	candidates := []string{base.String()}
	if region != "" {
		candidates = append([]string{base.String() + "_" + region}, candidates...)
	}
	trans, _ := translators().FindTranslator(candidates...)
	return trans
}

// Tag returns the canonical locale tag.
func (l *Localizer) Tag() string { return l.tag.String() }

// Region returns the resolved two-letter region, or "" when none could be inferred.
func (l *Localizer) Region() string { return l.region }

// Direction reports the text direction.
func (l *Localizer) Direction() Direction { return l.direction }

// FirstDayOfWeek returns 0 (Sunday) through 6. Unmapped regions start on Monday.
func (l *Localizer) FirstDayOfWeek() int { return l.firstDay }

// RegionMapped reports whether the region appears in the week tables.
func (l *Localizer) RegionMapped() bool { return l.mapped }

// WeekendDays returns the weekend weekdays in ascending order.
func (l *Localizer) WeekendDays() []int {
	return append([]int(nil), l.weekend...)
}

// IsWeekend reports whether weekday (0..6) is a weekend day.
func (l *Localizer) IsWeekend(weekday int) bool {
	for _, d := range l.weekend {
		if d == weekday {
			return true
		}
	}
	return false
}

// Weekdays returns the seven weekday indexes in display order.
func (l *Localizer) Weekdays() []int {
	days := make([]int, 7)
	for i := range days {
		days[i] = (l.firstDay + i) % 7
	}
	return days
}

// WeekNumber returns the week of year for d.
func (l *Localizer) WeekNumber(d calkey.Date) int {
	if l.weekFn != nil {
		return l.weekFn(d)
	}
	_, week := weekOf(d, l.firstDay)
	return week
}

// WeekKey returns the "YYYY-Www" key of the week containing d. The year is
// the week-year, which differs from d.Year around New Year. A custom week
// number function does not apply here.
func (l *Localizer) WeekKey(d calkey.Date) string {
	return calkey.WeekKey(weekOf(d, l.firstDay))
}

// WeekStart returns the first day of the week holding d.
func (l *Localizer) WeekStart(d calkey.Date) calkey.Date {
	return d.AddDays(-calkey.Mod(d.Weekday()-l.firstDay, 7))
}

// FormatDay renders a day-of-month with locale numerals.
func (l *Localizer) FormatDay(n int) string { return l.formatInt(n) }

// FormatWeekNumber renders a week number with locale numerals.
func (l *Localizer) FormatWeekNumber(n int) string { return l.formatInt(n) }

// FormatYear renders a year without grouping separators.
func (l *Localizer) FormatYear(n int) string { return l.formatInt(n) }

func (l *Localizer) formatInt(n int) string {
	return l.printer.Sprint(number.Decimal(n, number.NoSeparator()))
}

// MonthName returns the name of the 0-based month.
func (l *Localizer) MonthName(month int, format NameFormat) string {
	m := time.Month(calkey.Mod(month, 12) + 1)
	switch format {
	case Short:
		return l.names.MonthAbbreviated(m)
	case Narrow:
		return l.names.MonthNarrow(m)
	default:
		return l.names.MonthWide(m)
	}
}

// WeekdayName returns the name of weekday (0 = Sunday).
func (l *Localizer) WeekdayName(weekday int, format NameFormat) string {
	d := time.Weekday(calkey.Mod(weekday, 7))
	switch format {
	case Short:
		return l.names.WeekdayAbbreviated(d)
	case Narrow:
		return l.names.WeekdayNarrow(d)
	default:
		return l.names.WeekdayWide(d)
	}
}

// Title capitalises s using the locale's casing rules.
func (l *Localizer) Title(s string) string {
	return l.caser.String(s)
}
