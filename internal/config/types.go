package config

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/datepick/internal/calkey"
	"github.com/alexisbeaulieu97/datepick/internal/locale"
	"github.com/alexisbeaulieu97/datepick/internal/logger"
	"github.com/alexisbeaulieu97/datepick/internal/notify"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

// Config is the picker configuration document.
type Config struct {
	Locale          string        `yaml:"locale" validate:"required,locale_tag"`
	Direction       string        `yaml:"direction,omitempty" validate:"omitempty,oneof=ltr rtl"`
	Mode            string        `yaml:"mode" validate:"required,selection_mode"`
	Value           string        `yaml:"value,omitempty"`
	ShowWeekNumbers bool          `yaml:"show_week_numbers,omitempty"`
	Debounce        time.Duration `yaml:"debounce,omitempty" validate:"min=1ms,max=5s"`
	Min             string        `yaml:"min,omitempty" validate:"omitempty,day_key"`
	Max             string        `yaml:"max,omitempty" validate:"omitempty,day_key"`
	Log             Log           `yaml:"log,omitempty"`
}

// Log configures the diagnostic logger.
type Log struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Locale:   "en-US",
		Mode:     string(picker.ModeDate),
		Debounce: notify.DefaultDelay,
		Log: Log{
			Level:         "info",
			HumanReadable: true,
		},
	}
}

// PickerMode returns the configured selection mode, falling back to date.
func (c *Config) PickerMode() picker.Mode {
	mode, err := picker.ParseMode(c.Mode)
	if err != nil {
		return picker.ModeDate
	}
	return mode
}

// Localizer builds the locale facts for the configured tag and direction.
func (c *Config) Localizer() (*locale.Localizer, error) {
	var opts []locale.Option
	switch strings.ToLower(c.Direction) {
	case "rtl":
		opts = append(opts, locale.WithDirection(locale.RTL))
	case "ltr":
		opts = append(opts, locale.WithDirection(locale.LTR))
	}
	return locale.New(c.Locale, opts...)
}

// Bounds parses the optional min and max day keys.
func (c *Config) Bounds() (earliest, latest *calkey.Date, err error) {
	if earliest, err = parseBound(c.Min); err != nil {
		return nil, nil, err
	}
	if latest, err = parseBound(c.Max); err != nil {
		return nil, nil, err
	}
	return earliest, latest, nil
}

func parseBound(key string) (*calkey.Date, error) {
	if key == "" {
		return nil, nil
	}
	y, m, d, err := calkey.ParseDay(key)
	if err != nil {
		return nil, err
	}
	return &calkey.Date{Year: y, Month: m, Day: d}, nil
}

// LoggerOptions maps the log section onto logger options.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:         c.Log.Level,
		HumanReadable: c.Log.HumanReadable,
	}
}
