package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datepick/internal/calkey"
	"github.com/alexisbeaulieu97/datepick/internal/locale"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
	pickerrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `locale: de-DE
mode: dates
value: "2024-03-15,2024-03-01"
show_week_numbers: true
debounce: 120ms
min: "2024-01-01"
max: "2024-12-31"
log:
  level: debug
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "de-DE", cfg.Locale)
				require.Equal(t, picker.ModeDates, cfg.PickerMode())
				require.True(t, cfg.ShowWeekNumbers)
				require.Equal(t, 120*time.Millisecond, cfg.Debounce)
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.HumanReadable, "unset keys keep their defaults")
			},
		},
		{
			name:     "mode names are case insensitive",
			contents: "locale: en-US\nmode: DateTime\nvalue: \"2024-03-15T09:30\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, picker.ModeDateTime, cfg.PickerMode())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: "locale: [en, US]\nmode: date\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *pickerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "unknown mode is rejected",
			contents: "locale: en-US\nmode: fortnight\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *pickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "mode", validationErr.Field)
				require.Contains(t, validationErr.Message, "selection_mode")
			},
		},
		{
			name:     "malformed locale is rejected",
			contents: "locale: \"not a tag!\"\nmode: date\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *pickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "locale", validationErr.Field)
			},
		},
		{
			name:     "debounce window is bounded",
			contents: "locale: en-US\nmode: date\ndebounce: 10s\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *pickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "debounce", validationErr.Field)
			},
		},
		{
			name:     "log level must be known",
			contents: "locale: en-US\nmode: date\nlog:\n  level: loud\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *pickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
			},
		},
		{
			name:     "bounds must be day keys",
			contents: "locale: en-US\nmode: date\nmin: \"2024-02-30\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *pickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "min", validationErr.Field)
			},
		},
		{
			name:     "bounds must be ordered",
			contents: "locale: en-US\nmode: date\nmin: \"2024-05-01\"\nmax: \"2024-04-01\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *pickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "max", validationErr.Field)
			},
		},
		{
			name:     "value must match the mode",
			contents: "locale: en-US\nmode: month\nvalue: \"2024-03-15\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *pickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "value", validationErr.Field)
				var keyErr *pickerrors.KeyError
				require.ErrorAs(t, err, &keyErr)
			},
		},
		{
			name:     "value must respect the bounds",
			contents: "locale: en-US\nmode: date\nmin: \"2024-01-01\"\nvalue: \"2023-12-31\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *pickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "value", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *pickerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, ValidateConfig(cfg))
	require.Equal(t, picker.ModeDate, cfg.PickerMode())

	earliest, latest, err := cfg.Bounds()
	require.NoError(t, err)
	require.Nil(t, earliest)
	require.Nil(t, latest)

	opts := cfg.LoggerOptions()
	require.Equal(t, "info", opts.Level)
	require.True(t, opts.HumanReadable)

	require.Error(t, ValidateConfig(nil))
}

func TestConfigHelpers(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Locale = "en-US"
	cfg.Direction = "rtl"
	cfg.Min = "2024-01-31"

	loc, err := cfg.Localizer()
	require.NoError(t, err)
	require.Equal(t, locale.RTL, loc.Direction())

	earliest, latest, err := cfg.Bounds()
	require.NoError(t, err)
	require.Equal(t, &calkey.Date{Year: 2024, Month: 0, Day: 31}, earliest)
	require.Nil(t, latest)

	cfg.Mode = "bogus"
	require.Equal(t, picker.ModeDate, cfg.PickerMode())
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 7, extractLine(parseFailure("yaml: line 7: did not find expected key")))
	require.Equal(t, 0, extractLine(parseFailure("no line here")))
}

type parseFailure string

func (p parseFailure) Error() string { return string(p) }

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
