package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pickerrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func withGridClock(t *testing.T, now time.Time) {
	t.Helper()
	original := gridClock
	gridClock = func() time.Time { return now }
	t.Cleanup(func() { gridClock = original })
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datepick.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestGridCommandPrintsMonth(t *testing.T) {
	withGridClock(t, time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))

	output, _, err := executeCommand(t, "grid", "--locale", "en-US", "-w")
	require.NoError(t, err)
	require.Contains(t, output, "March 2024\n")
	require.Contains(t, output, "  Wk Sun Mon Tue Wed Thu Fri Sat\n")
	require.Contains(t, output, "   9                       1   2\n")
	require.Contains(t, output, " 15*")
}

func TestGridCommandSelectsMonth(t *testing.T) {
	withGridClock(t, time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))

	output, _, err := executeCommand(t, "grid", "--locale", "en-US", "--year", "2025", "--month", "2", "--adjacent")
	require.NoError(t, err)
	require.Contains(t, output, "February 2025\n")
	require.Contains(t, output, "  26  27  28  29  30  31   1\n")
	require.NotContains(t, output, "*")

	_, _, err = executeCommand(t, "grid", "--month", "13")
	require.Error(t, err)
}

func TestGridCommandJSON(t *testing.T) {
	withGridClock(t, time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))

	output, _, err := executeCommand(t, "grid", "--locale", "de-DE", "--json", "-w")
	require.NoError(t, err)

	var payload gridJSONPayload
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.Equal(t, "März 2024", payload.Title)
	require.Len(t, payload.Rows, 6)
	require.Len(t, payload.Rows[0], 7)
	require.Equal(t, "2024-02-26", payload.Rows[0][0].Key)
	require.True(t, payload.Rows[0][0].Adjacent)
	require.Equal(t, "2024-W09", payload.Rows[0][0].Week)
	require.True(t, payload.Rows[2][4].Today)
}

func TestLocaleCommand(t *testing.T) {
	t.Parallel()

	output, _, err := executeCommand(t, "locale", "de-DE")
	require.NoError(t, err)
	require.Contains(t, output, "de-DE")
	require.Contains(t, output, "ltr")
	require.Contains(t, output, "Montag")
	require.Contains(t, output, "März")

	output, _, err = executeCommand(t, "locale", "ar-EG")
	require.NoError(t, err)
	require.Contains(t, output, "rtl")
	require.Contains(t, output, "EG")

	output, _, err = executeCommand(t, "locale", "en-AQ")
	require.NoError(t, err)
	require.Contains(t, output, "AQ (default week data)")
	require.Contains(t, output, "Monday")

	_, _, err = executeCommand(t, "locale", "not a tag!")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	output, _, err := executeCommand(t, "validate", "--mode", "dates", "2024-03-15,2024-03-01,2024-03-15")
	require.NoError(t, err)
	require.Equal(t, "2024-03-01,2024-03-15\n", output)

	output, _, err = executeCommand(t, "validate", "--locale", "de-DE", "--mode", "week", "2020-W53")
	require.NoError(t, err)
	require.Equal(t, "2020-W53\n", output)

	output, _, err = executeCommand(t, "validate", "--locale", "de-DE", "--mode", "week", "2021-W53")
	require.Error(t, err)
	require.Empty(t, output)

	_, _, err = executeCommand(t, "validate", "--mode", "date", "2024-02-30")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid date value")
	var keyErr *pickerrors.KeyError
	require.ErrorAs(t, err, &keyErr)

	_, _, err = executeCommand(t, "validate", "--mode", "date", "2024-03")
	require.ErrorContains(t, err, "looks like a month key")

	_, _, err = executeCommand(t, "validate", "--mode", "fortnight", "2024")
	var validationErr *pickerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateCommandDiff(t *testing.T) {
	t.Parallel()

	output, stderr, err := executeCommand(t, "validate", "--diff", "--mode", "years", "2021,2019,2021")
	require.NoError(t, err)
	require.Equal(t, "2019,2021\n", output)
	require.Equal(t, "- 2021\n  2019\n  2021\n", stderr)

	_, stderr, err = executeCommand(t, "validate", "--diff", "--mode", "year", "2019")
	require.NoError(t, err)
	require.Empty(t, stderr)
}

func TestValidateCommandUsesConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "locale: de-DE\nmode: months\nmin: \"2024-02-01\"\n")

	output, _, err := executeCommand(t, "validate", "--config", path, "2024-05,2024-03")
	require.NoError(t, err)
	require.Equal(t, "2024-03,2024-05\n", output)

	_, _, err = executeCommand(t, "validate", "--config", path, "2024-01")
	require.Error(t, err)

	broken := writeConfig(t, "locale: [de]\n")
	_, _, err = executeCommand(t, "validate", "--config", broken, "2024-01")
	var parseErr *pickerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestPickRequiresTerminal(t *testing.T) {
	original := uiIsTerminal
	uiIsTerminal = func() bool { return false }
	t.Cleanup(func() { uiIsTerminal = original })

	_, _, err := executeCommand(t, "pick", "--mode", "date")
	require.ErrorIs(t, err, errNotTerminal)
}
