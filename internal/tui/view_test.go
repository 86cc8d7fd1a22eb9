package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datepick/internal/grid"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

func TestViewRendersMonthPage(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "en-US", picker.ModeDate, false)
	view := m.View()
	require.Contains(t, view, "March 2024")
	require.Contains(t, view, "[15]")
	require.Contains(t, view, "Mode date")
	require.Contains(t, view, "Value none")
	require.NotContains(t, view, "Wk")
	require.NotContains(t, view, "Time")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, ValueChangedMsg{Value: "2024-03-15"})
	view = m.View()
	require.Contains(t, view, "[15*]")
	require.Contains(t, view, "Value 2024-03-15")
	require.Contains(t, view, "Last change 2024-03-15")
}

func TestViewWeekColumn(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "de-DE", picker.ModeWeek, true)
	view := m.View()
	require.Contains(t, view, "Wk")
	require.Contains(t, view, "März 2024")

	lines := strings.Split(view, "\n")
	var weekRow string
	for _, line := range lines {
		if strings.Contains(line, "[15]") {
			weekRow = line
		}
	}
	require.NotEmpty(t, weekRow)
	require.Contains(t, weekRow, "11")
}

func TestViewOtherScenes(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "en-US", picker.ModeDate, false)
	m = press(t, m, runes("t"))
	require.Contains(t, m.View(), "[Mar]")

	m = press(t, m, runes("t"))
	require.Contains(t, m.View(), "2020 - 2029")
	require.Contains(t, m.View(), "[2024]")

	m = press(t, m, runes("t"))
	require.Contains(t, m.View(), "[2020-2029]")
}

func TestViewTimeLine(t *testing.T) {
	t.Parallel()

	tm := newTestModel(t, "en-US", picker.ModeTime, false)
	view := tm.View()
	require.Contains(t, view, "Time 10:20")
	require.Contains(t, view, "Value 10:20")

	dt := newTestModel(t, "en-US", picker.ModeDateTime, false)
	require.Contains(t, dt.View(), "Time 10:20")
	require.Contains(t, dt.View(), "March 2024")
}

func TestViewRangePending(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "en-US", picker.ModeDateRange, false)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Contains(t, m.View(), "Value 2024-03-15 …")
}

func TestStyleForPrecedence(t *testing.T) {
	t.Parallel()

	require.Equal(t, disabledStyle, styleFor(grid.Cell{Disabled: true, Selected: true}))
	require.Equal(t, selectedStyle, styleFor(grid.Cell{Selected: true, Today: true}))
	require.Equal(t, rangeStyle, styleFor(grid.Cell{InRange: true, Adjacent: true}))
	require.Equal(t, todayStyle, styleFor(grid.Cell{Today: true, Weekend: true}))
	require.Equal(t, adjacentStyle, styleFor(grid.Cell{Adjacent: true, Weekend: true}))
	require.Equal(t, weekendStyle, styleFor(grid.Cell{Weekend: true}))
	require.Equal(t, cellStyle, styleFor(grid.Cell{}))
}
