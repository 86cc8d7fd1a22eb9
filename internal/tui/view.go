package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/datepick/internal/calkey"
	"github.com/alexisbeaulieu97/datepick/internal/grid"
	"github.com/alexisbeaulieu97/datepick/internal/locale"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

const (
	dayCellWidth  = 6
	pageCellWidth = 12
	weekColWidth  = 5
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	switch m.ctl.Scene() {
	case picker.SceneTime:
	case picker.SceneMonth:
		sections = append(sections, m.renderWeekdays(), m.renderGrid())
	default:
		sections = append(sections, m.renderGrid())
	}
	if m.ctl.IsTimeVisible() {
		sections = append(sections, m.renderTime())
	}
	sections = append(sections, m.renderStatus(), helpStyle.Render(m.help.View(m.keys)))

	return containerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	// Light the arrow of the last paging direction; RTL mirrors the pair.
	backLit, forwardLit := m.page.direction < 0, m.page.direction > 0
	if m.rtl() {
		backLit, forwardLit = forwardLit, backLit
	}
	title := titleStyle.Width(m.gridWidth() - 4).Render(grid.Title(m.ctl))
	return lipgloss.JoinHorizontal(lipgloss.Center, arrow("‹", backLit), " ", title, " ", arrow("›", forwardLit))
}

func arrow(glyph string, lit bool) string {
	if lit {
		return activeArrowStyle.Render(glyph)
	}
	return arrowStyle.Render(glyph)
}

func (m Model) renderWeekdays() string {
	names := grid.WeekdayHeader(m.ctl.Localizer(), locale.Narrow)
	parts := make([]string, 0, len(names)+1)
	for _, name := range names {
		parts = append(parts, headerStyle.Width(dayCellWidth).Render(name))
	}
	return m.joinRow(parts, headerStyle.Width(weekColWidth).Render("Wk"))
}

func (m Model) renderGrid() string {
	scene := m.ctl.Scene()
	weeks := m.weekNumbers && scene == picker.SceneMonth
	width := pageCellWidth
	if scene == picker.SceneMonth {
		width = dayCellWidth
	}

	var lines []string
	for _, row := range grid.Rows(m.ctl, grid.Options{WeekNumbers: weeks}) {
		parts := make([]string, 0, len(row))
		for _, cell := range row {
			parts = append(parts, renderCell(cell, width))
		}
		week := ""
		if weeks {
			week = weekColumnStyle.Width(weekColWidth).Render(m.ctl.Localizer().FormatWeekNumber(row[0].WeekNumber))
		}
		lines = append(lines, m.joinRow(parts, week))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// joinRow lays cells out in reading order with the week column on the
// leading edge.
func (m Model) joinRow(cells []string, week string) string {
	if m.rtl() {
		cells = slices.Clone(cells)
		slices.Reverse(cells)
	}
	if m.weekNumbers && m.ctl.Scene() == picker.SceneMonth {
		if m.rtl() {
			cells = append(cells, week)
		} else {
			cells = append([]string{week}, cells...)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderCell(cell grid.Cell, width int) string {
	label := cell.Label
	if cell.Selected {
		label += "*"
	}
	if cell.Active {
		label = "[" + label + "]"
	}
	return styleFor(cell).Width(width).Render(label)
}

func styleFor(cell grid.Cell) lipgloss.Style {
	switch {
	case cell.Disabled:
		return disabledStyle
	case cell.Selected:
		return selectedStyle
	case cell.InRange:
		return rangeStyle
	case cell.Today:
		return todayStyle
	case cell.Adjacent:
		return adjacentStyle
	case cell.Weekend:
		return weekendStyle
	default:
		return cellStyle
	}
}

func (m Model) renderTime() string {
	clock := calkey.TimeKey(m.ctl.ActiveHour(), m.ctl.ActiveMinute())
	return fmt.Sprintf("Time %s", timeStyle.Render(clock))
}

func (m Model) renderStatus() string {
	value := m.ctl.Value()
	if value == "" {
		value = "none"
	}
	if m.ctl.RangePending() {
		value += " …"
	}
	line := fmt.Sprintf("Mode %s · Value %s", m.ctl.Mode(), valueStyle.Render(value))
	if m.notified != "" {
		line += fmt.Sprintf(" · Last change %s", m.notified)
	}
	return statusStyle.Render(line)
}

func (m Model) rtl() bool {
	return m.ctl.Localizer().Direction() == locale.RTL
}

func (m Model) gridWidth() int {
	switch m.ctl.Scene() {
	case picker.SceneMonth:
		w := 7 * dayCellWidth
		if m.weekNumbers {
			w += weekColWidth
		}
		return w
	case picker.SceneTime:
		return 20
	default:
		return grid.Columns(m.ctl.Scene()) * pageCellWidth
	}
}
