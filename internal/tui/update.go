package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datepick/internal/grid"
	"github.com/alexisbeaulieu97/datepick/internal/locale"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

// Update handles Bubbletea messages and drives the controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case ValueChangedMsg:
		m.notified = msg.Value
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctl := m.ctl
	m.page.direction = 0

	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.left):
		m.moveHorizontal(-1)
	case key.Matches(msg, m.keys.right):
		m.moveHorizontal(1)
	case key.Matches(msg, m.keys.up):
		m.moveVertical(-1)
	case key.Matches(msg, m.keys.down):
		m.moveVertical(1)
	case key.Matches(msg, m.keys.activate):
		ctl.Activate()
	case key.Matches(msg, m.keys.prev):
		ctl.ClickPrev()
	case key.Matches(msg, m.keys.next):
		ctl.ClickNext()
	case key.Matches(msg, m.keys.title):
		ctl.ClickTitle()
	case key.Matches(msg, m.keys.mode):
		ctl.SetSelectionMode(ctl.Mode().Next())
	case key.Matches(msg, m.keys.hourDown):
		ctl.SetActiveHour(ctl.ActiveHour() - 1)
	case key.Matches(msg, m.keys.hourUp):
		ctl.SetActiveHour(ctl.ActiveHour() + 1)
	case key.Matches(msg, m.keys.minuteDown):
		ctl.SetActiveMinute(ctl.ActiveMinute() - 1)
	case key.Matches(msg, m.keys.minuteUp):
		ctl.SetActiveMinute(ctl.ActiveMinute() + 1)
	case key.Matches(msg, m.keys.today):
		ctl.GoToToday()
	}

	return m, nil
}

// moveHorizontal follows reading order, so left moves forward in RTL locales.
func (m Model) moveHorizontal(dir int) {
	if m.ctl.Scene() != picker.SceneTime && m.ctl.Localizer().Direction() == locale.RTL {
		dir = -dir
	}
	m.ctl.Move(dir)
}

// moveVertical moves one grid row, or one hour on the time page where up
// means later.
func (m Model) moveVertical(dir int) {
	if m.ctl.Scene() == picker.SceneTime {
		m.ctl.SetActiveHour(m.ctl.ActiveHour() - dir)
		return
	}
	m.ctl.Move(dir * grid.Columns(m.ctl.Scene()))
}
