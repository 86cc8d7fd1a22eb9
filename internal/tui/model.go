package tui

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datepick/internal/locale"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

// ValueChangedMsg carries a debounced picker value into the program.
type ValueChangedMsg struct {
	Value string
}

// Bridge forwards debounced values from the picker's timer goroutine into a
// running program. Values sent before Attach are dropped.
type Bridge struct {
	prog atomic.Pointer[tea.Program]
}

// Attach sets the program that receives ValueChangedMsg.
func (b *Bridge) Attach(p *tea.Program) {
	b.prog.Store(p)
}

// Send delivers value to the attached program.
func (b *Bridge) Send(value string) {
	if p := b.prog.Load(); p != nil {
		p.Send(ValueChangedMsg{Value: value})
	}
}

// Options configures the picker model.
type Options struct {
	WeekNumbers bool
	// Picker options are passed to the controller as-is.
	Picker []picker.Option
}

// pageState is shared between copies of the model so the navigate hook can
// record the last paging direction.
type pageState struct {
	direction int
}

// Model is the Bubbletea model driving a single picker controller.
type Model struct {
	ctl         *picker.Controller
	keys        keyMap
	help        help.Model
	weekNumbers bool
	page        *pageState
	notified    string
	quitting    bool
	width       int
}

// NewModel creates the controller and wraps it in a model.
func NewModel(mode picker.Mode, loc *locale.Localizer, opts Options) Model {
	page := &pageState{}
	pickerOpts := append([]picker.Option{}, opts.Picker...)
	pickerOpts = append(pickerOpts, picker.WithOnNavigate(func(direction int) {
		page.direction = direction
	}))

	return Model{
		ctl:         picker.New(mode, loc, pickerOpts...),
		keys:        defaultKeyMap(),
		help:        help.New(),
		weekNumbers: opts.WeekNumbers,
		page:        page,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the underlying state machine.
func (m Model) Controller() *picker.Controller {
	return m.ctl
}

// Notified returns the last value delivered through ValueChangedMsg.
func (m Model) Notified() string {
	return m.notified
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
