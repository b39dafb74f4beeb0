// Package tui implements the interactive task list.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/tick/internal/core/eventbus"
	"github.com/colonyops/tick/internal/core/task"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusTable
)

// focusSignal is set by the input.focus subscription and consumed by the
// model after each controller call. It is shared by pointer so copies of
// the model observe the same signal.
type focusSignal struct {
	requested bool
}

// Model is the bubbletea model for the task list screen.
type Model struct {
	ctx  context.Context
	ctrl *task.Controller
	keys keyMap
	help help.Model

	input    textinput.Model
	focus    focusArea
	cursor   int
	showHelp bool
	focusReq *focusSignal

	width    int
	height   int
	quitting bool
}

// New creates a model around ctrl. The controller must already be
// initialized. When bus is non-nil the entry field regains focus whenever
// an input.focus event is published.
func New(ctx context.Context, ctrl *task.Controller, bus *eventbus.EventBus) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a task"
	ti.Prompt = "› "
	ti.SetWidth(48)
	ti.SetValue(ctrl.Input())
	ti.Focus()

	sig := &focusSignal{}
	if bus != nil {
		bus.SubscribeInputFocus(func(eventbus.InputFocusPayload) {
			sig.requested = true
		})
	}

	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    ti,
		focus:    focusInput,
		focusReq: sig,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(msg.Width-8, 10))
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleTableKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.SetInputBuffer(m.input.Value())
		m.ctrl.AddTask(m.ctx)
		m.input.SetValue(m.ctrl.Input())
		m.afterAction()
		return m, nil
	case key.Matches(msg, m.keys.Tab, m.keys.Blur):
		m.focusTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetInputBuffer(m.input.Value())
	return m, cmd
}

func (m Model) handleTableKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.focusInput()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ctrl.VisibleTasks())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.ctrl.ToggleTask(m.ctx, t.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.ctrl.DeleteTask(m.ctx, t.ID)
		}
	case key.Matches(msg, m.keys.PrevPage):
		m.changePage(task.Previous)
	case key.Matches(msg, m.keys.NextPage):
		m.changePage(task.Next)
	}

	m.afterAction()
	return m, nil
}

func (m *Model) changePage(dir task.Direction) {
	before := m.ctrl.CurrentPage()
	m.ctrl.SetPage(dir)
	if m.ctrl.CurrentPage() != before {
		m.cursor = 0
	}
}

// afterAction honours a pending focus request and keeps the row cursor on
// the visible page.
func (m *Model) afterAction() {
	if m.focusReq.requested {
		m.focusReq.requested = false
		m.focusInput()
	}

	visible := len(m.ctrl.VisibleTasks())
	m.cursor = max(min(m.cursor, visible-1), 0)
}

func (m *Model) focusInput() {
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) focusTable() {
	m.focus = focusTable
	m.input.Blur()
}

func (m Model) selected() (task.Task, bool) {
	visible := m.ctrl.VisibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return task.Task{}, false
	}
	return visible[m.cursor], true
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.content())
	v.AltScreen = true
	return v
}

func (m Model) content() string {
	body := m.render()
	if m.showHelp {
		return helpOverlay(m.keys, body, m.width, m.height)
	}
	return body
}
