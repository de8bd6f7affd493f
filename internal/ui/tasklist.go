package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tarefas/internal/tasks"
)

// storeChangedMsg carries a snapshot published by the store.
type storeChangedMsg struct {
	state tasks.State
}

// backMsg returns to the home screen.
type backMsg struct{}

// TaskListModel is the task list screen. The store owns the tasks and the
// editing state; the model mirrors the latest snapshot.
type TaskListModel struct {
	store  *tasks.Store
	logger *zap.Logger

	input  textinput.Model
	state  tasks.State
	cursor int

	help   help.Model
	styles Styles
	width  int
}

// NewTaskListModel creates the task list screen.
func NewTaskListModel(store *tasks.Store, styles Styles, logger *zap.Logger) TaskListModel {
	input := textinput.New()
	input.Placeholder = "add a new task..."
	input.Prompt = ""
	input.Cursor.SetMode(cursor.CursorStatic)
	input.CharLimit = 256

	return TaskListModel{
		store:  store,
		logger: logger,
		input:  input,
		state:  store.Snapshot(),
		help:   help.New(),
		styles: styles,
	}
}

// Activate focuses the input and shows the store's current state. The store
// is loaded before the UI starts.
func (m *TaskListModel) Activate() tea.Cmd {
	m.apply(m.store.Snapshot(), false)
	return m.input.Focus()
}

// SetWidth sets the rendering width.
func (m *TaskListModel) SetWidth(w int) {
	m.width = w
	if w > 8 {
		m.input.Width = w - 8
	}
}

// Update handles key input and store notifications.
func (m TaskListModel) Update(msg tea.Msg) (TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		m.apply(msg.state, false)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, taskKeys.Submit):
			m.store.Add(m.input.Value())
			m.apply(m.store.Snapshot(), true)
			return m, nil
		case key.Matches(msg, taskKeys.Edit):
			if t, ok := m.selected(); ok {
				if err := m.store.BeginEdit(t.ID); err != nil {
					m.logger.Warn("cannot edit task", zap.String("id", t.ID), zap.Error(err))
				}
				m.apply(m.store.Snapshot(), true)
				m.input.CursorEnd()
			}
			return m, nil
		case key.Matches(msg, taskKeys.Delete):
			if t, ok := m.selected(); ok {
				m.store.Remove(t.ID)
				m.apply(m.store.Snapshot(), true)
			}
			return m, nil
		case key.Matches(msg, taskKeys.Clear):
			m.store.ClearAll()
			m.apply(m.store.Snapshot(), true)
			return m, nil
		case key.Matches(msg, taskKeys.Back):
			if m.state.Editing() {
				m.store.CancelEdit()
				m.apply(m.store.Snapshot(), true)
				return m, nil
			}
			m.input.Blur()
			return m, func() tea.Msg { return backMsg{} }
		case key.Matches(msg, taskKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, taskKeys.Down):
			if m.cursor < len(m.state.Tasks)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetInput(m.input.Value())
	return m, cmd
}

// apply mirrors a store snapshot. The input line is only replaced when the
// snapshot comes from an operation this model just performed; asynchronous
// notifications must not overwrite what the user is typing. Notifications
// can arrive out of order, so a snapshot older than the one shown is dropped.
func (m *TaskListModel) apply(state tasks.State, withInput bool) {
	if state.Version < m.state.Version {
		m.logger.Debug("dropping stale snapshot",
			zap.Uint64("version", state.Version),
			zap.Uint64("shown", m.state.Version))
		return
	}
	m.state = state
	if withInput && m.input.Value() != state.Input {
		m.input.SetValue(state.Input)
	}
	if m.cursor >= len(state.Tasks) {
		m.cursor = len(state.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m TaskListModel) selected() (tasks.Task, bool) {
	if len(m.state.Tasks) == 0 {
		return tasks.Task{}, false
	}
	return m.state.Tasks[m.cursor], true
}

// actionLabel names what enter does.
func (m TaskListModel) actionLabel() string {
	if m.state.Editing() {
		return "save"
	}
	return "add"
}

// View renders the screen.
func (m TaskListModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(fmt.Sprintf("My Tasks (%d)", len(m.state.Tasks))))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Input.Render(m.input.View()))
	sb.WriteString(" ")
	sb.WriteString(m.styles.Button.Render(m.actionLabel()))
	sb.WriteString("\n\n")

	if len(m.state.Tasks) == 0 {
		sb.WriteString(m.styles.Muted.Render("no tasks yet"))
		sb.WriteString("\n")
	}
	for i, t := range m.state.Tasks {
		line := fmt.Sprintf("%d. %s", i+1, t.Text)
		switch {
		case t.ID == m.state.EditingID:
			sb.WriteString(m.styles.Editing.Render(line + " (editing)"))
		case i == m.cursor:
			sb.WriteString(m.styles.Selected.Render(line))
		default:
			sb.WriteString(m.styles.Item.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	keys := taskKeys
	keys.Submit.SetHelp("enter", m.actionLabel())
	if m.state.Editing() {
		keys.Back.SetHelp("esc", "cancel edit")
	}
	sb.WriteString(m.help.View(keys))
	return m.styles.Container.Render(sb.String())
}
