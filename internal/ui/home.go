package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// openTasksMsg switches to the task list.
type openTasksMsg struct{}

// HomeModel greets the user and links to the task list.
type HomeModel struct {
	user   string
	help   help.Model
	styles Styles
}

// NewHomeModel creates the home screen.
func NewHomeModel(styles Styles) HomeModel {
	return HomeModel{help: help.New(), styles: styles}
}

// SetUser sets the name shown in the greeting.
func (m *HomeModel) SetUser(user string) {
	m.user = user
}

// Update handles key input.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, homeKeys.Open):
			return m, func() tea.Msg { return openTasksMsg{} }
		case key.Matches(msg, homeKeys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the screen.
func (m HomeModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Welcome, %s!", m.user)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("What needs doing today?"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Button.Render("view my tasks"))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(homeKeys))
	return m.styles.Container.Render(sb.String())
}
