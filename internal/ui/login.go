package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tarefas/internal/auth"
)

// loggedInMsg is sent once the credentials are accepted.
type loggedInMsg struct {
	user string
}

// LoginModel collects a username and password.
type LoginModel struct {
	user     textinput.Model
	password textinput.Model
	focus    int
	err      string
	help     help.Model
	styles   Styles
	logger   *zap.Logger
}

// NewLoginModel creates the login screen.
func NewLoginModel(styles Styles, logger *zap.Logger) LoginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.Prompt = ""
	user.Cursor.SetMode(cursor.CursorStatic)
	user.CharLimit = 64
	user.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = ""
	password.Cursor.SetMode(cursor.CursorStatic)
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginModel{
		user:     user,
		password: password,
		help:     help.New(),
		styles:   styles,
		logger:   logger,
	}
}

// Update handles key input.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, loginKeys.Switch):
			m.toggleFocus()
			return m, nil
		case key.Matches(msg, loginKeys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.user, cmd = m.user.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *LoginModel) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.user.Blur()
		m.password.Focus()
		return
	}
	m.focus = 0
	m.password.Blur()
	m.user.Focus()
}

func (m LoginModel) submit() (LoginModel, tea.Cmd) {
	user := m.user.Value()
	if err := auth.Check(user, m.password.Value()); err != nil {
		m.logger.Info("login rejected", zap.String("user", user))
		m.err = err.Error()
		m.password.SetValue("")
		return m, nil
	}

	m.err = ""
	m.password.SetValue("")
	return m, func() tea.Msg { return loggedInMsg{user: user} }
}

// View renders the screen.
func (m LoginModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Tarefas"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Sign in to continue"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Label.Render("Username"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Input.Render(m.user.View()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Label.Render("Password"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Input.Render(m.password.View()))
	sb.WriteString("\n")
	if m.err != "" {
		sb.WriteString(m.styles.Error.Render(m.err))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Button.Render("login"))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(loginKeys))
	return m.styles.Container.Render(sb.String())
}
