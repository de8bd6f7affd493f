package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tarefas/internal/tasks"
)

// Screen identifies the active screen.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenTasks
)

var quitKey = key.NewBinding(key.WithKeys("ctrl+c"))

// Model routes messages to the active screen.
type Model struct {
	logger *zap.Logger
	screen Screen

	login LoginModel
	home  HomeModel
	tasks TaskListModel
}

// NewModel creates the root model, starting on the login screen.
func NewModel(store *tasks.Store, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := DefaultStyles()
	return Model{
		logger: logger,
		screen: ScreenLogin,
		login:  NewLoginModel(styles, logger),
		home:   NewHomeModel(styles),
		tasks:  NewTaskListModel(store, styles, logger),
	}
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.tasks.SetWidth(msg.Width)
		return m, nil
	case loggedInMsg:
		m.logger.Info("logged in", zap.String("user", msg.user))
		m.home.SetUser(msg.user)
		m.screen = ScreenHome
		return m, nil
	case openTasksMsg:
		m.screen = ScreenTasks
		cmd = m.tasks.Activate()
		return m, cmd
	case backMsg:
		m.screen = ScreenHome
		return m, nil
	case storeChangedMsg:
		// Store updates reach the task list whichever screen is showing.
		m.tasks, cmd = m.tasks.Update(msg)
		return m, cmd
	}

	switch m.screen {
	case ScreenLogin:
		m.login, cmd = m.login.Update(msg)
	case ScreenHome:
		m.home, cmd = m.home.Update(msg)
	case ScreenTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case ScreenHome:
		return m.home.View()
	case ScreenTasks:
		return m.tasks.View()
	default:
		return m.login.View()
	}
}

// Run starts the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, store *tasks.Store, logger *zap.Logger, opts ...tea.ProgramOption) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewModel(store, logger), opts...)

	// Send blocks until the event loop reads the message, and notifications
	// can fire from inside Update.
	unsubscribe := store.Subscribe(func(state tasks.State) {
		go p.Send(storeChangedMsg{state: state})
	})
	defer unsubscribe()

	logger.Debug("ui started")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "ui")
	}
	logger.Debug("ui stopped")
	return nil
}
