// Package ui implements the interactive terminal front end: a login screen,
// a home screen and the task list.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Navy   = lipgloss.Color("#004A8D")
	Orange = lipgloss.Color("#F7941D")
	Peach  = lipgloss.Color("#FDC180")
	Red    = lipgloss.Color("#FF3B30")
	Purple = lipgloss.Color("#6200EE")
	White  = lipgloss.Color("#FFFFFF")
	Gray   = lipgloss.Color("#8A8A8A")
)

// Styles holds every style the screens render with.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Label     lipgloss.Style
	Input     lipgloss.Style
	Button    lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Editing   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Container lipgloss.Style
}

// DefaultStyles returns the application styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Navy),
		Subtitle: lipgloss.NewStyle().
			Foreground(Orange),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(Navy).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(Navy),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Peach).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(Orange).
			Padding(0, 2),
		Item: lipgloss.NewStyle().
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			PaddingLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Purple).
			Foreground(Purple),
		Editing: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(Orange).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(Red),
		Muted: lipgloss.NewStyle().
			Foreground(Gray),
		Container: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
