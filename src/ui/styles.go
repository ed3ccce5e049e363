package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header       lipgloss.Style
	Subtitle     lipgloss.Style
	Form         lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Input        lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Result       lipgloss.Style
	ResultHeader lipgloss.Style
	Footer       lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	Status       lipgloss.Style
	Subtle       lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AD8CFF")).
			Bold(true).
			Padding(0, 1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Padding(0, 1),

		Form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#AD8CFF")).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),

		LabelFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00E6B8")).
			Bold(true),

		Input: lipgloss.NewStyle().
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#555555")).
			Padding(0, 2),

		ButtonActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#AD8CFF")).
			Bold(true).
			Padding(0, 2),

		Result: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3DDC97")).
			Padding(0, 1),

		ResultHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")).
			Faint(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5C5C")).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")).
			Bold(true),

		Status: lipgloss.NewStyle().
			Background(lipgloss.Color("#AD8CFF")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),
	}
}
