package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the render styles for one color scheme. Two palettes exist,
// picked by the persisted dark-mode setting.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Doc         lipgloss.Style
	Danger      lipgloss.Style
	Success     lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
}

func darkStyles() Styles {
	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1),
		Doc:     lipgloss.NewStyle().Margin(1, 2),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

func lightStyles() Styles {
	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("161")).
			Background(lipgloss.Color("254")).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		Doc:     lipgloss.NewStyle().Margin(1, 2),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
	}
}

func NewStyles(darkMode bool) Styles {
	if darkMode {
		return darkStyles()
	}
	return lightStyles()
}
