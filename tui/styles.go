package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the registration form. Adaptive colors keep the form
// legible on both light and dark terminals.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	// Field borders carry the tri-state email indicator: neutral until
	// the user types, then green/red by validity.
	fieldNeutralStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				PaddingLeft(1).
				Width(42)

	fieldOKStyle = fieldNeutralStyle.
			BorderForeground(lipgloss.Color("42"))

	fieldBadStyle = fieldNeutralStyle.
			BorderForeground(lipgloss.Color("196"))

	ruleMetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	ruleUnmetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	buttonEnabledStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 3)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("237")).
				Padding(0, 3)

	toastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)
