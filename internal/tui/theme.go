package tui

import "github.com/charmbracelet/lipgloss"

// Warm parchment palette, matching the web stylesheet.
var (
	colorText   = lipgloss.AdaptiveColor{Light: "#2f2a24", Dark: "#efe6d8"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#7a6f62", Dark: "#a89b8a"}
	colorAccent = lipgloss.Color("#9a6b3f")
	colorLine   = lipgloss.Color("#6b5138")
	colorButton = lipgloss.Color("#faf7f2")
)

const (
	cardWidth = 26 // content width, excluding border and padding
	childGap  = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent)

	cardCursorStyle = cardStyle.
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorText)

	cardNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	cardRelationshipStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(colorMuted)

	cardYearsStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	lineStyle = lipgloss.NewStyle().
			Foreground(colorLine)

	dialogStyle = lipgloss.NewStyle().
			Width(40).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText).
				MarginBottom(1)

	dialogLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	dialogValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorButton).
			Background(colorAccent).
			Padding(0, 2).
			MarginTop(1)
)
