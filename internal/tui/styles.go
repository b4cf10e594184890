package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent  = lipgloss.Color("#8BE9FD")
	colorMuted   = lipgloss.Color("#6272A4")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorPink    = lipgloss.Color("#FF79C6")
	colorWarning = lipgloss.Color("#FFB86C")
	colorDanger  = lipgloss.Color("#FF5555")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorPink).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	SelectedItemStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorPink).
				PaddingLeft(1)

	ItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	NameStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	EcoBadgeStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// hazardStyle colors a hazard level from green (1) to red (5)
func hazardStyle(level int) lipgloss.Style {
	switch {
	case level >= 5:
		return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	case level >= 3:
		return lipgloss.NewStyle().Foreground(colorWarning)
	case level >= 1:
		return lipgloss.NewStyle().Foreground(colorGreen)
	}
	return MutedStyle
}

// hazardMeter renders a level as five pips
func hazardMeter(level int) string {
	level = min(max(level, 0), 5)
	return hazardStyle(level).Render(strings.Repeat("●", level) + strings.Repeat("○", 5-level))
}
