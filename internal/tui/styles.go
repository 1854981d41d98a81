package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
	styleRule    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleStep    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	styleVerdict = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	styleFigure  = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	styleReading = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styleStatus  = lipgloss.NewStyle().Faint(true)
)

func rule() string {
	return styleRule.Render(strings.Repeat("═", 60))
}
