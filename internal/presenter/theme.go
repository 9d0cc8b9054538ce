package presenter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	goodStyle   = lipgloss.NewStyle().Foreground(cGood)
	mutedStyle  = lipgloss.NewStyle().Foreground(cMuted)
	goldStyle   = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cMuted).
			Padding(0, 1)
)

func labelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", keyStyle.Render(label+":"), value)
}
