package nutrisnap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// progressBar renders a fixed-width bar; overshooting the goal flips the bar
// color. Values outside [0, max] clamp to an empty or full bar.
func progressBar(value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := value * width / max
	if filled < 0 {
		filled = 0
	}
	over := filled > width
	if over {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if over {
		return overStyle.Render(bar)
	}
	return barStyle.Render(bar)
}
