package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width for stacked cards so their
// borders line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Card wraps content in a rounded-border card of the given width.
func Card(content string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Padding(0, 2).
		Render(content)
}
