package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/ui/theme"
)

// Button is a styled, possibly disabled, action label.
type Button struct {
	Label   string
	Enabled bool
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string, enabled, focused bool) Button {
	return Button{Label: label, Enabled: enabled, Focused: focused}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case !b.Enabled:
		return theme.ButtonInactive.Render(b.Label)
	case b.Focused:
		return theme.ButtonActive.Render("▸ " + b.Label)
	default:
		return theme.ButtonFocused.Render(b.Label)
	}
}

// Pills renders a horizontal single-choice selector such as the
// difficulty picker. The selected label is highlighted; focus adds arrows.
func Pills(labels []string, selected int, focused bool) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == selected {
			parts[i] = theme.ButtonActive.Render(strings.ToUpper(l))
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2).Render(l)
		}
	}
	row := strings.Join(parts, " ")
	if focused {
		arrow := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		row = arrow.Render("◂ ") + row + arrow.Render(" ▸")
	}
	return row
}
