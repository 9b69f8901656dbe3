// Package layout draws the frame around every screen: a header with the
// running score, the screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/screen"
	"github.com/abhisek/menuquiz/internal/ui/theme"
)

// Smallest terminal the quiz screen fits in.
const (
	MinWidth  = 70
	MinHeight = 20
)

// compactHeight is where screens start dropping optional detail.
const compactHeight = 30

// TooSmall reports whether the terminal is below the minimum size.
func TooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Compact reports whether the body should skip optional detail.
func Compact(height int) bool {
	return height < compactHeight
}

// SizeWarning fills the terminal with a resize prompt.
func SizeWarning(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("The menu doesn't fit.\n\nResize to at least %d x %d\n(now %d x %d)",
			MinWidth, MinHeight, width, height))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// Header shows the app name, the screen title centred, and the
// difficulty and score on the right.
func Header(title string, score int, difficulty string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" MenuQuiz")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.ToUpper(difficulty)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d pts ", score))

	return bar.Width(width).Render(spread(width-2, left, center, right))
}

// spread places center in the middle of inner columns with left and right
// flush to the edges, keeping at least one space between them.
func spread(inner int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// Footer lists key hints, dropping trailing ones that do not fit.
func Footer(hints []screen.KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	inner := width - 4
	line := ""
	for _, h := range hints {
		part := key.Render(h.Key) + " " + desc.Render(h.Description)
		next := part
		if line != "" {
			next = line + "   " + part
		}
		if lipgloss.Width(next) > inner {
			break
		}
		line = next
	}
	return bar.Width(width).Render(" " + line)
}

// Frame stacks header, body and footer, sizing the body to fill the rest
// of the terminal.
func Frame(header, body, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
