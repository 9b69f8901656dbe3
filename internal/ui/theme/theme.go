// Package theme holds the deli palette and the shared lipgloss styles.
package theme

import "charm.land/lipgloss/v2"

// Palette.
var (
	Primary   = lipgloss.Color("#F59E0B") // mustard
	Secondary = lipgloss.Color("#10B981") // lettuce
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#EF4444") // tomato
	Hinted    = lipgloss.Color("#38BDF8")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#A8A29E")
	BgDark    = lipgloss.Color("#1C1917")
	BgCard    = lipgloss.Color("#292524")
	Border    = lipgloss.Color("#44403C")
)

// Text.
var (
	Title    = lipgloss.NewStyle().Foreground(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// Ingredient slots after a submit, plus the auto-revealed freebies.
var (
	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Revealed  = lipgloss.NewStyle().Foreground(TextDim)
)

// Lists and pills.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
)

// Progress bar cells.
var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)

// Buttons. Active is the default action, Focused has keyboard focus and
// Inactive cannot be pressed.
var (
	button = lipgloss.NewStyle().Padding(0, 2)

	ButtonActive   = button.Background(Primary).Foreground(BgDark).Bold(true)
	ButtonFocused  = button.Foreground(Text).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(Primary)
	ButtonInactive = button.Foreground(TextDim).Border(lipgloss.RoundedBorder()).BorderForeground(Border)
)
