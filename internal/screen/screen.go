// Package screen defines what the router needs from a TUI screen.
package screen

import tea "charm.land/bubbletea/v2"

// Screen is one page of the game: splash, start, quiz or results.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// QuitHint is shown when a screen has no hints of its own.
var QuitHint = KeyHint{Key: "Ctrl+C", Description: "Quit"}

// KeyHintProvider is implemented by screens whose footer depends on focus
// or phase.
type KeyHintProvider interface {
	KeyHints() []KeyHint
}

// Hints returns s's key hints, or just QuitHint.
func Hints(s Screen) []KeyHint {
	if p, ok := s.(KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	return []KeyHint{QuitHint}
}
