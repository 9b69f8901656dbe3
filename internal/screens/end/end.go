// Package end shows the game summary with retry and menu options.
package end

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/router"
	"github.com/abhisek/menuquiz/internal/screen"
	"github.com/abhisek/menuquiz/internal/ui/components"
	"github.com/abhisek/menuquiz/internal/ui/layout"
	"github.com/abhisek/menuquiz/internal/ui/theme"
)

// EndScreen displays the summary of a finished game.
type EndScreen struct {
	ctrl    *game.Controller
	newQuiz func() screen.Screen

	summary    game.Summary
	categories []string
	menu       components.Menu
	errMsg     string
}

var _ screen.Screen = (*EndScreen)(nil)
var _ screen.KeyHintProvider = (*EndScreen)(nil)

// New creates the end screen. newQuiz builds the screen used when the
// player retries with the same settings.
func New(ctrl *game.Controller, newQuiz func() screen.Screen) *EndScreen {
	s := &EndScreen{
		ctrl:    ctrl,
		newQuiz: newQuiz,
		summary: ctrl.Summary(),
	}
	for _, c := range ctrl.View().Categories {
		if c.Selected {
			s.categories = append(s.categories, c.Name)
		}
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Retry", Shortcut: "r", Action: s.retry},
		{Label: "Main Menu", Shortcut: "m", Action: s.mainMenu},
		{Label: "Quit", Shortcut: "q", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *EndScreen) Init() tea.Cmd {
	return nil
}

func (s *EndScreen) Title() string {
	return "Results"
}

func (s *EndScreen) KeyHints() []screen.KeyHint {
	return []screen.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "Retry"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *EndScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// retry starts a new game with the same difficulty and categories.
func (s *EndScreen) retry() tea.Cmd {
	s.ctrl.Restart()
	for _, c := range s.categories {
		if err := s.ctrl.ToggleCategory(c); err != nil {
			s.errMsg = err.Error()
			return nil
		}
	}
	if err := s.ctrl.Start(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	next := s.newQuiz()
	return router.Swap(next)
}

func (s *EndScreen) mainMenu() tea.Cmd {
	s.ctrl.Restart()
	return router.Home()
}

func (s *EndScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Order up!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d pts", sum.Score)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Items: %d    Perfect: %d    Accuracy: %.0f%%    Hints: %d",
		sum.Rounds, sum.PerfectRounds, sum.Accuracy*100, sum.HintsUsed)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(cw-6, 10)))
	b.WriteString(divider)
	b.WriteString("\n")

	// Keep the list short on small terminals.
	limit := len(sum.Results)
	if layout.Compact(height) {
		limit = min(limit, 5)
	}
	for _, r := range sum.Results[:limit] {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		mark := "  "
		if r.Perfect {
			style = style.Foreground(theme.Success)
			mark = "★ "
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-22s %d/%d  +%d",
			mark, truncate(r.Item, 22), r.Correct, r.Guessable, r.Earned)))
		b.WriteString("\n")
	}
	if hidden := len(sum.Results) - limit; hidden > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  … and %d more", hidden)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.menu.View())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
