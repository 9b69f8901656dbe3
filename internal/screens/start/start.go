// Package start is the setup screen: pick a difficulty and the menu
// categories to be quizzed on.
package start

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/router"
	"github.com/abhisek/menuquiz/internal/screen"
	"github.com/abhisek/menuquiz/internal/ui/components"
	"github.com/abhisek/menuquiz/internal/ui/theme"
)

type focus int

const (
	focusDifficulty focus = iota
	focusCategories
	focusStart
)

// StartScreen drives the controller's start phase.
type StartScreen struct {
	ctrl    *game.Controller
	newQuiz func() screen.Screen

	focus      focus
	categories components.Checklist
	errMsg     string
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates the start screen. newQuiz builds the screen pushed once the
// game starts.
func New(ctrl *game.Controller, newQuiz func() screen.Screen) *StartScreen {
	s := &StartScreen{ctrl: ctrl, newQuiz: newQuiz}
	s.refresh()
	return s
}

// Init resyncs with the controller; the screen is re-initialised whenever
// the quiz pops back to it.
func (s *StartScreen) Init() tea.Cmd {
	s.errMsg = ""
	s.refresh()
	return nil
}

func (s *StartScreen) Title() string {
	return "New Game"
}

func (s *StartScreen) KeyHints() []screen.KeyHint {
	hints := []screen.KeyHint{{Key: "Tab", Description: "Next"}}
	switch s.focus {
	case focusDifficulty:
		hints = append(hints, screen.KeyHint{Key: "←/→", Description: "Difficulty"})
	case focusCategories:
		hints = append(hints,
			screen.KeyHint{Key: "↑/↓", Description: "Move"},
			screen.KeyHint{Key: "Space", Description: "Toggle"})
	case focusStart:
		hints = append(hints, screen.KeyHint{Key: "Enter", Description: "Start"})
	}
	return append(hints, screen.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *StartScreen) refresh() {
	v := s.ctrl.View()
	opts := make([]components.ChecklistOption, len(v.Categories))
	for i, c := range v.Categories {
		opts[i] = components.ChecklistOption{
			Label:   c.Name,
			Detail:  fmt.Sprintf("%d items", c.Items),
			Checked: c.Selected,
		}
	}
	cursor := s.categories.Cursor
	s.categories = components.NewChecklist(opts)
	s.categories.Cursor = min(cursor, max(len(opts)-1, 0))
	s.categories.Focused = s.focus == focusCategories
}

func (s *StartScreen) setFocus(f focus) {
	s.focus = f
	s.categories.Focused = f == focusCategories
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	s.errMsg = ""

	key := kmsg.String()
	switch key {
	case "tab":
		s.setFocus((s.focus + 1) % 3)
		return s, nil
	case "shift+tab":
		s.setFocus((s.focus + 2) % 3)
		return s, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		names := s.ctrl.Difficulties().Names()
		if i := int(key[0] - '1'); i < len(names) {
			s.selectDifficulty(names[i])
		}
		return s, nil
	}

	switch s.focus {
	case focusDifficulty:
		return s.updateDifficulty(key)
	case focusCategories:
		return s.updateCategories(kmsg)
	default:
		return s.updateStart(key)
	}
}

func (s *StartScreen) updateDifficulty(key string) (screen.Screen, tea.Cmd) {
	names := s.ctrl.Difficulties().Names()
	cur := slices.Index(names, s.ctrl.Difficulty().Name)

	switch key {
	case "left", "h":
		if cur > 0 {
			s.selectDifficulty(names[cur-1])
		}
	case "right", "l":
		if cur < len(names)-1 {
			s.selectDifficulty(names[cur+1])
		}
	case "down", "j", "enter":
		s.setFocus(focusCategories)
	}
	return s, nil
}

func (s *StartScreen) selectDifficulty(name string) {
	if err := s.ctrl.SelectDifficulty(name); err != nil {
		s.errMsg = err.Error()
	}
}

func (s *StartScreen) updateCategories(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "space", " ", "enter", "x":
		if len(s.categories.Options) == 0 {
			return s, nil
		}
		name := s.categories.Options[s.categories.Cursor].Label
		if err := s.ctrl.ToggleCategory(name); err != nil {
			s.errMsg = err.Error()
		}
		s.refresh()
		return s, nil
	case "up", "k":
		var inside bool
		if s.categories, inside = s.categories.Update(kmsg); !inside {
			s.setFocus(focusDifficulty)
		}
	case "down", "j":
		var inside bool
		if s.categories, inside = s.categories.Update(kmsg); !inside {
			s.setFocus(focusStart)
		}
	}
	return s, nil
}

func (s *StartScreen) updateStart(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		s.setFocus(focusCategories)
	case "enter":
		if err := s.ctrl.Start(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, router.Navigate(s.newQuiz())
	}
	return s, nil
}

func (s *StartScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Pick your shift"))
	b.WriteString("\n\n")

	names := s.ctrl.Difficulties().Names()
	d := s.ctrl.Difficulty()
	b.WriteString(label.Render("Difficulty"))
	b.WriteString("\n")
	b.WriteString(components.Pills(names, slices.Index(names, d.Name), s.focus == focusDifficulty))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d hints · %d freebies · %g pts per item",
		d.HintsAllowed, d.PrefillCount, d.ScoreValue)))
	b.WriteString("\n\n")

	b.WriteString(label.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(s.categories.View())
	b.WriteString("\n")

	b.WriteString(components.NewButton("Start", s.ctrl.CanStart(), s.focus == focusStart).View())
	if !s.ctrl.CanStart() {
		b.WriteString(theme.Hint.Render("  select at least one category"))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
