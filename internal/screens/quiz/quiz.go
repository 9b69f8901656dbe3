// Package quiz is the in-round screen: one input per hidden ingredient,
// hints on demand, submit then continue.
package quiz

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/router"
	"github.com/abhisek/menuquiz/internal/screen"
	"github.com/abhisek/menuquiz/internal/ui/components"
)

// QuizScreen drives the controller's quiz phase.
type QuizScreen struct {
	ctrl   *game.Controller
	newEnd func() screen.Screen

	round   *game.RoundView
	inputs  []components.IngredientInput
	focused int // index into inputs, -1 when nothing is editable

	confirmQuit bool
	flash       string
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. newEnd builds the screen shown after the
// last round.
func New(ctrl *game.Controller, newEnd func() screen.Screen) *QuizScreen {
	return &QuizScreen{ctrl: ctrl, newEnd: newEnd, focused: -1}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.rebuild(true)
}

func (s *QuizScreen) Title() string {
	if s.round == nil {
		return "Quiz"
	}
	return s.round.Item
}

func (s *QuizScreen) KeyHints() []screen.KeyHint {
	switch {
	case s.confirmQuit:
		return []screen.KeyHint{
			{Key: "Y", Description: "Quit game"},
			{Key: "N", Description: "Keep going"},
		}
	case s.round != nil && s.round.Submitted:
		return []screen.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []screen.KeyHint{
		{Key: "Tab", Description: "Next"},
		{Key: "Ctrl+G", Description: "Hint"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

// rebuild re-reads the round from the controller. When the round number
// changed, or reset is set, inputs are recreated and focus moves to the
// first editable slot; otherwise focus stays on the same slot if possible.
func (s *QuizScreen) rebuild(reset bool) tea.Cmd {
	v := s.ctrl.View()
	if v.Round == nil {
		s.round = nil
		s.inputs = nil
		s.focused = -1
		return nil
	}

	if s.round == nil || s.round.Number != v.Round.Number {
		reset = true
		s.flash = ""
	}
	prev := -1
	if !reset && s.focused >= 0 {
		prev = s.inputs[s.focused].Slot.Index
	}

	s.round = v.Round
	s.inputs = make([]components.IngredientInput, len(v.Round.Slots))
	for i, slot := range v.Round.Slots {
		s.inputs[i] = components.NewIngredientInput(slot)
	}

	s.focused = -1
	if prev >= 0 && prev < len(s.inputs) && s.inputs[prev].Editable() {
		s.focused = prev
	} else {
		s.focused = s.nextEditable(prev, 1)
	}
	if s.focused < 0 {
		return nil
	}
	return s.inputs[s.focused].Focus()
}

// nextEditable returns the next editable input after from in direction
// dir, wrapping around. It returns -1 when none is editable.
func (s *QuizScreen) nextEditable(from, dir int) int {
	n := len(s.inputs)
	if n == 0 {
		return -1
	}
	i := from
	for range n {
		i = ((i+dir)%n + n) % n
		if s.inputs[i].Editable() {
			return i
		}
	}
	return -1
}

func (s *QuizScreen) moveFocus(dir int) tea.Cmd {
	next := s.nextEditable(s.focused, dir)
	if next < 0 || next == s.focused {
		return nil
	}
	if s.focused >= 0 {
		s.inputs[s.focused].Blur()
	}
	s.focused = next
	return s.inputs[s.focused].Focus()
}

// syncGuesses pushes typed text into the controller.
func (s *QuizScreen) syncGuesses() {
	for _, in := range s.inputs {
		if !in.Editable() {
			continue
		}
		if err := s.ctrl.SetGuess(in.Slot.Index, in.Value()); err != nil {
			s.errMsg = err.Error()
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.focused >= 0 {
			var cmd tea.Cmd
			s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.confirmQuit {
		return s.handleConfirm(kmsg.String())
	}
	if s.round == nil {
		return s, nil
	}

	key := kmsg.String()
	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}
	s.errMsg = ""

	if s.round.Submitted {
		switch key {
		case "enter", "space", " ":
			return s.advance()
		}
		return s, nil
	}

	switch key {
	case "ctrl+g":
		return s, s.hint()
	case "enter":
		return s, s.submit()
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	}

	if s.focused >= 0 {
		var cmd tea.Cmd
		s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleConfirm(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "y", "Y":
		s.confirmQuit = false
		s.ctrl.Restart()
		return s, router.Back()
	case "n", "N", "esc":
		s.confirmQuit = false
	}
	return s, nil
}

func (s *QuizScreen) hint() tea.Cmd {
	s.syncGuesses()
	revealed, err := s.ctrl.RequestHint()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	cmd := s.rebuild(false)
	names := make([]string, len(revealed))
	for i, idx := range revealed {
		names[i] = s.round.Slots[idx].Text
	}
	s.flash = hintFlash(names)
	return cmd
}

func (s *QuizScreen) submit() tea.Cmd {
	s.syncGuesses()
	if _, err := s.ctrl.Submit(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.flash = ""
	return s.rebuild(false)
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.Continue(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.ctrl.Phase() == game.PhaseEnd {
		return s, router.Swap(s.newEnd())
	}
	return s, s.rebuild(true)
}
