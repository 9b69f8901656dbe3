package quiz

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/menu"
	"github.com/abhisek/menuquiz/internal/router"
	"github.com/abhisek/menuquiz/internal/screen"
)

const testMenu = `{"sides": {"Fries": ["Potato", "Salt", "Oil"]}}`

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "end" }
func (s *stubScreen) Title() string                           { return "Results" }

func newTestQuiz(t *testing.T) (*QuizScreen, *game.Controller) {
	t.Helper()
	ds, err := menu.Parse([]byte(testMenu), menu.FormatJSON)
	if err != nil {
		t.Fatalf("parse menu: %v", err)
	}
	ctrl, err := game.New(game.Options{
		Dataset:    ds,
		Difficulty: "hard",
		Rand:       rand.New(rand.NewPCG(7, 8)),
	})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := ctrl.ToggleCategory("sides"); err != nil {
		t.Fatal(err)
	}
	if err := ctrl.Start(); err != nil {
		t.Fatal(err)
	}

	s := New(ctrl, func() screen.Screen { return &stubScreen{} })
	s.Init()
	return s, ctrl
}

func typeText(s *QuizScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

var (
	keyTab   = tea.KeyPressMsg{Code: tea.KeyTab}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyHint  = tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
)

func TestInitBuildsEditableInputs(t *testing.T) {
	s, _ := newTestQuiz(t)

	if len(s.inputs) != 3 {
		t.Fatalf("inputs = %d, want 3", len(s.inputs))
	}
	for i, in := range s.inputs {
		if !in.Editable() {
			t.Errorf("input %d should be editable on hard", i)
		}
	}
	if s.focused != 0 {
		t.Errorf("focused = %d, want 0", s.focused)
	}
	if s.Title() != "Fries" {
		t.Errorf("Title() = %q, want Fries", s.Title())
	}
}

func TestSubmitScoresTypedGuesses(t *testing.T) {
	s, ctrl := newTestQuiz(t)

	typeText(s, "potato")
	s.Update(keyTab)
	typeText(s, " SALT ")
	s.Update(keyEnter)

	if !s.round.Submitted {
		t.Fatal("round should be submitted")
	}
	// 2 of 3 correct at 30 points.
	if ctrl.Score() != 20 {
		t.Errorf("Score() = %d, want 20", ctrl.Score())
	}
	if s.round.Toast != "2/3 correct, +20 pts" {
		t.Errorf("Toast = %q", s.round.Toast)
	}
	for i, in := range s.inputs {
		if in.Editable() {
			t.Errorf("input %d should be locked after submit", i)
		}
	}
	if !strings.Contains(s.View(100, 40), "see your results") {
		t.Error("last round should point at the results")
	}
}

func TestHintKeepsTypedGuess(t *testing.T) {
	s, ctrl := newTestQuiz(t)

	typeText(s, "potato")
	s.Update(keyHint)

	q := ctrl.Question()
	if q.HintsUsed != 1 {
		t.Fatalf("HintsUsed = %d, want 1", q.HintsUsed)
	}
	if q.Revealed(0) {
		t.Error("a slot with a typed guess should not be revealed")
	}
	if !q.Revealed(1) || !q.Revealed(2) {
		t.Error("both empty slots should be revealed")
	}
	if s.inputs[0].Value() != "potato" {
		t.Errorf("guess = %q, want potato", s.inputs[0].Value())
	}
	if s.focused != 0 {
		t.Errorf("focused = %d, want 0", s.focused)
	}
	if !strings.Contains(s.flash, "Salt") || !strings.Contains(s.flash, "Oil") {
		t.Errorf("flash = %q, want revealed names", s.flash)
	}
}

func TestHintLimit(t *testing.T) {
	s, _ := newTestQuiz(t)

	s.Update(keyHint)
	s.Update(keyHint)
	if !strings.Contains(s.errMsg, game.ErrNoHintsLeft.Error()) {
		t.Errorf("errMsg = %q, want no hints left", s.errMsg)
	}
}

func TestContinueAfterLastRoundReplacesWithEnd(t *testing.T) {
	s, ctrl := newTestQuiz(t)

	s.Update(keyEnter)
	_, cmd := s.Update(keyEnter)
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if ctrl.Phase() != game.PhaseEnd {
		t.Errorf("phase = %s, want end", ctrl.Phase())
	}
}

func TestQuitConfirm(t *testing.T) {
	s, ctrl := newTestQuiz(t)

	s.Update(keyEsc)
	if !s.confirmQuit {
		t.Fatal("esc should ask for confirmation")
	}
	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.confirmQuit || ctrl.Phase() != game.PhaseQuiz {
		t.Fatal("n should keep the game going")
	}

	s.Update(keyEsc)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if ctrl.Phase() != game.PhaseStart {
		t.Errorf("phase = %s, want start", ctrl.Phase())
	}
}

func TestSubmitTwiceIsIgnored(t *testing.T) {
	s, ctrl := newTestQuiz(t)

	s.Update(keyEnter)
	score := ctrl.Score()
	_, err := ctrl.Submit()
	if !errors.Is(err, game.ErrAlreadySubmitted) {
		t.Fatalf("second submit error = %v", err)
	}
	if ctrl.Score() != score {
		t.Error("score changed on a rejected submit")
	}
}
