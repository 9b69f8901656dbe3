package app

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/menu"
	"github.com/abhisek/menuquiz/internal/router"
)

func newTestModel(t *testing.T, skipSplash bool) (AppModel, *game.Controller) {
	t.Helper()
	ds, err := menu.Default()
	if err != nil {
		t.Fatalf("default menu: %v", err)
	}
	ctrl, err := game.New(game.Options{Dataset: ds, Rand: rand.New(rand.NewPCG(5, 6))})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return newAppModel(Options{Controller: ctrl, SkipSplash: skipSplash}), ctrl
}

func TestSkipSplashOpensStart(t *testing.T) {
	m, _ := newTestModel(t, true)
	if got := m.router.Active().Title(); got != "New Game" {
		t.Errorf("active title = %q, want New Game", got)
	}
}

func TestSplashReplacedByStart(t *testing.T) {
	m, _ := newTestModel(t, false)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd == nil {
		t.Fatal("expected the splash to transition")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	m.Update(msg)
	if got := m.router.Active().Title(); got != "New Game" {
		t.Errorf("active title = %q, want New Game", got)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestHeaderShowsScoreAndDifficulty(t *testing.T) {
	m, _ := newTestModel(t, true)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := updated.(AppModel).render()
	if !strings.Contains(out, "MEDIUM") || !strings.Contains(out, "0 pts") {
		t.Errorf("header missing difficulty or score:\n%s", out)
	}
}

func TestTooSmall(t *testing.T) {
	m, _ := newTestModel(t, true)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(updated.(AppModel).render(), "doesn't fit") {
		t.Error("expected the minimum size message")
	}
}
