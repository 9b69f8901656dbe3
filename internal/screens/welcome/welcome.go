// Package welcome is the splash shown before the start screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/router"
	"github.com/abhisek/menuquiz/internal/screen"
	"github.com/abhisek/menuquiz/internal/ui/theme"
)

const frameInterval = 100 * time.Millisecond

// stage is how much of the splash has been drawn.
type stage int

const (
	stagePlate stage = iota // just the sandwich
	stageSteam              // steam rising
	stageTitle              // banner, tagline and prompt
)

// Frames at which each stage begins. Animation stops at lastFrame.
const (
	steamFrame = 5
	titleFrame = 15
	lastFrame  = 30
)

const sandwichArt = `    .-~~~~~~~~~-.
   (  .  .  .  . )
   \~~~~~~~~~~~~~/
   |~ ~ ~ ~ ~ ~ ~|
   |#############|
   (_____________)`

var steam = []string{"~ ~ ~", " ~ ~ ", "  ~ ~"}

type frameMsg struct{}

// WelcomeScreen draws the sandwich and banner until a key is pressed.
type WelcomeScreen struct {
	next  func() screen.Screen
	frame int
	done  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a splash that replaces itself with next() on any key.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) stage() stage {
	switch {
	case w.frame >= titleFrame:
		return stageTitle
	case w.frame >= steamFrame:
		return stageSteam
	default:
		return stagePlate
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.frame++
		if w.frame >= lastFrame {
			// Loop inside the title stage so the steam keeps moving.
			w.frame = titleFrame + w.frame%len(steam)
		}
		return w, nextFrame()

	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, router.Swap(w.next())
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var rows []string

	if w.stage() >= stageSteam {
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("     "+steam[w.frame%len(steam)]))
	}
	rows = append(rows, lipgloss.NewStyle().Foreground(theme.Primary).Render(sandwichArt))

	if w.stage() == stageTitle {
		rows = append(rows,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("What's on the sandwich?"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(rows, "\n"))
}
