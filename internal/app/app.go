// Package app wires the terminal screens around a game controller.
package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/router"
	"github.com/abhisek/menuquiz/internal/screen"
	"github.com/abhisek/menuquiz/internal/screens/end"
	quizscreen "github.com/abhisek/menuquiz/internal/screens/quiz"
	"github.com/abhisek/menuquiz/internal/screens/start"
	"github.com/abhisek/menuquiz/internal/screens/welcome"
	"github.com/abhisek/menuquiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Controller *game.Controller
	Logger     *zap.Logger

	// SkipSplash opens directly on the start screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *game.Controller
	width  int
	height int
}

// screens builds the start, quiz and end screens around one controller.
// The quiz and end screens create each other, so they share factories.
type screens struct {
	ctrl *game.Controller
}

func (s screens) start() screen.Screen { return start.New(s.ctrl, s.quiz) }
func (s screens) quiz() screen.Screen  { return quizscreen.New(s.ctrl, s.end) }
func (s screens) end() screen.Screen   { return end.New(s.ctrl, s.quiz) }

// newAppModel creates the model with the splash or start screen on top.
func newAppModel(opts Options) AppModel {
	sc := screens{ctrl: opts.Controller}

	var first screen.Screen
	if opts.SkipSplash {
		first = sc.start()
	} else {
		first = welcome.New(sc.start)
	}
	return AppModel{
		router: router.New(first),
		ctrl:   opts.Controller,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer.
func (m AppModel) render() string {
	if layout.TooSmall(m.width, m.height) {
		return layout.SizeWarning(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.Header(active.Title(), m.ctrl.Score(), m.ctrl.Difficulty().Name, m.width)
	footer := layout.Footer(screen.Hints(active), m.width)

	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return layout.Frame(header, m.router.View(m.width, bodyHeight), footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	log.Info("tui started", zap.String("session", opts.Controller.ID()))
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		log.Error("tui exited with error", zap.Error(err))
		return err
	}
	log.Info("tui stopped", zap.Int("score", opts.Controller.Score()))
	return nil
}
