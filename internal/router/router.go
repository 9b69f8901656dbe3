// Package router keeps the TUI's screen stack. Screens navigate by
// returning the commands below instead of touching the stack directly.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/menuquiz/internal/screen"
)

// PushScreenMsg opens a screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg returns to the previous screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen without growing the stack,
// e.g. quiz -> results.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// HomeMsg unwinds to the first screen.
type HomeMsg struct{}

// Navigate returns a command that pushes s.
func Navigate(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Back returns a command that pops the current screen.
func Back() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Swap returns a command that replaces the current screen with s.
func Swap(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Home returns a command that unwinds to the first screen.
func Home() tea.Cmd {
	return func() tea.Msg { return HomeMsg{} }
}

// Router holds the screen stack. The stack is never empty.
type Router struct {
	stack []screen.Screen
}

// New creates a router showing initial.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Active returns the screen on top.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of stacked screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen. Whichever screen ends up on top after a navigation is
// re-initialised so it can resync with the game state.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		r.stack = append(r.stack, msg.Screen)
	case ReplaceScreenMsg:
		r.stack[len(r.stack)-1] = msg.Screen
	case PopScreenMsg:
		if len(r.stack) == 1 {
			return nil
		}
		r.stack = r.stack[:len(r.stack)-1]
	case HomeMsg:
		if len(r.stack) == 1 {
			return nil
		}
		r.stack = r.stack[:1]
	default:
		updated, cmd := r.Active().Update(msg)
		r.stack[len(r.stack)-1] = updated
		return cmd
	}
	return r.Active().Init()
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
