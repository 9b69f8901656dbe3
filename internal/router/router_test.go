package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/menuquiz/internal/screen"
)

type stubScreen struct {
	title string
	inits int
	seen  []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type tickMsg struct{}

func TestNavigate(t *testing.T) {
	start := &stubScreen{title: "start"}
	quiz := &stubScreen{title: "quiz"}
	r := New(start)

	r.Update(Navigate(quiz)())
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "quiz", r.Active().Title())
	assert.Equal(t, 1, quiz.inits)
}

func TestBackReinitsExposedScreen(t *testing.T) {
	start := &stubScreen{title: "start"}
	r := New(start)
	r.Update(Navigate(&stubScreen{title: "quiz"})())

	r.Update(Back()())
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "start", r.Active().Title())
	assert.Equal(t, 1, start.inits)
}

func TestBackAtRootIsNoop(t *testing.T) {
	start := &stubScreen{title: "start"}
	r := New(start)

	assert.Nil(t, r.Update(PopScreenMsg{}))
	assert.Equal(t, 1, r.Depth())
	assert.Zero(t, start.inits)
}

func TestSwap(t *testing.T) {
	r := New(&stubScreen{title: "start"})
	r.Update(Navigate(&stubScreen{title: "quiz"})())

	results := &stubScreen{title: "results"}
	r.Update(Swap(results)())
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "results", r.Active().Title())
	assert.Equal(t, 1, results.inits)
}

func TestHome(t *testing.T) {
	start := &stubScreen{title: "start"}
	r := New(start)
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "quiz"}})
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "results"}})
	require.Equal(t, 3, r.Depth())

	r.Update(Home()())
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "start", r.View(80, 24))
	assert.Equal(t, 1, start.inits)
}

func TestForwardsOtherMessages(t *testing.T) {
	start := &stubScreen{title: "start"}
	quiz := &stubScreen{title: "quiz"}
	r := New(start)
	r.Update(Navigate(quiz)())

	r.Update(tickMsg{})
	assert.Empty(t, start.seen)
	assert.Equal(t, []tea.Msg{tickMsg{}}, quiz.seen)
}
