// Package game is the start/quiz/end session state machine. It owns no
// rendering: adapters call the action methods and render View().
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/menuquiz/internal/menu"
	"github.com/abhisek/menuquiz/internal/quiz"
)

// Rejected actions. State is unchanged when one of these is returned.
var (
	ErrWrongPhase         = errors.New("action not allowed in this phase")
	ErrUnknownDifficulty  = errors.New("unknown difficulty")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrNoCategorySelected = errors.New("no category selected")
	ErrNoItems            = errors.New("selected categories contain no items")
	ErrNoActiveQuestion   = errors.New("no active question")
	ErrNoHintsLeft        = errors.New("no hints left")
	ErrNotSubmitted       = errors.New("question not submitted yet")
	ErrAlreadySubmitted   = quiz.ErrSubmitted
)

// Options configures a Controller.
type Options struct {
	// Dataset is required.
	Dataset *menu.Dataset

	// Engine defaults to quiz.NewEngine(quiz.DefaultConfig(), Rand).
	Engine *quiz.Engine

	// Difficulties defaults to quiz.DefaultDifficulties().
	Difficulties quiz.Difficulties

	// Difficulty is the initial selection; defaults to quiz.DefaultDifficulty.
	Difficulty string

	// MaxRounds truncates the shuffled order when > 0.
	MaxRounds int

	// Rand drives the item shuffle. Defaults to a randomly seeded source.
	Rand *rand.Rand

	// Recorder receives session events. Optional.
	Recorder Recorder

	// NewID generates session IDs. Defaults to uuid.NewString.
	NewID func() string
}

// Controller runs one player's session. It is not safe for concurrent use.
type Controller struct {
	dataset      *menu.Dataset
	engine       *quiz.Engine
	difficulties quiz.Difficulties
	maxRounds    int
	rng          *rand.Rand
	rec          Recorder
	newID        func() string

	state State
}

// New validates opts and returns a controller in the start phase.
func New(opts Options) (*Controller, error) {
	if opts.Dataset == nil {
		return nil, errors.New("game: dataset is required")
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Engine == nil {
		opts.Engine = quiz.NewEngine(quiz.DefaultConfig(), opts.Rand)
	}
	if len(opts.Difficulties) == 0 {
		opts.Difficulties = quiz.DefaultDifficulties()
	}
	for _, d := range opts.Difficulties {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}
	if opts.Difficulty == "" {
		opts.Difficulty = quiz.DefaultDifficulty
	}
	if _, ok := opts.Difficulties.Get(opts.Difficulty); !ok {
		return nil, fmt.Errorf("game: %w: %q", ErrUnknownDifficulty, opts.Difficulty)
	}
	if opts.Recorder == nil {
		opts.Recorder = Recorders(nil)
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	c := &Controller{
		dataset:      opts.Dataset,
		engine:       opts.Engine,
		difficulties: opts.Difficulties,
		maxRounds:    opts.MaxRounds,
		rng:          opts.Rand,
		rec:          opts.Recorder,
		newID:        opts.NewID,
	}
	c.state = State{
		ID:         c.newID(),
		Phase:      PhaseStart,
		Difficulty: opts.Difficulty,
	}
	return c, nil
}

// ID returns the current session ID.
func (c *Controller) ID() string { return c.state.ID }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.state.Phase }

// Score returns the cumulative score.
func (c *Controller) Score() int { return c.state.Score }

// Difficulty returns the selected difficulty profile.
func (c *Controller) Difficulty() quiz.Difficulty {
	d, _ := c.difficulties.Get(c.state.Difficulty)
	return d
}

// Difficulties returns the available profiles.
func (c *Controller) Difficulties() quiz.Difficulties {
	return slices.Clone(c.difficulties)
}

// Dataset returns the menu the controller draws from.
func (c *Controller) Dataset() *menu.Dataset { return c.dataset }

// SelectDifficulty chooses the profile for the next game.
func (c *Controller) SelectDifficulty(name string) error {
	if c.state.Phase != PhaseStart {
		return ErrWrongPhase
	}
	if _, ok := c.difficulties.Get(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	c.state.Difficulty = name
	return nil
}

// ToggleCategory adds or removes a category from the selection.
func (c *Controller) ToggleCategory(name string) error {
	if c.state.Phase != PhaseStart {
		return ErrWrongPhase
	}
	if !c.dataset.HasCategory(name) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}

	if i := slices.Index(c.state.Selected, name); i >= 0 {
		c.state.Selected = slices.Delete(c.state.Selected, i, i+1)
		return nil
	}
	c.state.Selected = append(c.state.Selected, name)

	// Keep dataset order so the view is stable.
	order := c.dataset.Categories()
	slices.SortFunc(c.state.Selected, func(a, b string) int {
		return slices.Index(order, a) - slices.Index(order, b)
	})
	return nil
}

// Selected reports whether a category is selected.
func (c *Controller) Selected(name string) bool {
	return slices.Contains(c.state.Selected, name)
}

// CanStart reports whether Start would be accepted.
func (c *Controller) CanStart() bool {
	return c.state.Phase == PhaseStart && len(c.dataset.ItemsIn(c.state.Selected)) > 0
}

// Start shuffles the selected items and opens the first round.
func (c *Controller) Start() error {
	if c.state.Phase != PhaseStart {
		return ErrWrongPhase
	}
	if len(c.state.Selected) == 0 {
		return ErrNoCategorySelected
	}
	items := c.dataset.ItemsIn(c.state.Selected)
	if len(items) == 0 {
		return ErrNoItems
	}

	// rand.Shuffle is Fisher-Yates.
	c.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	if c.maxRounds > 0 && len(items) > c.maxRounds {
		items = items[:c.maxRounds]
	}

	c.state.Order = items
	c.state.Round = 0
	c.state.Score = 0
	c.state.History = nil
	c.state.Phase = PhaseQuiz
	c.openRound()

	c.rec.GameStarted(c.state.ID, c.state.Difficulty, len(items))
	return nil
}

// Question returns the active question, or nil outside the quiz phase.
// Callers must treat it as read-only.
func (c *Controller) Question() *quiz.Question {
	return c.state.Question
}

func (c *Controller) active() (*quiz.Question, error) {
	if c.state.Phase != PhaseQuiz || c.state.Question == nil {
		return nil, ErrNoActiveQuestion
	}
	return c.state.Question, nil
}

// SetGuess records text for ingredient slot i.
func (c *Controller) SetGuess(i int, text string) error {
	q, err := c.active()
	if err != nil {
		return err
	}
	return q.SetGuess(i, text)
}

// RequestHint reveals up to two more ingredients and returns their indices.
func (c *Controller) RequestHint() ([]int, error) {
	q, err := c.active()
	if err != nil {
		return nil, err
	}
	if q.Submitted {
		return nil, ErrAlreadySubmitted
	}
	revealed, ok := c.engine.Hint(q)
	if !ok {
		return nil, ErrNoHintsLeft
	}
	c.rec.HintUsed(c.state.ID, q.Difficulty.Name, len(revealed))
	return revealed, nil
}

// Submit scores the active question and adds the points to the total.
func (c *Controller) Submit() (quiz.Result, error) {
	q, err := c.active()
	if err != nil {
		return quiz.Result{}, err
	}
	if q.Submitted {
		return quiz.Result{}, ErrAlreadySubmitted
	}

	r := c.engine.Submit(q)
	c.state.Score += r.Earned
	c.state.LastResult = &r
	c.state.Toast = toast(r)

	rr := newRoundResult(q, r)
	c.state.History = append(c.state.History, rr)
	c.rec.RoundScored(c.state.ID, rr)
	return r, nil
}

// Continue advances past a submitted round, ending the game after the last.
func (c *Controller) Continue() error {
	q, err := c.active()
	if err != nil {
		return err
	}
	if !q.Submitted {
		return ErrNotSubmitted
	}

	c.state.Round++
	if c.state.Round >= len(c.state.Order) {
		c.state.Phase = PhaseEnd
		c.state.Question = nil
		c.state.LastResult = nil
		c.state.Toast = ""
		c.rec.GameFinished(c.state.ID, c.state.Difficulty, BuildSummary(c.state.History))
		return nil
	}
	c.openRound()
	return nil
}

// Restart returns to the start phase from any phase with a fresh session.
// The difficulty selection is kept.
func (c *Controller) Restart() {
	c.state = State{
		ID:         c.newID(),
		Phase:      PhaseStart,
		Difficulty: c.state.Difficulty,
	}
}

// Summary totals the rounds played so far.
func (c *Controller) Summary() Summary {
	return BuildSummary(c.state.History)
}

func (c *Controller) openRound() {
	d := c.Difficulty()
	c.state.Question = c.engine.NewQuestion(c.state.Order[c.state.Round], d)
	c.state.LastResult = nil
	c.state.Toast = ""
}

func toast(r quiz.Result) string {
	if r.Perfect() {
		return fmt.Sprintf("+%d pts", r.Earned)
	}
	return fmt.Sprintf("%d/%d correct, +%d pts", r.Correct, r.Guessable, r.Earned)
}
