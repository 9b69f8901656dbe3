package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/menuquiz/internal/menu"
)

var blt = menu.Item{
	Name:        "BLT",
	Category:    "sandwiches",
	Ingredients: []string{"Bacon", "Lettuce", "Tomato", "Turkey"},
}

func medium() Difficulty {
	d, _ := DefaultDifficulties().Get("medium")
	return d
}

func newTestEngine(seed uint64) *Engine {
	cfg := DefaultConfig()
	cfg.AutoReveal = NewAutoRevealSet("Turkey")
	return NewEngine(cfg, rand.New(rand.NewPCG(seed, seed+1)))
}

func countReveals(q *Question, kind Reveal) int {
	n := 0
	for _, r := range q.Reveals {
		if r == kind {
			n++
		}
	}
	return n
}

func TestNewQuestionBLT(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		e := newTestEngine(seed)
		q := e.NewQuestion(blt, medium())

		assert.Equal(t, "Turkey", q.Blanks[3])
		assert.Equal(t, RevealAuto, q.Reveals[3])
		assert.Equal(t, 1, countReveals(q, RevealPrefill), "seed %d", seed)

		filled := 0
		for i := 0; i < 3; i++ {
			if q.Blanks[i] != "" {
				assert.Equal(t, blt.Ingredients[i], q.Blanks[i])
				filled++
			}
		}
		assert.Equal(t, 1, filled)
		assert.Equal(t, []string{"", "", "", ""}, q.Guesses)
		assert.False(t, q.Submitted)
	}
}

func TestNewQuestionBlankIffRevealed(t *testing.T) {
	e := newTestEngine(7)
	q := e.NewQuestion(blt, Difficulty{Name: "x", PrefillCount: 2, ScoreValue: 1})
	for i := range q.Blanks {
		assert.Equal(t, q.Blanks[i] != "", q.Revealed(i), "slot %d", i)
	}
}

func TestNewQuestionPrefillClamp(t *testing.T) {
	tests := []struct {
		name    string
		prefill int
		want    int
	}{
		{"zero", 0, 0},
		{"partial", 2, 2},
		{"exact", 3, 3},
		{"over", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(3)
			q := e.NewQuestion(blt, Difficulty{Name: "x", PrefillCount: tt.prefill, ScoreValue: 10})
			assert.Equal(t, tt.want, countReveals(q, RevealPrefill))
			assert.Equal(t, 1, countReveals(q, RevealAuto))
		})
	}
}

func TestNewQuestionAllAutoRevealed(t *testing.T) {
	e := newTestEngine(1)
	item := menu.Item{Name: "Turkey Plate", Ingredients: []string{"Turkey", "Turkey"}}
	q := e.NewQuestion(item, medium())
	assert.Equal(t, 0, countReveals(q, RevealPrefill))
	assert.Equal(t, []string{"Turkey", "Turkey"}, q.Blanks)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		guess, truth string
		want         bool
	}{
		{" Cheese ", "cheese", true},
		{"BACON", "Bacon", true},
		{"bacon\t", "Bacon", true},
		{"", "Bacon", false},
		{"   ", "Bacon", false},
		{"Bacon Bits", "Bacon", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.guess, tt.truth); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.guess, tt.truth, got, tt.want)
		}
	}
}

func TestScoreBLTAllCorrect(t *testing.T) {
	e := newTestEngine(11)
	q := e.NewQuestion(blt, medium())

	for i := 0; i < 3; i++ {
		if !q.Revealed(i) {
			require.NoError(t, q.SetGuess(i, "  "+blt.Ingredients[i]+" "))
		}
	}

	r := e.Submit(q)
	assert.Equal(t, 2, r.Correct)
	assert.Equal(t, 2, r.Guessable)
	assert.Equal(t, 20, r.Earned)
	assert.True(t, r.Perfect())
	assert.True(t, q.Submitted)
	assert.Equal(t, blt.Ingredients, q.Blanks)
	for i, s := range q.Statuses {
		assert.Equal(t, StatusCorrect, s, "slot %d", i)
	}
}

func TestScoreBLTBlankWithHint(t *testing.T) {
	e := newTestEngine(11)
	q := e.NewQuestion(blt, medium())
	q.HintsUsed = 1

	r := e.Submit(q)
	assert.Equal(t, 0, r.Correct)
	assert.Equal(t, 2, r.Guessable)
	assert.Equal(t, 0, r.Earned)

	wrong := 0
	for _, s := range q.Statuses {
		if s == StatusWrong {
			wrong++
		}
	}
	assert.Equal(t, 2, wrong)
}

func TestScoreRounding(t *testing.T) {
	three := menu.Item{Name: "Three", Ingredients: []string{"A", "B", "C"}}
	two := menu.Item{Name: "Two", Ingredients: []string{"A", "B"}}

	tests := []struct {
		name      string
		item      menu.Item
		correct   int
		hintsUsed int
		value     float64
		want      int
	}{
		{"rounds down", three, 2, 0, 20, 13},
		{"rounds up", three, 1, 0, 20, 7},
		{"half rounds up", two, 1, 0, 15, 8},
		{"penalty clamps at zero", three, 1, 3, 30, 0},
		{"penalty on perfect", three, 3, 1, 20, 15},
		{"penalty on partial", three, 1, 1, 30, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(Config{HintPenalty: 5}, rand.New(rand.NewPCG(1, 1)))
			q := e.NewQuestion(tt.item, Difficulty{Name: "t", ScoreValue: tt.value, HintsAllowed: 5})
			for i := 0; i < tt.correct; i++ {
				require.NoError(t, q.SetGuess(i, tt.item.Ingredients[i]))
			}
			q.HintsUsed = tt.hintsUsed
			assert.Equal(t, tt.want, e.Score(q).Earned)
		})
	}
}

func TestScoreZeroGuessable(t *testing.T) {
	e := newTestEngine(2)
	q := e.NewQuestion(blt, Difficulty{Name: "easy", PrefillCount: 99, ScoreValue: 10})
	r := e.Submit(q)
	assert.Equal(t, 0, r.Guessable)
	assert.Equal(t, 0, r.Correct)
	assert.Equal(t, 0, r.Earned)
}

func TestScoreIsPure(t *testing.T) {
	e := newTestEngine(4)
	q := e.NewQuestion(blt, medium())
	before := append([]string(nil), q.Blanks...)
	_ = e.Score(q)
	assert.Equal(t, before, q.Blanks)
	assert.False(t, q.Submitted)
}

func TestSubmitIdempotent(t *testing.T) {
	e := newTestEngine(5)
	q := e.NewQuestion(blt, medium())
	for i := 0; i < 3; i++ {
		if !q.Revealed(i) {
			_ = q.SetGuess(i, blt.Ingredients[i])
			break
		}
	}
	first := e.Submit(q)
	second := e.Submit(q)
	assert.Equal(t, first, second)
}

func TestHint(t *testing.T) {
	e := newTestEngine(9)
	item := menu.Item{Name: "Big", Ingredients: []string{"A", "B", "C", "D", "E", "F"}}
	q := e.NewQuestion(item, Difficulty{Name: "t", HintsAllowed: 2, ScoreValue: 10})
	require.NoError(t, q.SetGuess(0, "guess"))

	revealed, ok := e.Hint(q)
	require.True(t, ok)
	assert.Len(t, revealed, 2)
	assert.NotContains(t, revealed, 0)
	for _, i := range revealed {
		assert.Equal(t, RevealHint, q.Reveals[i])
		assert.Equal(t, item.Ingredients[i], q.Blanks[i])
	}
	assert.Equal(t, 1, q.HintsUsed)

	_, ok = e.Hint(q)
	require.True(t, ok)
	assert.Equal(t, 2, q.HintsUsed)
	assert.Equal(t, 4, countReveals(q, RevealHint))

	before := append([]Reveal(nil), q.Reveals...)
	revealed, ok = e.Hint(q)
	assert.False(t, ok)
	assert.Nil(t, revealed)
	assert.Equal(t, 2, q.HintsUsed)
	assert.Equal(t, before, q.Reveals)
}

func TestHintWithNothingLeftStillConsumes(t *testing.T) {
	e := newTestEngine(9)
	q := e.NewQuestion(blt, Difficulty{Name: "t", HintsAllowed: 3, PrefillCount: 5, ScoreValue: 10})

	revealed, ok := e.Hint(q)
	assert.True(t, ok)
	assert.Empty(t, revealed)
	assert.Equal(t, 1, q.HintsUsed)
}

func TestHintRevealsOneWhenOneLeft(t *testing.T) {
	e := newTestEngine(9)
	q := e.NewQuestion(blt, Difficulty{Name: "t", HintsAllowed: 1, PrefillCount: 2, ScoreValue: 10})

	revealed, ok := e.Hint(q)
	require.True(t, ok)
	assert.Len(t, revealed, 1)
}

func TestHintAfterSubmit(t *testing.T) {
	e := newTestEngine(9)
	q := e.NewQuestion(blt, medium())
	e.Submit(q)

	_, ok := e.Hint(q)
	assert.False(t, ok)
	assert.Equal(t, 0, q.HintsUsed)
}

func TestHintedSlotsAreNotGuessable(t *testing.T) {
	e := newTestEngine(13)
	item := menu.Item{Name: "Pair", Ingredients: []string{"A", "B", "C"}}
	q := e.NewQuestion(item, Difficulty{Name: "t", HintsAllowed: 1, ScoreValue: 30})

	revealed, ok := e.Hint(q)
	require.True(t, ok)
	require.Len(t, revealed, 2)

	r := e.Score(q)
	assert.Equal(t, 1, r.Guessable)
	assert.Equal(t, 0, r.Correct)
}

func TestSetGuess(t *testing.T) {
	e := newTestEngine(1)
	q := e.NewQuestion(blt, Difficulty{Name: "t", ScoreValue: 10})

	assert.ErrorIs(t, q.SetGuess(3, "turkey"), ErrSlotRevealed)
	assert.ErrorIs(t, q.SetGuess(-1, "x"), ErrSlotOutOfRange)
	assert.ErrorIs(t, q.SetGuess(4, "x"), ErrSlotOutOfRange)
	require.NoError(t, q.SetGuess(0, "bacon"))
	assert.Equal(t, "bacon", q.Guesses[0])

	e.Submit(q)
	assert.ErrorIs(t, q.SetGuess(1, "x"), ErrSubmitted)
}

func TestDifficulties(t *testing.T) {
	ds := DefaultDifficulties()
	assert.Equal(t, []string{"easy", "medium", "hard"}, ds.Names())

	for _, d := range ds {
		assert.NoError(t, d.Validate())
	}

	hard, ok := ds.Get("hard")
	require.True(t, ok)
	assert.Equal(t, Difficulty{Name: "hard", HintsAllowed: 1, PrefillCount: 0, ScoreValue: 30}, hard)

	ds2 := ds.With(Difficulty{Name: "hard", HintsAllowed: 0, ScoreValue: 50}).
		With(Difficulty{Name: "expert", ScoreValue: 100})
	assert.Equal(t, []string{"easy", "medium", "hard", "expert"}, ds2.Names())
	h, _ := ds2.Get("hard")
	assert.Equal(t, 50.0, h.ScoreValue)
	h, _ = ds.Get("hard")
	assert.Equal(t, 30.0, h.ScoreValue)

	assert.Error(t, Difficulty{Name: "x", ScoreValue: 0}.Validate())
	assert.Error(t, Difficulty{Name: "x", ScoreValue: 1, HintsAllowed: -1}.Validate())
	assert.Error(t, Difficulty{Name: "", ScoreValue: 1}.Validate())
}

func TestDefaultAutoReveal(t *testing.T) {
	s := DefaultAutoReveal()
	assert.Len(t, s, 8)
	assert.True(t, s.Contains("Turkey"))
	assert.False(t, s.Contains("turkey"))
	assert.False(t, s.Contains("Bacon"))
}
