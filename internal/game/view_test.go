package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewStartPhase(t *testing.T) {
	c, _ := newTestController(t)
	require.NoError(t, c.ToggleCategory("sides"))

	v := c.View()
	assert.Equal(t, PhaseStart, v.Phase)
	assert.True(t, v.CanStart)
	assert.Nil(t, v.Round)
	assert.Nil(t, v.Summary)

	require.Len(t, v.Difficulties, 3)
	assert.True(t, v.Difficulties[1].Selected)
	assert.Equal(t, "medium", v.Difficulties[1].Name)

	require.Len(t, v.Categories, 2)
	assert.Equal(t, CategoryView{Name: "sandwiches", Items: 3}, v.Categories[0])
	assert.Equal(t, CategoryView{Name: "sides", Items: 1, Selected: true}, v.Categories[1])
}

func TestViewHidesUnrevealedIngredients(t *testing.T) {
	c, _ := newTestController(t, func(o *Options) { o.Difficulty = "hard" })
	require.NoError(t, c.ToggleCategory("sides"))
	require.NoError(t, c.Start())

	v := c.View()
	require.NotNil(t, v.Round)
	assert.Equal(t, "Fries", v.Round.Item)
	assert.Equal(t, 1, v.Round.Number)
	assert.Equal(t, 100, v.Round.Progress)
	assert.Equal(t, 1, v.Round.HintsRemaining)
	assert.True(t, v.Round.CanHint)

	for _, s := range v.Round.Slots {
		assert.Empty(t, s.Text)
		assert.True(t, s.Editable)
	}

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "Potato")
}

func TestViewAfterSubmit(t *testing.T) {
	c, _ := newTestController(t, func(o *Options) { o.Difficulty = "hard" })
	require.NoError(t, c.ToggleCategory("sides"))
	require.NoError(t, c.Start())
	require.NoError(t, c.SetGuess(1, "salt"))
	_, err := c.Submit()
	require.NoError(t, err)

	v := c.View()
	require.NotNil(t, v.Round.Result)
	assert.True(t, v.Round.Submitted)
	assert.False(t, v.Round.CanHint)
	assert.Equal(t, "1/2 correct, +15 pts", v.Round.Toast)
	assert.Equal(t, "Potato", v.Round.Slots[0].Text)
	assert.Equal(t, "wrong", v.Round.Slots[0].Status.String())
	assert.Equal(t, "correct", v.Round.Slots[1].Status.String())
	assert.False(t, v.Round.Slots[0].Editable)

	require.NoError(t, c.Continue())
	v = c.View()
	assert.Equal(t, PhaseEnd, v.Phase)
	require.NotNil(t, v.Summary)
	assert.Equal(t, 15, v.Summary.Score)
}

func TestViewProgress(t *testing.T) {
	c, _ := newTestController(t)
	require.NoError(t, c.ToggleCategory("sandwiches"))
	require.NoError(t, c.Start())

	assert.Equal(t, 33, c.View().Round.Progress)
	_, _ = c.Submit()
	require.NoError(t, c.Continue())
	assert.Equal(t, 67, c.View().Round.Progress)
}
