package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockReplaysScriptThenFallback(t *testing.T) {
	m := NewMockProvider(JSONResponse(map[string]any{"ingredients": []string{"Bacon"}}))
	m.Fallback = func(Request) MockResponse {
		return JSONResponse(map[string]any{"ingredients": []string{"Lettuce"}})
	}
	req := Request{Messages: UserMessage("BLT"), Schema: ingredientsSchema()}

	first, err := m.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ingredients":["Bacon"]}`, string(first.Content))

	second, err := m.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ingredients":["Lettuce"]}`, string(second.Content))
	assert.Equal(t, 2, m.CallCount())
}

func TestMockExhausted(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestMockTruncated(t *testing.T) {
	resp := JSONResponse(map[string]any{"ingredients": []string{"Bacon"}})
	resp.Truncated = true

	_, err := NewMockProvider(resp).Generate(context.Background(), Request{Schema: ingredientsSchema()})
	var mt *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &mt)
}

func TestMockValidatesSchema(t *testing.T) {
	_, err := NewMockProvider(JSONResponse(map[string]any{"ingredients": "Bacon"})).
		Generate(context.Background(), Request{Schema: ingredientsSchema()})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}
