package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// MockResponse is one scripted reply. Err, when set, is returned as is.
// Truncated simulates a completion that hit the token limit.
type MockResponse struct {
	Content   json.RawMessage
	Usage     Usage
	Truncated bool
	Err       error
}

// JSONResponse scripts a reply whose content is v encoded as JSON.
func JSONResponse(v any) MockResponse {
	b, err := json.Marshal(v)
	if err != nil {
		return MockResponse{Err: fmt.Errorf("mock: encode response: %w", err)}
	}
	return MockResponse{Content: b}
}

// MockProvider replays scripted replies in order and records each request.
// Replies pass through the same schema and truncation checks as a real
// provider's.
type MockProvider struct {
	// Fallback answers once the script runs out. When nil the provider
	// reports itself unavailable.
	Fallback func(Request) MockResponse

	mu     sync.Mutex
	script []MockResponse
	Calls  []Request
}

// NewMockProvider creates a provider that replays script.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)

	var next MockResponse
	switch {
	case len(m.script) > 0:
		next, m.script = m.script[0], m.script[1:]
	case m.Fallback != nil:
		next = m.Fallback(req)
	default:
		return nil, &ErrProviderUnavailable{Err: errors.New("mock: script exhausted")}
	}

	if next.Err != nil {
		return nil, next.Err
	}
	stop := StopEnd
	if next.Truncated {
		stop = StopMaxTokens
	}
	return finish(req, next.Content, next.Usage, m.ModelID(), stop)
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse appends to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount returns how many requests have been made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
