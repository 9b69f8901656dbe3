package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/quiz"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// badRequest marks a malformed client input.
type badRequest struct {
	err error
}

func (b *badRequest) Error() string { return b.err.Error() }
func (b *badRequest) Unwrap() error { return b.err }

// statusFor maps handler errors to HTTP status codes.
func statusFor(err error) int {
	var br *badRequest
	switch {
	case errors.As(err, &br), errors.Is(err, quiz.ErrSlotOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTooManySessions):
		return http.StatusServiceUnavailable
	case errors.Is(err, game.ErrWrongPhase),
		errors.Is(err, game.ErrUnknownDifficulty),
		errors.Is(err, game.ErrUnknownCategory),
		errors.Is(err, game.ErrNoCategorySelected),
		errors.Is(err, game.ErrNoItems),
		errors.Is(err, game.ErrNoActiveQuestion),
		errors.Is(err, game.ErrNoHintsLeft),
		errors.Is(err, game.ErrNotSubmitted),
		errors.Is(err, game.ErrAlreadySubmitted),
		errors.Is(err, quiz.ErrSlotRevealed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
