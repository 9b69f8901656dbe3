package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/menuquiz/internal/game"
)

// RegisterRoutes registers the API routes.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", s.GetMenu)
		r.Get("/difficulties", s.GetDifficulties)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.CreateSession)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.action(func(*game.Controller, *http.Request) error { return nil }))
				r.Delete("/", s.DeleteSession)
				r.Post("/difficulty", s.action(selectDifficulty))
				r.Post("/categories/{name}/toggle", s.action(toggleCategory))
				r.Post("/start", s.action(func(c *game.Controller, _ *http.Request) error { return c.Start() }))
				r.Put("/guesses/{index}", s.action(setGuess))
				r.Post("/hint", s.action(requestHint))
				r.Post("/submit", s.action(submit))
				r.Post("/continue", s.action(func(c *game.Controller, _ *http.Request) error { return c.Continue() }))
				r.Post("/restart", s.action(func(c *game.Controller, _ *http.Request) error {
					c.Restart()
					return nil
				}))
			})
		})
	})
}

type menuCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// GetMenu lists categories and item names. Ingredients are never exposed.
func (s *Server) GetMenu(w http.ResponseWriter, r *http.Request) {
	out := make([]menuCategory, 0)
	for _, name := range s.dataset.Categories() {
		c := menuCategory{Name: name}
		for _, it := range s.dataset.Items(name) {
			c.Items = append(c.Items, it.Name)
		}
		out = append(out, c)
	}
	JSON(w, http.StatusOK, map[string]any{"categories": out})
}

// GetDifficulties lists the available difficulty profiles.
func (s *Server) GetDifficulties(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"difficulties": s.difficulties})
}

type createRequest struct {
	Difficulty string `json:"difficulty"`
}

// CreateSession starts a new isolated session in the start phase.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeOptional(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	id, err := s.sessions.Create()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var view game.View
	err = s.sessions.With(id, func(c *game.Controller) error {
		if req.Difficulty != "" {
			if err := c.SelectDifficulty(req.Difficulty); err != nil {
				return &badRequest{err: err}
			}
		}
		view = c.View()
		return nil
	})
	if err != nil {
		s.sessions.Delete(id)
		s.fail(w, r, err)
		return
	}
	JSON(w, http.StatusCreated, view)
}

// DeleteSession discards a session.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Delete(chi.URLParam(r, "id")) {
		s.fail(w, r, ErrSessionNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// action runs fn on the session named in the URL and responds with its view.
func (s *Server) action(fn func(*game.Controller, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var view game.View
		err := s.sessions.With(chi.URLParam(r, "id"), func(c *game.Controller) error {
			if err := fn(c, r); err != nil {
				return err
			}
			view = c.View()
			return nil
		})
		if err != nil {
			s.fail(w, r, err)
			return
		}
		JSON(w, http.StatusOK, view)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	Error(w, status, err.Error())
}

func selectDifficulty(c *game.Controller, r *http.Request) error {
	var req struct {
		Level string `json:"level"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	return c.SelectDifficulty(req.Level)
}

func toggleCategory(c *game.Controller, r *http.Request) error {
	return c.ToggleCategory(chi.URLParam(r, "name"))
}

func setGuess(c *game.Controller, r *http.Request) error {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return &badRequest{err: fmt.Errorf("invalid index: %w", err)}
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	return c.SetGuess(index, req.Text)
}

func requestHint(c *game.Controller, _ *http.Request) error {
	_, err := c.RequestHint()
	return err
}

func submit(c *game.Controller, _ *http.Request) error {
	_, err := c.Submit()
	return err
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &badRequest{err: fmt.Errorf("invalid request body: %w", err)}
	}
	return nil
}

// decodeOptional is decode but accepts an empty body.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return &badRequest{err: fmt.Errorf("invalid request body: %w", err)}
}
