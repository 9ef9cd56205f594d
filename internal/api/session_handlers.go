package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/quiz"
	"github.com/vytor/cyberquest/internal/services"
)

type answerRequest struct {
	Value json.RawMessage `json:"value"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.PlayService.Start(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/sessions/"+view.ID)
	writeJSON(w, r, http.StatusCreated, view)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, func(id string) (*services.SessionView, error) {
		return s.PlayService.Get(r.Context(), id)
	})
}

// handleAnswer records {"value": ...}; value is an option index, a list of
// indices, a boolean, or null to clear the answer.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if len(req.Value) == 0 {
		handleError(w, r, errors.NewValidationError("value", "is required"))
		return
	}
	var answer quiz.Answer
	if err := json.Unmarshal(req.Value, &answer); err != nil {
		handleError(w, r, errors.NewInvalidAnswerError(err.Error()))
		return
	}

	s.respondView(w, r, func(id string) (*services.SessionView, error) {
		return s.PlayService.Answer(r.Context(), id, answer)
	})
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, func(id string) (*services.SessionView, error) {
		return s.PlayService.Advance(r.Context(), id)
	})
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, func(id string) (*services.SessionView, error) {
		return s.PlayService.Back(r.Context(), id)
	})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	res, err := s.PlayService.Results(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	if err := s.PlayService.Close(r.Context(), chi.URLParam(r, "sid")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) respondView(w http.ResponseWriter, r *http.Request, fn func(id string) (*services.SessionView, error)) {
	view, err := fn(chi.URLParam(r, "sid"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}
