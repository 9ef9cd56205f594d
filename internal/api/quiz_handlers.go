package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/cyberquest/internal/catalog"
	"github.com/vytor/cyberquest/internal/quiz"
)

func (s *Server) handleListQuizzes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{"quizzes": s.Catalog.List()})
}

// handleGetQuiz returns a quiz without its answers or explanations.
func (s *Server) handleGetQuiz(w http.ResponseWriter, r *http.Request) {
	q, err := s.Catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	public := catalog.Quiz{
		ID:          q.ID,
		Title:       q.Title,
		Topic:       q.Topic,
		Description: q.Description,
		Questions:   make([]quiz.Question, len(q.Questions)),
	}
	for i, question := range q.Questions {
		public.Questions[i] = question.Public()
	}
	writeJSON(w, r, http.StatusOK, public)
}
