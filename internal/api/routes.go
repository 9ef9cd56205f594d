package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Post("/password/score", s.handleScorePassword)

		r.Get("/quizzes", s.handleListQuizzes)
		r.Get("/quizzes/{id}", s.handleGetQuiz)
		r.Post("/quizzes/{id}/sessions", s.handleStartSession)

		r.Route("/sessions/{sid}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleCloseSession)
			r.Post("/answer", s.handleAnswer)
			r.Post("/advance", s.handleAdvance)
			r.Post("/back", s.handleBack)
			r.Get("/results", s.handleResults)
		})

		r.Get("/summaries/{quizId}", s.handleSummaryOverview)
		r.Get("/summaries/{quizId}/history", s.handleSummaryHistory)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errNotFoundRoute(r))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errMethodNotAllowed(r))
	})
	return r
}
