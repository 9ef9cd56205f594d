package api

import (
	"net/http"

	"github.com/vytor/cyberquest/internal/logger"
)

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady returns 200 when the database answers and quizzes are loaded.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if s.DB != nil {
		if err := s.DB.Health(r.Context()); err != nil {
			log.Warn("readiness check failed - database: %v", err)
			writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
			return
		}
	}
	if s.Catalog == nil || s.Catalog.Len() == 0 {
		log.Warn("readiness check failed - no quizzes loaded")
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "no quizzes loaded"})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":   "ready",
		"quizzes":  s.Catalog.Len(),
		"sessions": s.PlayService.Active(),
	})
}
