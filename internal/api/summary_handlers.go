package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/models"
)

const maxHistoryLimit = 200

func (s *Server) handleSummaryOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.SummaryService.Overview(r.Context(), chi.URLParam(r, "quizId"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, overview)
}

// handleSummaryHistory accepts ?limit=N and ?since=<RFC 3339 time>.
func (s *Server) handleSummaryHistory(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSummaryFilter(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	records, err := s.SummaryService.History(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"quizId": filter.QuizID, "summaries": records})
}

func parseSummaryFilter(r *http.Request) (models.SummaryFilter, error) {
	filter := models.SummaryFilter{QuizID: chi.URLParam(r, "quizId")}
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxHistoryLimit {
			return filter, errors.NewValidationError("limit", "must be a number between 1 and "+strconv.Itoa(maxHistoryLimit))
		}
		filter.Limit = limit
	}
	if v := q.Get("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.NewValidationError("since", "must be an RFC 3339 time")
		}
		filter.Since = since
	}
	return filter, nil
}
