package api

import (
	"net/http"
)

type scorePasswordRequest struct {
	Password string `json:"password"`
}

func (s *Server) handleScorePassword(w http.ResponseWriter, r *http.Request) {
	var req scorePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, s.PasswordService.Score(r.Context(), req.Password))
}
