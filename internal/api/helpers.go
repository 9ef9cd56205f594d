package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/logger"
)

const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case stderrors.As(err, &tooLarge):
			return errors.NewBadRequestError("request body too large")
		case stderrors.Is(err, io.EOF):
			return errors.NewBadRequestError("request body is empty")
		default:
			return errors.NewBadRequestError("invalid JSON body: " + err.Error())
		}
	}
	if dec.More() {
		return errors.NewBadRequestError("request body must hold a single JSON object")
	}
	return nil
}
