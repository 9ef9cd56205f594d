package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		// Wrap unknown errors as internal errors
		appErr = errors.NewInternalError(err)
	}

	switch {
	case appErr.Status >= 500:
		log.Error("server error: %v", err)
	case appErr.Code == errors.ErrCodeInvalidState:
		log.Error("invalid state transition: %v", err)
	case appErr.Status >= 400:
		log.Warn("client error: %v", err)
	default:
		log.Debug("error: %v", err)
	}

	message := appErr.Message
	if appErr.Status >= 500 {
		message = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": message,
		},
	}); err != nil {
		log.Error("failed to encode error response: %v", err)
	}
}

func errNotFoundRoute(r *http.Request) error {
	return errors.NewNotFoundError("route", r.URL.Path)
}

func errMethodNotAllowed(r *http.Request) error {
	return &errors.AppError{
		Code:    errors.ErrCodeBadRequest,
		Message: fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path),
		Status:  http.StatusMethodNotAllowed,
	}
}
