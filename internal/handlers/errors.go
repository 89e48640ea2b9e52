package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable error
	// default: pet not found
	Message string `json:"message"`

	// Every field violation, for validation failures
	Details []string `json:"details,omitempty"`
}

// MessageResponse is the body of requests that only report success
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError maps err onto its status code. Errors outside the taxonomy are
// logged and reported as a generic server error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *apperrors.ValidationError

	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid id"})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Message: strings.Join(verr.Violations, "; "),
			Details: verr.Violations,
		})
	case errors.Is(err, apperrors.ErrAuthentication):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Message: publicMessage(err, apperrors.ErrAuthentication)})
	case errors.Is(err, apperrors.ErrAuthorization):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Message: publicMessage(err, apperrors.ErrAuthorization)})
	case errors.Is(err, apperrors.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: publicMessage(err, apperrors.ErrNotFound)})
	case errors.Is(err, apperrors.ErrConflict):
		writeJSON(w, http.StatusConflict, ErrorResponse{Message: publicMessage(err, apperrors.ErrConflict)})
	default:
		logger.Log.Errorw("internal server error", "method", r.Method, "uri", r.RequestURI, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: internalErrorMessage})
	}
}

// publicMessage drops everything up to the error class, so that
// "schedule: conflict: pet is not available" is reported as "pet is not available".
func publicMessage(err, class error) string {
	msg := err.Error()
	prefix := class.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

func writeBadBody(w http.ResponseWriter, err error) {
	logger.Log.Infow("invalid request body", "error", err)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
}

// parseID reads the {id} path parameter.
func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidID
	}
	return id, nil
}
