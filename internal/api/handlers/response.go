package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps an AppError type to its HTTP status
func respondWithAppError(w http.ResponseWriter, err error) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, apperrors.MessageOf(err))
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, apperrors.MessageOf(err))
	case apperrors.ErrorTypeConflict:
		respondWithError(w, http.StatusConflict, apperrors.MessageOf(err))
	case apperrors.ErrorTypeExternal:
		respondWithError(w, http.StatusBadGateway, apperrors.MessageOf(err))
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes the request body into v. An empty body leaves v unchanged.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// loadSession resolves the {sid} path value. It writes the error response
// and returns false when the session does not exist.
func loadSession(w http.ResponseWriter, r *http.Request, sessions *services.SessionService) (*services.Session, *http.Request, bool) {
	sid := r.PathValue("sid")
	if sid == "" {
		respondWithError(w, http.StatusBadRequest, "session ID is required")
		return nil, r, false
	}

	session, err := sessions.Get(r.Context(), sid)
	if err != nil {
		respondWithAppError(w, err)
		return nil, r, false
	}
	return session, r.WithContext(observability.WithSession(r.Context(), sid)), true
}
