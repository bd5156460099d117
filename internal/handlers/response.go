package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/middlewares"
	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/sbilibin2017/date-tracker/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// writeError maps a service error to its HTTP status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrDuplicateUsername):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
	}
	writeErrorMessage(w, status, err.Error())
}

// requireSession returns the session attached by AuthMiddleware or answers 401.
func requireSession(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	session := middlewares.SessionFromContext(r.Context())
	if session == nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return session, true
}

// dateID reads the {id} URL parameter. Anything that is not a positive
// integer cannot name a date and is answered with 404.
func dateID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeErrorMessage(w, http.StatusNotFound, "Date not found")
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
