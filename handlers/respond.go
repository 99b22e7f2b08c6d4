package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/logging"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/services"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondError maps service errors onto the HTTP taxonomy. Anything not
// recognized is a store or library failure and stays a 500 without leaking
// the underlying error to the client.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondMessage(w, http.StatusBadRequest, validationErr.Msg)
	case errors.Is(err, services.ErrEmailTaken):
		respondMessage(w, http.StatusBadRequest, "user already exists")
	case errors.Is(err, services.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, "user not found")
	case errors.Is(err, services.ErrInvalidPassword):
		respondMessage(w, http.StatusUnauthorized, "incorrect password")
	case errors.Is(err, services.ErrProjectNotFound):
		respondMessage(w, http.StatusNotFound, "project not found")
	case errors.Is(err, services.ErrEngineerNotFound):
		respondMessage(w, http.StatusNotFound, "engineer not found")
	default:
		logging.Logger.Errorf("Event ID: INTERNAL_ERROR, Description: Unhandled service error: %v", err)
		respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseDate accepts plain dates the way the dashboard client sends them, and
// full RFC3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
