package handlers

import (
	"net/http"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/services"
)

type UserHandler struct {
	UserService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{UserService: userService}
}

// GetProfile returns the identity projection of the token subject. The
// User-ID header is set by the auth middleware, never by the client.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")
	if userID == "" {
		respondMessage(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	profile, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}
