package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/services"
)

type AuthHandler struct {
	UserService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{UserService: userService}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}

type SignupRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	Skills      []string `json:"skills"`
	Seniority   string   `json:"seniority"`
	MaxCapacity float64  `json:"maxCapacity"`
	Department  string   `json:"department"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.UserService.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{Token: token, User: user.Profile()})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request format")
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Role:        models.Role(req.Role),
		Skills:      req.Skills,
		Seniority:   req.Seniority,
		MaxCapacity: req.MaxCapacity,
		Department:  req.Department,
	}

	if err := h.UserService.RegisterUser(r.Context(), user, req.Password); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "user created")
}
