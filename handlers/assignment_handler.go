package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/services"
)

type AssignmentHandler struct {
	Service *services.AssignmentService
}

func NewAssignmentHandler(service *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Service: service}
}

type CreateAssignmentRequest struct {
	ProjectID      string  `json:"project_id"`
	EngineerID     string  `json:"engineer_id"`
	AllocatedHours float64 `json:"allocated_hours"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Role           string  `json:"role"`
}

func (h *AssignmentHandler) GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.Service.GetAllAssignments(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, assignments)
}

func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleManager); err != nil {
		respondMessage(w, http.StatusForbidden, err.Error())
		return
	}

	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	projectID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid project_id")
		return
	}

	engineerID, err := primitive.ObjectIDFromHex(req.EngineerID)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid engineer_id")
		return
	}

	assignment := models.Assignment{
		ProjectID:      projectID,
		EngineerID:     engineerID,
		AllocatedHours: req.AllocatedHours,
		Role:           req.Role,
	}

	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid start_date")
			return
		}
		assignment.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid end_date")
			return
		}
		assignment.EndDate = endDate
	}

	assignmentID, err := h.Service.CreateAssignment(r.Context(), assignment)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":      assignmentID.Hex(),
		"message": "assignment created",
	})
}
