package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/services"
)

type ProjectHandler struct {
	Service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: service}
}

// checkRole reads the Role header the auth middleware filled in from the
// token. The mutating routes are also wrapped with the role-gated
// middleware; this is the handler-side half of the same check.
func checkRole(r *http.Request, allowedRoles ...models.Role) error {
	userRole := models.Role(r.Header.Get("Role"))
	for _, role := range allowedRoles {
		if role == userRole {
			return nil
		}
	}
	return fmt.Errorf("access forbidden: user does not have the required role")
}

type CreateProjectRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	EstimatedHours float64  `json:"estimated_hours"`
	Priority       string   `json:"priority"`
	Deadline       string   `json:"deadline"`
}

func (h *ProjectHandler) GetAllProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.GetAllProjects(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, models.RoleManager); err != nil {
		respondMessage(w, http.StatusForbidden, err.Error())
		return
	}

	managerID, err := primitive.ObjectIDFromHex(r.Header.Get("User-ID"))
	if err != nil {
		respondMessage(w, http.StatusForbidden, "invalid token")
		return
	}

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	project := models.Project{
		Name:           req.Name,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		EstimatedHours: req.EstimatedHours,
		Priority:       req.Priority,
		ManagerID:      managerID,
	}

	if req.Deadline != "" {
		deadline, err := parseDate(req.Deadline)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid deadline date")
			return
		}
		project.EndDate = deadline
	}

	projectID, err := h.Service.CreateProject(r.Context(), project)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":      projectID.Hex(),
		"message": "project created",
	})
}
