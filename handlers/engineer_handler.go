package handlers

import (
	"net/http"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/services"
)

type EngineerHandler struct {
	Service *services.EngineerService
}

func NewEngineerHandler(service *services.EngineerService) *EngineerHandler {
	return &EngineerHandler{Service: service}
}

func (h *EngineerHandler) GetAllEngineers(w http.ResponseWriter, r *http.Request) {
	engineers, err := h.Service.GetAllEngineers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, engineers)
}
