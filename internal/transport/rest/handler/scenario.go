package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"sybil/internal/model"
	"sybil/internal/repository"
	"sybil/internal/service"
)

// ScenarioHandler handles scenario catalog endpoints
type ScenarioHandler struct {
	scenarioSvc *service.ScenarioService
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(scenarioSvc *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{scenarioSvc: scenarioSvc}
}

// List handles GET /v1/scenarios
func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.scenarioSvc.ListScenarios(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if scenarios == nil {
		scenarios = []*model.Scenario{}
	}

	writeJSON(w, http.StatusOK, scenarios)
}

// Get handles GET /v1/scenarios/{id}
func (h *ScenarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	scenario, err := h.scenarioSvc.GetScenario(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "scenario not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, scenario)
}
