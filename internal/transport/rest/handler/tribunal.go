package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"sybil/internal/model"
	"sybil/internal/repository"
	"sybil/internal/service"
)

// TribunalHandler handles submission/judgment endpoints
type TribunalHandler struct {
	submissionSvc *service.SubmissionService
}

// NewTribunalHandler creates a new tribunal handler
func NewTribunalHandler(submissionSvc *service.SubmissionService) *TribunalHandler {
	return &TribunalHandler{submissionSvc: submissionSvc}
}

// TribunalRequest is the submit body. It is deliberately flexible
// about where the justification text lives; older clients send
// user_input or text instead of reasoning_text.
type TribunalRequest struct {
	ScenarioID      string   `json:"scenario_id"`
	SelectedActions []string `json:"selected_actions"`
	ReasoningText   string   `json:"reasoning_text"`
	UserInput       string   `json:"user_input"`
	Text            string   `json:"text"`
}

// FinalInput returns the first non-empty justification field.
func (r *TribunalRequest) FinalInput() string {
	if r.ReasoningText != "" {
		return r.ReasoningText
	}
	if r.UserInput != "" {
		return r.UserInput
	}
	return r.Text
}

// SubmitResponse is the verdict plus the recorded submission ID.
type SubmitResponse struct {
	SubmissionID string `json:"submissionId"`
	*model.Verdict
}

// Submit handles POST /v1/submit
func (h *TribunalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req TribunalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userText := req.FinalInput()
	if userText == "" {
		writeError(w, http.StatusBadRequest, "No reasoning_text received.")
		return
	}
	log.Printf("Received submission for scenario %q (%d chars)", req.ScenarioID, len(userText))

	selections := make([]model.ActionSelection, 0, len(req.SelectedActions))
	for i, actionID := range req.SelectedActions {
		selections = append(selections, model.ActionSelection{ActionID: actionID, Order: i})
	}

	submission, verdict, err := h.submissionSvc.Submit(r.Context(), req.ScenarioID, selections, userText)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &SubmitResponse{
		SubmissionID: submission.ID,
		Verdict:      verdict,
	})
}

// GetSubmission handles GET /v1/submissions/{id}
func (h *TribunalHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	submission, err := h.submissionSvc.GetSubmission(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "submission not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, submission)
}

// ListSubmissions handles GET /v1/scenarios/{id}/submissions
func (h *TribunalHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	scenarioID := mux.Vars(r)["id"]

	submissions, err := h.submissionSvc.ListByScenario(r.Context(), scenarioID, 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if submissions == nil {
		submissions = []*model.Submission{}
	}

	writeJSON(w, http.StatusOK, submissions)
}
