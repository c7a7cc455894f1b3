package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"sybil/internal/model"
	"sybil/internal/service"
)

// AuthHandler issues host tokens for the privileged surfaces: policy
// upload, submission listings, and the verdict feed.
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /v1/auth/login. A successful login returns the
// bearer token the host-only routes expect.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	resp, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	log.Printf("Host %s logged in", resp.HostID)
	writeJSON(w, http.StatusOK, resp)
}
