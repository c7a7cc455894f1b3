package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"sybil/internal/service"
	"sybil/internal/transport/rest/middleware"
	"sybil/internal/transport/ws"
)

// maxPolicyUpload caps the accepted PDF size.
const maxPolicyUpload = 10 << 20 // 10 MiB

// PolicyHandler handles policy ingestion endpoints
type PolicyHandler struct {
	ingestor *service.PolicyIngestor
	hub      *ws.Hub
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(ingestor *service.PolicyIngestor, hub *ws.Hub) *PolicyHandler {
	return &PolicyHandler{
		ingestor: ingestor,
		hub:      hub,
	}
}

// Upload handles POST /v1/upload-policy. The extracted text replaces
// the active policy for every evaluation that follows.
func (h *PolicyHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPolicyUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, "Only .pdf files are allowed.")
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxPolicyUpload))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	chars, err := h.ingestor.LoadPDF(content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	hostID := middleware.GetHostID(r.Context())
	log.Printf("Policy updated by host %s: %d chars from %s", hostID, chars, header.Filename)
	if h.hub != nil {
		h.hub.BroadcastPolicyUpdated(chars)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": fmt.Sprintf("Policy loaded. Length: %d chars.", chars),
	})
}
