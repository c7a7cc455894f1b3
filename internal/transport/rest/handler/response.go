package handler

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorBody is the uniform error envelope every REST endpoint returns.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("write response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	// Server-side failures get logged; client mistakes do not.
	if status >= http.StatusInternalServerError {
		log.Printf("request failed (%d): %s", status, message)
	}
	writeJSON(w, status, errorBody{Error: message})
}
