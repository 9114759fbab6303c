package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// submitResponse is the JSON body returned by the contact endpoint
type submitResponse struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	Reference   string            `json:"reference,omitempty"`
	WhatsAppURL string            `json:"whatsappUrl,omitempty"`
	Error       string            `json:"error,omitempty"`
	Errors      map[string]string `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, submitResponse{Success: false, Error: message})
}
