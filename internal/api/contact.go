package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sarthakenterprise/internal/services"
	"sarthakenterprise/internal/validation"
)

// ContactHandler serves the contact form endpoint
type ContactHandler struct {
	contacts *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// RegisterRoutes registers contact routes
func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

func (h *ContactHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload validation.InquiryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	result, err := h.contacts.Submit(r.Context(), payload)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusBadRequest, submitResponse{
				Success: false,
				Error:   "Validation failed",
				Errors:  vErr.Fields,
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to save your message. Please try again later.")
		return
	}

	respondJSON(w, http.StatusOK, submitResponse{
		Success:     true,
		Message:     result.Message,
		Reference:   result.Reference,
		WhatsAppURL: result.WhatsAppURL,
	})
}
