package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sarthakenterprise/internal/config"
	"sarthakenterprise/internal/whatsapp"
)

// SiteHandler exposes the public site configuration so the client form
// and the WhatsApp channel share one server-declared source.
type SiteHandler struct {
	cfg *config.Config
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(cfg *config.Config) *SiteHandler {
	return &SiteHandler{cfg: cfg}
}

// RegisterRoutes registers site routes
func (h *SiteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/config", h.handleConfig)
}

type siteConfigResponse struct {
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	WhatsApp     string `json:"whatsapp"`
	WhatsAppLink string `json:"whatsappLink"`
}

func (h *SiteHandler) handleConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, siteConfigResponse{
		Company:      h.cfg.App.Name,
		Email:        h.cfg.Contact.Email,
		Phone:        h.cfg.Contact.Phone,
		Address:      h.cfg.Contact.Address,
		WhatsApp:     h.cfg.WhatsApp.Number,
		WhatsAppLink: whatsapp.DeepLink(h.cfg.WhatsApp.Number, "Hello, I would like to know more about your machinery."),
	})
}
