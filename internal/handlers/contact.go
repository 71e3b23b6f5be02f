package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"softwarehouse.dev/internal/models"
	"softwarehouse.dev/internal/services"
)

// ContactHandler handles contact-related endpoints
type ContactHandler struct {
	contactService *services.ContactService
	logger         *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contactService: cs, logger: logger}
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := h.contactService.Validate(&msg); len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"errors":  errs,
		})
		return
	}

	if err := h.contactService.Send(r.Context(), msg); err != nil {
		h.logger.Error("contact form send failed", "error", err, "from", msg.Email)
		respondError(w, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully! We will get back to you soon.",
	})
}

// GetInfo handles GET /api/contact/info
func (h *ContactHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, h.contactService.Info())
}
