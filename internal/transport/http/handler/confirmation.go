package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/learnnect/otp-backend/internal/application/confirmation"
	"github.com/learnnect/otp-backend/internal/domain"
)

// ConfirmationHandler handles the transactional confirmation-email endpoint.
type ConfirmationHandler struct {
	svc        confirmation.Service
	production bool
}

func NewConfirmationHandler(svc confirmation.Service, production bool) *ConfirmationHandler {
	return &ConfirmationHandler{svc: svc, production: production}
}

type sendConfirmationRequest struct {
	Type string              `json:"type"`
	To   string              `json:"to"`
	Data domain.TemplateData `json:"data"`
}

// Send serves POST /api/send-confirmation.
func (h *ConfirmationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendConfirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Type == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, "Type and recipient email are required")
		return
	}
	emailType, err := domain.ParseEmailType(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid email type")
		return
	}

	dispatch, err := h.svc.Send(r.Context(), emailType, req.To, req.Data)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			writeError(w, http.StatusBadRequest, "Invalid email type")
			return
		}
		slog.Error("failed to send confirmation email", "type", req.Type, "to", req.To, "err", err)
		writeJSON(w, http.StatusInternalServerError, Envelope{
			Message: "Failed to send confirmation email",
			Error:   detail(err, h.production),
		})
		return
	}

	msg := "Confirmation email sent successfully"
	if dispatch.Skipped {
		msg += " (development mode)"
	}
	writeJSON(w, http.StatusOK, Envelope{
		Success:     true,
		Message:     msg,
		EmailID:     dispatch.EmailID,
		Development: dispatch.Skipped,
	})
}
