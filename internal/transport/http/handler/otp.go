package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/learnnect/otp-backend/internal/application/otp"
	"github.com/learnnect/otp-backend/internal/domain"
)

// OTPHandler handles OTP issuance and verification endpoints.
type OTPHandler struct {
	svc        otp.Service
	production bool
}

func NewOTPHandler(svc otp.Service, production bool) *OTPHandler {
	return &OTPHandler{svc: svc, production: production}
}

type sendOTPRequest struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

// Send serves POST /api/send-otp.
func (h *OTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.Issue(r.Context(), req.Email, domain.ParsePurpose(req.Purpose))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailRequired):
			writeError(w, http.StatusBadRequest, "Email is required")
		case errors.Is(err, domain.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "Invalid email format")
		default:
			slog.Error("failed to send OTP email", "email", req.Email, "err", err)
			writeJSON(w, http.StatusInternalServerError, Envelope{
				Message: "Failed to send OTP email",
				Error:   detail(err, h.production),
			})
		}
		return
	}

	msg := "OTP sent successfully"
	if res.Development {
		msg += " (development mode)"
	}
	writeJSON(w, http.StatusOK, Envelope{
		Success:     true,
		Message:     msg,
		EmailID:     res.EmailID,
		Development: res.Development,
	})
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Verify serves POST /api/verify-otp.
func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res := h.svc.Verify(req.Email, req.OTP)
	if res.Verified {
		writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "OTP verified successfully"})
		return
	}

	switch res.Reason {
	case otp.ReasonMissingFields:
		writeError(w, http.StatusBadRequest, "Email and OTP are required")
	case otp.ReasonNotFound:
		writeError(w, http.StatusBadRequest, "No OTP found for this email")
	case otp.ReasonExpired:
		writeError(w, http.StatusBadRequest, "OTP has expired")
	case otp.ReasonTooManyAttempts:
		writeError(w, http.StatusBadRequest, "Too many failed attempts")
	case otp.ReasonCodeMismatch:
		writeJSON(w, http.StatusBadRequest, Envelope{
			Message:      "Invalid OTP",
			AttemptsLeft: intPtr(res.AttemptsLeft),
		})
	default:
		writeError(w, http.StatusBadRequest, "OTP verification failed")
	}
}

// detail exposes the underlying error only outside production; in
// production the message is generic and the detail goes to the log.
func detail(err error, production bool) string {
	if production {
		return "Something went wrong"
	}
	return err.Error()
}
