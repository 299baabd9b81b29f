package http

import (
	"time"

	"github.com/learnnect/otp-backend/internal/application/confirmation"
	"github.com/learnnect/otp-backend/internal/application/otp"
)

// Deps holds everything the router needs from the composition root.
type Deps struct {
	OTP          otp.Service
	Confirmation confirmation.Service

	// StartedAt feeds the uptime figure on the health endpoints.
	StartedAt time.Time
	// EmailConfigured reports whether a real dispatch provider is wired,
	// as opposed to development mode.
	EmailConfigured bool
}
