// Package email defines the dispatch gateway contract shared by all
// provider implementations, plus the transactional template renderer.
package email

import (
	"context"
	"log/slog"

	"github.com/learnnect/otp-backend/internal/pkg/id"
)

// Message is a single outbound transactional email.
type Message struct {
	From    string // display-name form, e.g. "Acme Support <support@acme.com>"
	To      string
	Subject string
	HTML    string
}

// Dispatch is the outcome of a send: delivered with a provider message
// id, or skipped because no provider is configured (development mode).
// Failures are returned as errors by Gateway.Send.
type Dispatch struct {
	EmailID string
	Skipped bool
}

// Gateway dispatches transactional email through a provider.
type Gateway interface {
	Send(ctx context.Context, msg Message) (Dispatch, error)
}

// DevGateway simulates successful sends when no provider credentials
// are configured. Every send is logged and reported as skipped so the
// surrounding system keeps functioning in development and test
// environments.
type DevGateway struct{}

func NewDevGateway() *DevGateway { return &DevGateway{} }

func (g *DevGateway) Send(_ context.Context, msg Message) (Dispatch, error) {
	emailID := "dev-" + id.New()
	slog.Info("development mode: email not dispatched",
		"to", msg.To, "subject", msg.Subject, "email_id", emailID)
	return Dispatch{EmailID: emailID, Skipped: true}, nil
}
