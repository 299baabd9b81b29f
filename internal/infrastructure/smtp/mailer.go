// Package smtp dispatches email through a plain SMTP relay. It exists
// for self-hosted deployments that cannot use a hosted provider.
package smtp

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"

	"github.com/learnnect/otp-backend/internal/config"
	"github.com/learnnect/otp-backend/internal/domain"
	"github.com/learnnect/otp-backend/internal/infrastructure/email"
	"github.com/learnnect/otp-backend/internal/pkg/id"
)

// Gateway implements email.Gateway over net/smtp.
type Gateway struct {
	host     string
	port     string
	username string
	password string
}

func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// Send relays the message synchronously. SMTP has no provider-side
// message id, so a locally generated ULID is returned for log
// correlation. The ctx is accepted for interface symmetry; net/smtp
// offers no cancellation hook.
func (g *Gateway) Send(_ context.Context, msg email.Message) (email.Dispatch, error) {
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		msg.From, msg.To, msg.Subject, msg.HTML)
	addr := fmt.Sprintf("%s:%s", g.host, g.port)

	var auth smtp.Auth
	if g.username != "" {
		auth = smtp.PlainAuth("", g.username, g.password, g.host)
	}

	if err := smtp.SendMail(addr, auth, envelopeAddr(msg.From), []string{msg.To}, []byte(body)); err != nil {
		return email.Dispatch{}, fmt.Errorf("smtp: %v: %w", err, domain.ErrDispatch)
	}
	return email.Dispatch{EmailID: id.New()}, nil
}

// envelopeAddr strips an RFC 5322 display name ("Name <a@b.c>") down to
// the bare address the SMTP envelope requires.
func envelopeAddr(from string) string {
	if a, err := mail.ParseAddress(from); err == nil {
		return a.Address
	}
	return from
}
