// Package confirmation sends the non-OTP transactional emails
// (welcome, contact, enquiry, newsletter).
package confirmation

import (
	"context"
	"fmt"

	"github.com/learnnect/otp-backend/internal/domain"
	"github.com/learnnect/otp-backend/internal/infrastructure/email"
)

type Service interface {
	Send(ctx context.Context, t domain.EmailType, to string, data domain.TemplateData) (*email.Dispatch, error)
}

type service struct {
	gateway  email.Gateway
	fromAddr string
}

func NewService(gateway email.Gateway, fromAddr string) Service {
	return &service{gateway: gateway, fromAddr: fromAddr}
}

func (s *service) Send(ctx context.Context, t domain.EmailType, to string, data domain.TemplateData) (*email.Dispatch, error) {
	fromName, subject, html, err := email.RenderConfirmation(t, data)
	if err != nil {
		return nil, err
	}
	dispatch, err := s.gateway.Send(ctx, email.Message{
		From:    fmt.Sprintf("%s <%s>", fromName, s.fromAddr),
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return nil, fmt.Errorf("send %s email: %w", t, err)
	}
	return &dispatch, nil
}
