// Package resend dispatches email through the Resend HTTP API.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"golang.org/x/time/rate"

	"github.com/learnnect/otp-backend/internal/config"
	"github.com/learnnect/otp-backend/internal/domain"
	"github.com/learnnect/otp-backend/internal/infrastructure/email"
)

// Gateway sends email via Resend. Outbound calls go through a
// token-bucket limiter so bursts of signups stay under the provider's
// API rate limit instead of failing with 429s.
type Gateway struct {
	client  *resend.Client
	limiter *rate.Limiter
}

// NewGateway builds a Resend-backed gateway. The caller is responsible
// for checking that an API key is configured; an empty key should
// select the development gateway instead.
func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		client: resend.NewClient(cfg.ResendAPIKey),
		// Resend allows 2 requests/second on the default plan.
		limiter: rate.NewLimiter(rate.Limit(2), 2),
	}
}

func (g *Gateway) Send(ctx context.Context, msg email.Message) (email.Dispatch, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return email.Dispatch{}, fmt.Errorf("rate limiter: %w", err)
	}
	sent, err := g.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return email.Dispatch{}, fmt.Errorf("resend: %v: %w", err, domain.ErrDispatch)
	}
	return email.Dispatch{EmailID: sent.Id}, nil
}
