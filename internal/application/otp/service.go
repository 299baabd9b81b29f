// Package otp orchestrates the one-time-passcode lifecycle: issuing a
// code, dispatching it by email, and verifying submissions against the
// stored record.
package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/learnnect/otp-backend/internal/domain"
	"github.com/learnnect/otp-backend/internal/infrastructure/email"
	"github.com/learnnect/otp-backend/internal/infrastructure/otpstore"
	"github.com/learnnect/otp-backend/internal/pkg/otpgen"
	"github.com/learnnect/otp-backend/internal/pkg/validate"
)

// RejectReason enumerates why a verification was refused.
type RejectReason string

const (
	ReasonMissingFields   RejectReason = "missing_fields"
	ReasonNotFound        RejectReason = "not_found"
	ReasonExpired         RejectReason = "expired"
	ReasonTooManyAttempts RejectReason = "too_many_attempts"
	ReasonCodeMismatch    RejectReason = "code_mismatch"
)

// VerifyResult is the outcome of Verify. When Verified is false, Reason
// says why; AttemptsLeft is meaningful only for ReasonCodeMismatch.
type VerifyResult struct {
	Verified     bool
	Reason       RejectReason
	AttemptsLeft int
}

// IssueResult reports a successful issuance. The code itself travels
// only in the dispatched email and is never echoed to the caller.
type IssueResult struct {
	EmailID     string
	Development bool
}

type Service interface {
	Issue(ctx context.Context, recipient string, purpose domain.Purpose) (*IssueResult, error)
	Verify(recipient, code string) VerifyResult
}

type service struct {
	store    *otpstore.Store
	gateway  email.Gateway
	fromAddr string
}

func NewService(store *otpstore.Store, gateway email.Gateway, fromAddr string) Service {
	return &service{store: store, gateway: gateway, fromAddr: fromAddr}
}

// Issue generates a fresh code for recipient, unconditionally replacing
// any prior record, and dispatches it through the gateway. The record
// is stored before dispatch is attempted, so a slow or failed send
// leaves a verifiable code behind; issuance is not rolled back on send
// failure.
func (s *service) Issue(ctx context.Context, recipient string, purpose domain.Purpose) (*IssueResult, error) {
	if recipient == "" {
		return nil, domain.ErrEmailRequired
	}
	if err := validate.Email(recipient); err != nil {
		return nil, fmt.Errorf("%q: %w", recipient, domain.ErrInvalidEmail)
	}

	code, err := otpgen.New()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	s.store.Put(recipient, domain.OTPRecord{
		Code:      code,
		ExpiresAt: time.Now().Add(domain.OTPTTL),
		Purpose:   purpose,
	})

	subject, html, err := email.RenderOTP(code, purpose)
	if err != nil {
		return nil, fmt.Errorf("render otp email: %w", err)
	}
	// Dispatch happens outside the store lock; the record above stays
	// valid whether or not the send goes through.
	dispatch, err := s.gateway.Send(ctx, email.Message{
		From:    fmt.Sprintf("Learnnect - Support Team <%s>", s.fromAddr),
		To:      recipient,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return nil, fmt.Errorf("send otp email: %w", err)
	}
	return &IssueResult{EmailID: dispatch.EmailID, Development: dispatch.Skipped}, nil
}

// Verify runs the full validation sequence as one atomic transaction
// against the store. Expiry and attempt-exhaustion purge the record
// before the code comparison: an expired or exhausted record is never
// comparable, even when the submitted code happens to match.
func (s *service) Verify(recipient, code string) VerifyResult {
	if recipient == "" || code == "" {
		return VerifyResult{Reason: ReasonMissingFields}
	}

	var res VerifyResult
	now := time.Now()
	s.store.Update(recipient, func(rec *domain.OTPRecord) *domain.OTPRecord {
		switch {
		case rec == nil:
			res = VerifyResult{Reason: ReasonNotFound}
			return nil
		case rec.Expired(now):
			res = VerifyResult{Reason: ReasonExpired}
			return nil
		case rec.Exhausted():
			res = VerifyResult{Reason: ReasonTooManyAttempts}
			return nil
		case rec.Code != code:
			rec.Attempts++
			res = VerifyResult{
				Reason:       ReasonCodeMismatch,
				AttemptsLeft: domain.MaxOTPAttempts - rec.Attempts,
			}
			return rec
		default:
			res = VerifyResult{Verified: true}
			return nil
		}
	})
	return res
}
