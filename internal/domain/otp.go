package domain

import "time"

// OTPTTL is how long an issued code stays valid.
const OTPTTL = 10 * time.Minute

// MaxOTPAttempts is the number of failed verifications allowed before
// the record is purged.
const MaxOTPAttempts = 3

// Purpose selects which email copy accompanies an OTP.
// It carries no access-control meaning.
type Purpose string

const (
	PurposeSignup       Purpose = "signup"
	PurposeLogin        Purpose = "login"
	PurposeVerification Purpose = "verification"
)

// ParsePurpose maps a request value to a known purpose.
// Unknown or empty values fall back to verification.
func ParsePurpose(s string) Purpose {
	switch Purpose(s) {
	case PurposeSignup, PurposeLogin:
		return Purpose(s)
	default:
		return PurposeVerification
	}
}

// OTPRecord is the live verification state for one recipient email.
// Keyed by the recipient address exactly as received; at most one
// record exists per address at any time.
type OTPRecord struct {
	Code      string
	ExpiresAt time.Time
	Attempts  int
	Purpose   Purpose
}

// Expired reports whether the record's TTL has passed at now.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// Exhausted reports whether the record has no failed attempts left.
func (r *OTPRecord) Exhausted() bool {
	return r.Attempts >= MaxOTPAttempts
}
