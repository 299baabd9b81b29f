package domain

import "fmt"

// EmailType is the closed set of transactional confirmation emails.
type EmailType string

const (
	EmailWelcome    EmailType = "welcome"
	EmailContact    EmailType = "contact"
	EmailEnquiry    EmailType = "enquiry"
	EmailNewsletter EmailType = "newsletter"
)

// ParseEmailType maps a request value to a known email type.
func ParseEmailType(s string) (EmailType, error) {
	switch EmailType(s) {
	case EmailWelcome, EmailContact, EmailEnquiry, EmailNewsletter:
		return EmailType(s), nil
	default:
		return "", fmt.Errorf("unknown email type %q: %w", s, ErrBadRequest)
	}
}

// TemplateData carries the variables consumed by the template renderer.
// All fields are optional; templates substitute fallbacks for empty values.
type TemplateData struct {
	Name           string `json:"name"`
	Message        string `json:"message"`
	CourseInterest string `json:"courseInterest"`
}
