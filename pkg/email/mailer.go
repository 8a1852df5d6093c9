package email

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`       // Email address of the recipient
	Subject  string `json:"subject"`       // Subject of the email
	BodyHTML string `json:"body_html"`     // HTML body of the email
	Tag      string `json:"tag,omitempty"` // Optional, e.g. the notification event kind
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks that the parameters describe a sendable email.
func (p SendEmailParams) Validate() error {
	var errs []error
	if p.SendTo == "" || !emailRegex.MatchString(p.SendTo) {
		errs = append(errs, errors.New("SendTo must be a valid email address"))
	}
	if strings.TrimSpace(p.Subject) == "" {
		errs = append(errs, errors.New("Subject is required"))
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		errs = append(errs, errors.New("BodyHTML is required"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidParams}, errs...)...)
	}
	return nil
}
