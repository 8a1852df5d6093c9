package signup

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signupkit/pkg/email"
)

// Notifier dispatches verification notifications by event kind. A disabled
// notifier is a valid configuration (e.g. CI environments); the service
// skips sending and reports a nil receipt.
type Notifier interface {
	Enabled() bool
	Notify(ctx context.Context, event, recipient string, data ValidationEmailData) (*DeliveryReceipt, error)
}

// ValidationEmailData is the payload rendered into verification emails.
type ValidationEmailData struct {
	ValidateURL string
	FirstName   string
}

// ErrUnknownEvent is returned when no template is registered for an event.
var ErrUnknownEvent = errors.New("unknown notification event")

var defaultTemplates = map[string]struct {
	subject string
	body    string
}{
	EventSignup: {
		subject: "Verify your email address",
		body: `<p>Hi{{if .FirstName}} {{.FirstName}}{{end}},</p>
<p>Thanks for signing up. Please confirm your email address by following the link below:</p>
<p><a href="{{.ValidateURL}}">Verify my email</a></p>
<p>If you did not create this account, you can ignore this message.</p>`,
	},
	EventResendValidation: {
		subject: "Your new verification link",
		body: `<p>Hi{{if .FirstName}} {{.FirstName}}{{end}},</p>
<p>Here is the fresh verification link you asked for:</p>
<p><a href="{{.ValidateURL}}">Verify my email</a></p>
<p>Any previously sent links may stop working once they expire.</p>`,
	},
}

// EmailNotifier implements Notifier on top of an email sender. Constructed
// with a nil sender it reports itself disabled, which lets deployments turn
// off outbound mail with a single configuration switch.
type EmailNotifier struct {
	sender    email.EmailSender
	templates map[string]*template.Template
	subjects  map[string]string
}

// EmailNotifierOption configures an EmailNotifier.
type EmailNotifierOption func(*EmailNotifier) error

// WithEventTemplate registers or replaces the subject and HTML body template
// for an event kind. The body is parsed as html/template with
// ValidationEmailData as its context.
func WithEventTemplate(event, subject, body string) EmailNotifierOption {
	return func(n *EmailNotifier) error {
		tmpl, err := template.New(event).Parse(body)
		if err != nil {
			return fmt.Errorf("failed to parse template for event %q: %w", event, err)
		}
		n.templates[event] = tmpl
		n.subjects[event] = subject
		return nil
	}
}

// NewEmailNotifier creates a notifier that renders per-event templates and
// sends them through the given sender.
func NewEmailNotifier(sender email.EmailSender, opts ...EmailNotifierOption) (*EmailNotifier, error) {
	n := &EmailNotifier{
		sender:    sender,
		templates: make(map[string]*template.Template, len(defaultTemplates)),
		subjects:  make(map[string]string, len(defaultTemplates)),
	}

	for event, def := range defaultTemplates {
		tmpl, err := template.New(event).Parse(def.body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse default template for event %q: %w", event, err)
		}
		n.templates[event] = tmpl
		n.subjects[event] = def.subject
	}

	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Enabled implements Notifier.
func (n *EmailNotifier) Enabled() bool {
	return n.sender != nil
}

// Notify implements Notifier. Delivery failures are wrapped with the event
// kind and recipient so the caller's log line has enough context on its own.
func (n *EmailNotifier) Notify(ctx context.Context, event, recipient string, data ValidationEmailData) (*DeliveryReceipt, error) {
	tmpl, ok := n.templates[event]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, event)
	}

	var body strings.Builder
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render %s email: %w", event, err)
	}

	err := n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   recipient,
		Subject:  n.subjects[event],
		BodyHTML: body.String(),
		Tag:      event,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send %s notification to %s: %w", event, recipient, err)
	}

	return &DeliveryReceipt{
		Event:     event,
		Recipient: recipient,
		MessageID: uuid.NewString(),
		SentAt:    time.Now(),
	}, nil
}

var _ Notifier = (*EmailNotifier)(nil)
