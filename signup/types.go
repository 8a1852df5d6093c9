package signup

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/signupkit/pkg/clientip"
)

// Notification event kinds dispatched by the service.
const (
	// EventSignup is sent right after an account is registered.
	EventSignup = "signup"
	// EventResendValidation is sent when a user asks for a fresh
	// verification email.
	EventResendValidation = "resend-validation"
)

// TokenKindEmailValidation is the purpose recorded on verification tokens.
const TokenKindEmailValidation = "email-validation"

// Citizen is a registered end-user account.
type Citizen struct {
	ID             string    `bson:"_id" json:"id"`
	Email          string    `bson:"email" json:"email"`
	FirstName      string    `bson:"first_name" json:"first_name"`
	LastName       string    `bson:"last_name" json:"last_name"`
	Avatar         string    `bson:"avatar" json:"avatar"`
	Reference      string    `bson:"reference,omitempty" json:"reference,omitempty"`
	EmailValidated bool      `bson:"email_validated" json:"email_validated"`
	PasswordHash   []byte    `bson:"password_hash" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// Token is a single-use opaque credential proving control of an email
// address. Its id is the secret embedded in the verification URL; expiry is
// owned by the token store.
type Token struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	Meta      Meta      `json:"meta"`
	CreatedAt time.Time `json:"created_at"`
}

// Meta captures the caller context at token issuance time.
type Meta struct {
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// MetaFromRequest builds issuance metadata from an incoming HTTP request.
func MetaFromRequest(r *http.Request) Meta {
	if r == nil {
		return Meta{}
	}
	return Meta{
		IP:        clientip.GetIP(r),
		UserAgent: r.UserAgent(),
	}
}

// Profile is the submitted signup form data.
type Profile struct {
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Reference string `json:"reference,omitempty"`
}

// VerifyForm is the submitted verification form data.
type VerifyForm struct {
	Token string `json:"token"`
}

// DeliveryReceipt describes a dispatched notification. A nil receipt with a
// nil error means the notifier was disabled and sending was skipped.
type DeliveryReceipt struct {
	Event     string    `json:"event"`
	Recipient string    `json:"recipient"`
	MessageID string    `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
}
