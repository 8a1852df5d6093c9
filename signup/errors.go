package signup

import "errors"

// Store errors. Implementations must return these sentinels (possibly
// wrapped) so the service can tell "absent" apart from "broken".
var (
	ErrCitizenNotFound   = errors.New("citizen not found")
	ErrTokenNotFound     = errors.New("token not found")
	ErrEmailAlreadyTaken = errors.New("email already taken")
)

// Service errors.
var (
	// ErrNoUserForEmail is returned by ResendValidationEmail for unknown
	// addresses. It is always delivered inside a UserFacingError carrying
	// the localized message.
	ErrNoUserForEmail = errors.New("no user for email")
)

// Message keys for localized user-facing errors.
const msgKeyNoUserForEmail = "common.no-user-for-email"

// UserFacingError carries a localized message that is safe to show directly
// to the end user, unlike store or delivery errors which surface as opaque
// internal failures.
type UserFacingError struct {
	// Key is the stable translation key, for programmatic checks and
	// client-side re-translation.
	Key string
	// Message is the text localized for the request's language.
	Message string

	err error
}

func (e *UserFacingError) Error() string { return e.Message }

// Unwrap exposes the underlying sentinel so errors.Is keeps working.
func (e *UserFacingError) Unwrap() error { return e.err }
