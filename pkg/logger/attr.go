package logger

import "log/slog"

// Attribute helpers keep log field names consistent across the module.

// Error returns an attribute carrying an error message under the "error" key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Component tags a record with the emitting component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CitizenID tags a record with the acting user account id.
func CitizenID(id string) slog.Attr {
	return slog.String("citizen_id", id)
}

// Email tags a record with the recipient or account email address.
func Email(email string) slog.Attr {
	return slog.String("email", email)
}

// TokenID tags a record with a verification token id.
func TokenID(id string) slog.Attr {
	return slog.String("token_id", id)
}

// Event tags a record with a notification event kind.
func Event(kind string) slog.Attr {
	return slog.String("event", kind)
}
