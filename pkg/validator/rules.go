package validator

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidEmail validates that a string is a parseable address with a dotted
// domain, the shape expected for deliverable account emails.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}

			domain := parts[1]
			return strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") &&
				!strings.HasSuffix(domain, ".")
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// Required validates that a string is not empty after trimming.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// MinLen validates a minimum string length in bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters", min)},
	}
}

// MaxLen validates a maximum string length in bytes. Passwords are capped at
// 72 bytes by bcrypt, so the signup service applies MaxLen(field, v, 72).
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) <= max },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)},
	}
}
