package signup

import (
	"net/url"
	"strconv"

	"github.com/dmitrymomot/signupkit/pkg/environment"
)

// Config holds the explicitly injected service configuration. The service
// never reads ambient globals; construct the value directly or load it from
// the environment with pkg/config.
type Config struct {
	// Protocol, Host and PublicPort form the externally visible base of the
	// verification URL embedded in emails.
	Protocol   string `env:"APP_PROTOCOL" envDefault:"https"`
	Host       string `env:"APP_HOST,required"`
	PublicPort int    `env:"APP_PUBLIC_PORT" envDefault:"443"`

	// Environment gates the development-only email auto-validation
	// backdoor: in development every new account is created with
	// EmailValidated already true. This is intentional, not a bug - it
	// keeps local signup flows usable without a mailbox.
	Environment environment.Environment `env:"APP_ENV" envDefault:"production"`

	// DefaultLanguage selects the locale for user-facing error messages
	// when the caller does not specify one.
	DefaultLanguage string `env:"APP_DEFAULT_LANGUAGE" envDefault:"en"`
}

// ValidationURL builds the verification link for a token:
//
//	<protocol>://<host>:<publicPort>/signup/validate/<tokenID>[?reference=<reference>]
//
// The reference query parameter is included only when the citizen carries a
// reference tag, so referral attribution survives the email round-trip.
func (c Config) ValidationURL(tokenID, reference string) string {
	host := c.Host
	if c.PublicPort > 0 {
		host = c.Host + ":" + strconv.Itoa(c.PublicPort)
	}

	u := url.URL{
		Scheme: c.Protocol,
		Host:   host,
		Path:   "/signup/validate/" + tokenID,
	}
	if reference != "" {
		u.RawQuery = url.Values{"reference": {reference}}.Encode()
	}
	return u.String()
}
