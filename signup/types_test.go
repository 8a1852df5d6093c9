package signup_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signupkit/signup"
)

func TestMetaFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("captures ip and user agent", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/signup", nil)
		r.RemoteAddr = "203.0.113.7:51234"
		r.Header.Set("User-Agent", "test-agent/1.0")

		meta := signup.MetaFromRequest(r)
		assert.Equal(t, "203.0.113.7", meta.IP)
		assert.Equal(t, "test-agent/1.0", meta.UserAgent)
	})

	t.Run("prefers forwarded header", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/signup", nil)
		r.RemoteAddr = "10.0.0.1:443"
		r.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")

		meta := signup.MetaFromRequest(r)
		assert.Equal(t, "198.51.100.9", meta.IP)
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, signup.Meta{}, signup.MetaFromRequest(nil))
	})
}
