package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const (
	// DefaultBaseURL is the public Gravatar endpoint.
	DefaultBaseURL = "https://gravatar.com/avatar/"

	// defaultFallback requests the "mystery man" silhouette for addresses
	// without a registered avatar.
	defaultFallback = "mm"
	defaultSize     = "200"
)

// Option configures avatar URL generation.
type Option func(*generator)

// WithBaseURL points URL generation at a different avatar endpoint, e.g. a
// self-hosted Libravatar instance. Empty values are ignored.
func WithBaseURL(base string) Option {
	return func(g *generator) {
		if base != "" {
			if !strings.HasSuffix(base, "/") {
				base += "/"
			}
			g.baseURL = base
		}
	}
}

// WithSize sets the requested image size in pixels.
func WithSize(px string) Option {
	return func(g *generator) {
		if px != "" {
			g.size = px
		}
	}
}

type generator struct {
	baseURL string
	size    string
}

// URL derives a deterministic avatar URL for an email address.
//
// The address is trimmed and lowercased before hashing, per the Gravatar
// protocol, so the result is stable for any capitalization of the same
// address. The query string requests a fixed-size image with the mystery-man
// fallback for unregistered addresses.
func URL(email string, opts ...Option) string {
	g := &generator{baseURL: DefaultBaseURL, size: defaultSize}
	for _, opt := range opts {
		opt(g)
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	var b strings.Builder
	b.WriteString(g.baseURL)
	b.WriteString(hex.EncodeToString(sum[:]))
	b.WriteString("?d=")
	b.WriteString(defaultFallback)
	b.WriteString("&size=")
	b.WriteString(g.size)
	return b.String()
}
