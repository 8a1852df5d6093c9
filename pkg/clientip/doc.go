// Package clientip extracts the originating client IP address from an HTTP
// request, looking through common proxy headers before falling back to the
// socket address.
//
// The signup service records the extracted IP (together with the User-Agent)
// as issuance metadata on email-verification tokens.
package clientip
