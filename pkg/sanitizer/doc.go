// Package sanitizer normalizes user-submitted profile input before it is
// validated, stored, or logged.
//
// Email normalization is applied by the signup service ahead of every store
// lookup so that "John@Example.COM" and "john@example.com" resolve to the same
// account. MaskEmail exists for log output where the full address would be
// unnecessary PII.
package sanitizer
