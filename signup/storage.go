package signup

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// CitizenStore defines the persistence operations the service needs for
// user accounts.
type CitizenStore interface {
	// RegisterWithPassword persists a new citizen together with a hash of
	// the plaintext password. The store assigns the id and enforces email
	// uniqueness, returning ErrEmailAlreadyTaken on conflict.
	RegisterWithPassword(ctx context.Context, citizen *Citizen, password string) error

	// GetByID returns the citizen with the given id, or ErrCitizenNotFound.
	GetByID(ctx context.Context, id string) (*Citizen, error)

	// GetByEmail returns the citizen with the given (normalized) email, or
	// ErrCitizenNotFound.
	GetByEmail(ctx context.Context, email string) (*Citizen, error)

	// Save persists changes to an existing citizen.
	Save(ctx context.Context, citizen *Citizen) error
}

// TokenStore defines the persistence operations for email-verification
// tokens. Expiry of unconsumed tokens is the store's own concern: the Redis
// implementation uses key TTLs and the in-memory one checks age on read.
type TokenStore interface {
	// CreateEmailValidationToken issues a fresh single-use token bound to
	// the citizen, recording the issuance metadata.
	CreateEmailValidationToken(ctx context.Context, citizen *Citizen, meta Meta) (*Token, error)

	// GetByID returns the live token with the given id, or ErrTokenNotFound.
	GetByID(ctx context.Context, id string) (*Token, error)

	// Remove deletes a consumed token so it cannot be presented twice.
	Remove(ctx context.Context, token *Token) error
}

// hashPassword produces the bcrypt credential stored on a citizen record.
// Shared by store implementations so they all honor the configured cost.
func hashPassword(password string, cost int) ([]byte, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

// newTokenID generates an opaque 64-character hex token id from 32 random
// bytes.
func newTokenID() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
