package signup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "signup:token:"

// RedisTokenStore keeps verification tokens in Redis. The key TTL is the
// expiry policy: unconsumed tokens disappear on their own and a consumed
// token is deleted explicitly, which makes replays indistinguishable from
// expiry (both surface as ErrTokenNotFound).
type RedisTokenStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisTokenStoreOption configures a RedisTokenStore.
type RedisTokenStoreOption func(*RedisTokenStore)

// WithTokenTTL overrides DefaultTokenTTL for issued tokens.
func WithTokenTTL(ttl time.Duration) RedisTokenStoreOption {
	return func(s *RedisTokenStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewRedisTokenStore creates a token store on the given Redis client.
func NewRedisTokenStore(client redis.UniversalClient, opts ...RedisTokenStoreOption) *RedisTokenStore {
	s := &RedisTokenStore{client: client, ttl: DefaultTokenTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateEmailValidationToken implements TokenStore.
func (s *RedisTokenStore) CreateEmailValidationToken(ctx context.Context, citizen *Citizen, meta Meta) (*Token, error) {
	token := &Token{
		ID:        newTokenID(),
		UserID:    citizen.ID,
		Kind:      TokenKindEmailValidation,
		Meta:      meta,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(token)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := s.client.Set(ctx, tokenKeyPrefix+token.ID, data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

// GetByID implements TokenStore.
func (s *RedisTokenStore) GetByID(ctx context.Context, id string) (*Token, error) {
	data, err := s.client.Get(ctx, tokenKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}
	return &token, nil
}

// Remove implements TokenStore.
func (s *RedisTokenStore) Remove(ctx context.Context, token *Token) error {
	deleted, err := s.client.Del(ctx, tokenKeyPrefix+token.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	if deleted == 0 {
		return ErrTokenNotFound
	}
	return nil
}

var _ TokenStore = (*RedisTokenStore)(nil)
