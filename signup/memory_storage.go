package signup

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryCitizenStore is an in-memory CitizenStore for tests and local
// development. Not suitable for production use.
type MemoryCitizenStore struct {
	mu         sync.RWMutex
	byID       map[string]*Citizen
	byEmail    map[string]string
	bcryptCost int
}

// NewMemoryCitizenStore creates an empty in-memory citizen store.
func NewMemoryCitizenStore() *MemoryCitizenStore {
	return &MemoryCitizenStore{
		byID:    make(map[string]*Citizen),
		byEmail: make(map[string]string),
	}
}

// RegisterWithPassword implements CitizenStore.
func (s *MemoryCitizenStore) RegisterWithPassword(ctx context.Context, citizen *Citizen, password string) error {
	hash, err := hashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[citizen.Email]; exists {
		return ErrEmailAlreadyTaken
	}

	if citizen.ID == "" {
		citizen.ID = uuid.NewString()
	}
	citizen.PasswordHash = hash
	if citizen.CreatedAt.IsZero() {
		citizen.CreatedAt = time.Now()
	}

	stored := *citizen
	s.byID[citizen.ID] = &stored
	s.byEmail[citizen.Email] = citizen.ID
	return nil
}

// GetByID implements CitizenStore.
func (s *MemoryCitizenStore) GetByID(ctx context.Context, id string) (*Citizen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.byID[id]
	if !ok {
		return nil, ErrCitizenNotFound
	}
	c := *stored
	return &c, nil
}

// GetByEmail implements CitizenStore.
func (s *MemoryCitizenStore) GetByEmail(ctx context.Context, email string) (*Citizen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrCitizenNotFound
	}
	c := *s.byID[id]
	return &c, nil
}

// Save implements CitizenStore.
func (s *MemoryCitizenStore) Save(ctx context.Context, citizen *Citizen) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[citizen.ID]; !ok {
		return ErrCitizenNotFound
	}
	stored := *citizen
	s.byID[citizen.ID] = &stored
	return nil
}

// DefaultTokenTTL bounds how long an unconsumed verification token stays
// valid. A day is forgiving for slow mailboxes while keeping the window on a
// leaked link short.
const DefaultTokenTTL = 24 * time.Hour

// MemoryTokenStore is an in-memory TokenStore for tests and local
// development. Expired tokens are dropped lazily on read.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]*Token
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryTokenStore creates an empty in-memory token store. A ttl of zero
// means DefaultTokenTTL.
func NewMemoryTokenStore(ttl time.Duration) *MemoryTokenStore {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &MemoryTokenStore{
		tokens: make(map[string]*Token),
		ttl:    ttl,
		now:    time.Now,
	}
}

// CreateEmailValidationToken implements TokenStore.
func (s *MemoryTokenStore) CreateEmailValidationToken(ctx context.Context, citizen *Citizen, meta Meta) (*Token, error) {
	token := &Token{
		ID:        newTokenID(),
		UserID:    citizen.ID,
		Kind:      TokenKindEmailValidation,
		Meta:      meta,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *token
	s.tokens[token.ID] = &stored
	return token, nil
}

// GetByID implements TokenStore.
func (s *MemoryTokenStore) GetByID(ctx context.Context, id string) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tokens[id]
	if !ok {
		return nil, ErrTokenNotFound
	}
	if s.now().Sub(stored.CreatedAt) > s.ttl {
		delete(s.tokens, id)
		return nil, ErrTokenNotFound
	}
	t := *stored
	return &t, nil
}

// Remove implements TokenStore.
func (s *MemoryTokenStore) Remove(ctx context.Context, token *Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[token.ID]; !ok {
		return ErrTokenNotFound
	}
	delete(s.tokens, token.ID)
	return nil
}

// Compile-time interface assertions.
var (
	_ CitizenStore = (*MemoryCitizenStore)(nil)
	_ TokenStore   = (*MemoryTokenStore)(nil)
)
