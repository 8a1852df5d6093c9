package signup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const citizensCollection = "citizens"

// MongoCitizenStore persists citizens in a MongoDB collection.
type MongoCitizenStore struct {
	collection *mongo.Collection
	bcryptCost int
}

// MongoCitizenStoreOption configures a MongoCitizenStore.
type MongoCitizenStoreOption func(*MongoCitizenStore)

// WithMongoBcryptCost overrides the bcrypt cost used when registering
// citizens with a password.
func WithMongoBcryptCost(cost int) MongoCitizenStoreOption {
	return func(s *MongoCitizenStore) { s.bcryptCost = cost }
}

// NewMongoCitizenStore creates a citizen store backed by the "citizens"
// collection of the given database.
func NewMongoCitizenStore(db *mongo.Database, opts ...MongoCitizenStoreOption) *MongoCitizenStore {
	s := &MongoCitizenStore{collection: db.Collection(citizensCollection)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureIndexes creates the unique email index that backs the store's
// uniqueness guarantee. Call once at startup.
func (s *MongoCitizenStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// RegisterWithPassword implements CitizenStore. The email uniqueness check
// rides on the unique index, so concurrent registrations for the same
// address cannot both succeed.
func (s *MongoCitizenStore) RegisterWithPassword(ctx context.Context, citizen *Citizen, password string) error {
	hash, err := hashPassword(password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if citizen.ID == "" {
		citizen.ID = uuid.NewString()
	}
	citizen.PasswordHash = hash
	if citizen.CreatedAt.IsZero() {
		citizen.CreatedAt = time.Now()
	}

	if _, err := s.collection.InsertOne(ctx, citizen); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailAlreadyTaken
		}
		return fmt.Errorf("failed to insert citizen: %w", err)
	}
	return nil
}

// GetByID implements CitizenStore.
func (s *MongoCitizenStore) GetByID(ctx context.Context, id string) (*Citizen, error) {
	var citizen Citizen
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&citizen)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCitizenNotFound
		}
		return nil, fmt.Errorf("failed to load citizen %s: %w", id, err)
	}
	return &citizen, nil
}

// GetByEmail implements CitizenStore. The caller is expected to normalize
// the email first; the store matches exactly.
func (s *MongoCitizenStore) GetByEmail(ctx context.Context, email string) (*Citizen, error) {
	var citizen Citizen
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&citizen)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCitizenNotFound
		}
		return nil, fmt.Errorf("failed to load citizen by email: %w", err)
	}
	return &citizen, nil
}

// Save implements CitizenStore.
func (s *MongoCitizenStore) Save(ctx context.Context, citizen *Citizen) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": citizen.ID}, citizen)
	if err != nil {
		return fmt.Errorf("failed to save citizen %s: %w", citizen.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrCitizenNotFound
	}
	return nil
}

var _ CitizenStore = (*MongoCitizenStore)(nil)
