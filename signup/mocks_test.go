package signup_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/signupkit/signup"
)

type mockCitizenStore struct {
	mock.Mock
}

func (m *mockCitizenStore) RegisterWithPassword(ctx context.Context, citizen *signup.Citizen, password string) error {
	args := m.Called(ctx, citizen, password)
	return args.Error(0)
}

func (m *mockCitizenStore) GetByID(ctx context.Context, id string) (*signup.Citizen, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*signup.Citizen); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCitizenStore) GetByEmail(ctx context.Context, email string) (*signup.Citizen, error) {
	args := m.Called(ctx, email)
	if c, ok := args.Get(0).(*signup.Citizen); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCitizenStore) Save(ctx context.Context, citizen *signup.Citizen) error {
	args := m.Called(ctx, citizen)
	return args.Error(0)
}

type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) CreateEmailValidationToken(ctx context.Context, citizen *signup.Citizen, meta signup.Meta) (*signup.Token, error) {
	args := m.Called(ctx, citizen, meta)
	if t, ok := args.Get(0).(*signup.Token); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenStore) GetByID(ctx context.Context, id string) (*signup.Token, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*signup.Token); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenStore) Remove(ctx context.Context, token *signup.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockNotifier) Notify(ctx context.Context, event, recipient string, data signup.ValidationEmailData) (*signup.DeliveryReceipt, error) {
	args := m.Called(ctx, event, recipient, data)
	if r, ok := args.Get(0).(*signup.DeliveryReceipt); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
