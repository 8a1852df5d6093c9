package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"a@x.com",
		"first.last@sub.example.org",
		"user+tag@example.co",
	}
	for _, email := range valid {
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}

	invalid := []string{
		"",
		"   ",
		"plainstring",
		"@example.com",
		"user@localhost",
		"user@.example.com",
		"user@example.com.",
	}
	for _, email := range invalid {
		assert.Error(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}
}

func TestRequiredAndLengths(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Required("password", "secret")))
	assert.Error(t, validator.Apply(validator.Required("password", "   ")))

	assert.NoError(t, validator.Apply(validator.MinLen("password", "12345678", 8)))
	assert.Error(t, validator.Apply(validator.MinLen("password", "1234567", 8)))

	assert.NoError(t, validator.Apply(validator.MaxLen("password", "short", 72)))
	assert.Error(t, validator.Apply(validator.MaxLen("password", string(make([]byte, 73)), 72)))
}

func TestApply_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.ValidEmail("email", "nope"),
		validator.Required("password", ""),
		validator.Required("firstName", "Jane"),
	)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.True(t, verrs.Has("email"))
	assert.True(t, verrs.Has("password"))
	assert.False(t, verrs.Has("firstName"))
	assert.Contains(t, verrs.Error(), "email")
}
