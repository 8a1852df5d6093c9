package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signupkit/pkg/email"
)

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Verify your email",
		BodyHTML: "<p>hello</p>",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*email.SendEmailParams)
	}{
		{name: "missing recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "" }},
		{name: "invalid recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "not-an-email" }},
		{name: "missing subject", mutate: func(p *email.SendEmailParams) { p.Subject = "  " }},
		{name: "missing body", mutate: func(p *email.SendEmailParams) { p.BodyHTML = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.mutate(&params)
			err := params.Validate()
			assert.ErrorIs(t, err, email.ErrInvalidParams)
		})
	}
}

func TestNewPostmarkClient_ConfigValidation(t *testing.T) {
	t.Parallel()

	validCfg := email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	}

	client, err := email.NewPostmarkClient(validCfg)
	assert.NoError(t, err)
	assert.NotNil(t, client)

	tests := []struct {
		name   string
		mutate func(*email.Config)
	}{
		{name: "missing server token", mutate: func(c *email.Config) { c.PostmarkServerToken = "" }},
		{name: "missing account token", mutate: func(c *email.Config) { c.PostmarkAccountToken = "" }},
		{name: "missing sender", mutate: func(c *email.Config) { c.SenderEmail = "" }},
		{name: "invalid sender", mutate: func(c *email.Config) { c.SenderEmail = "nope" }},
		{name: "missing support", mutate: func(c *email.Config) { c.SupportEmail = "" }},
		{name: "invalid support", mutate: func(c *email.Config) { c.SupportEmail = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validCfg
			tt.mutate(&cfg)
			client, err := email.NewPostmarkClient(cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}
}

func TestMustNewPostmarkClient_PanicsOnInvalidConfig(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		email.MustNewPostmarkClient(email.Config{})
	})
}
