package signup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/email"
	"github.com/dmitrymomot/signupkit/signup"
)

type fakeSender struct {
	sent []email.SendEmailParams
	err  error
}

func (f *fakeSender) SendEmail(_ context.Context, params email.SendEmailParams) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, params)
	return nil
}

func TestEmailNotifier(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	data := signup.ValidationEmailData{
		ValidateURL: "https://vote.example.org/signup/validate/abc123",
		FirstName:   "Jane",
	}

	t.Run("enabled only with a sender", func(t *testing.T) {
		t.Parallel()

		enabled, err := signup.NewEmailNotifier(&fakeSender{})
		require.NoError(t, err)
		assert.True(t, enabled.Enabled())

		disabled, err := signup.NewEmailNotifier(nil)
		require.NoError(t, err)
		assert.False(t, disabled.Enabled())
	})

	t.Run("renders verification link into body", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		notifier, err := signup.NewEmailNotifier(sender)
		require.NoError(t, err)

		receipt, err := notifier.Notify(ctx, signup.EventSignup, "jane@example.com", data)
		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, signup.EventSignup, receipt.Event)
		assert.Equal(t, "jane@example.com", receipt.Recipient)
		assert.NotEmpty(t, receipt.MessageID)

		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		assert.Equal(t, "jane@example.com", msg.SendTo)
		assert.Equal(t, signup.EventSignup, msg.Tag)
		assert.Contains(t, msg.BodyHTML, data.ValidateURL)
		assert.Contains(t, msg.BodyHTML, "Jane")
		assert.NotEmpty(t, msg.Subject)
	})

	t.Run("resend event uses its own template", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		notifier, err := signup.NewEmailNotifier(sender)
		require.NoError(t, err)

		_, err = notifier.Notify(ctx, signup.EventResendValidation, "jane@example.com", data)
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, signup.EventResendValidation, sender.sent[0].Tag)
		assert.Contains(t, sender.sent[0].BodyHTML, data.ValidateURL)
	})

	t.Run("unknown event", func(t *testing.T) {
		t.Parallel()

		notifier, err := signup.NewEmailNotifier(&fakeSender{})
		require.NoError(t, err)

		_, err = notifier.Notify(ctx, "password-reset", "jane@example.com", data)
		assert.ErrorIs(t, err, signup.ErrUnknownEvent)
	})

	t.Run("delivery failure carries event and recipient", func(t *testing.T) {
		t.Parallel()

		sendErr := errors.New("postmark 422")
		notifier, err := signup.NewEmailNotifier(&fakeSender{err: sendErr})
		require.NoError(t, err)

		_, err = notifier.Notify(ctx, signup.EventSignup, "jane@example.com", data)
		require.ErrorIs(t, err, sendErr)
		assert.Contains(t, err.Error(), signup.EventSignup)
		assert.Contains(t, err.Error(), "jane@example.com")
	})

	t.Run("custom template override", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		notifier, err := signup.NewEmailNotifier(sender,
			signup.WithEventTemplate(signup.EventSignup, "Welcome aboard", `<a href="{{.ValidateURL}}">go</a>`),
		)
		require.NoError(t, err)

		_, err = notifier.Notify(ctx, signup.EventSignup, "jane@example.com", data)
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Welcome aboard", sender.sent[0].Subject)
		assert.Equal(t, `<a href="`+data.ValidateURL+`">go</a>`, sender.sent[0].BodyHTML)
	})

	t.Run("invalid template rejected at construction", func(t *testing.T) {
		t.Parallel()

		_, err := signup.NewEmailNotifier(&fakeSender{},
			signup.WithEventTemplate(signup.EventSignup, "Broken", "{{.Unclosed"),
		)
		assert.Error(t, err)
	})
}
