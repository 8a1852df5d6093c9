// Package email provides a provider-agnostic interface for sending the
// transactional emails produced by the signup flow.
//
// Everything is built around the EmailSender interface so the delivery
// provider can be swapped without touching the signup service. Two
// implementations ship with the package:
//
//   - PostmarkClient for production delivery with open/click tracking
//   - DevSender for local development, writing emails to disk
//
// # Usage
//
//	cfg := email.Config{
//	    PostmarkServerToken:  "server-token",
//	    PostmarkAccountToken: "account-token",
//	    SenderEmail:          "noreply@example.com",
//	    SupportEmail:         "support@example.com",
//	}
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//	    // handle configuration error
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "user@example.com",
//	    Subject:  "Verify your email",
//	    BodyHTML: body,
//	    Tag:      "signup",
//	})
//
// In development:
//
//	sender := email.NewDevSender("./email-output")
//
// # Error handling
//
// Sentinel errors (ErrInvalidConfig, ErrInvalidParams, ErrFailedToSendEmail)
// support errors.Is checks; provider errors are joined onto the sentinel.
package email
