// Package signup implements citizen registration with email verification.
//
// The package is built around three use cases exposed by Service:
//
//   - SignUp registers a new citizen from a submitted profile, derives a
//     gravatar avatar from the email address, issues an opaque verification
//     token and emails the verification link.
//   - ResendValidationEmail issues a fresh token and email for an account
//     that has not completed verification yet.
//   - VerifyEmail consumes a token, marks the owning citizen's email as
//     validated and deletes the token so it cannot be replayed.
//
// Storage and delivery are abstracted behind small consumer-defined
// interfaces (CitizenStore, TokenStore, Notifier). Production deployments
// wire MongoCitizenStore, RedisTokenStore and EmailNotifier; the in-memory
// implementations exist for tests and local development.
//
// Usage:
//
//	store := signup.NewMongoCitizenStore(db)
//	tokens := signup.NewRedisTokenStore(rdb)
//	notifier, err := signup.NewEmailNotifier(sender)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	svc := signup.New(store, tokens, notifier, cfg,
//		signup.WithLogger(log),
//	)
//
//	citizen, receipt, err := svc.SignUp(ctx, signup.Profile{
//		Email:     "jane@example.com",
//		Password:  "correct horse battery staple",
//		FirstName: "Jane",
//	}, signup.MetaFromRequest(r))
//
// Tokens are single-use and expire after DefaultTokenTTL unless the token
// store is configured otherwise. In the development environment new accounts
// are created with EmailValidated already set so local flows do not require
// a mailbox; the verification email is still sent.
package signup
