package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/signupkit/pkg/gravatar"
	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/sanitizer"
	"github.com/dmitrymomot/signupkit/pkg/validator"
)

// Translator resolves message keys to localized user-facing strings.
// Satisfied by *i18n.Translator.
type Translator interface {
	T(lang, key string, args ...string) string
}

// defaultMessages backs the zero-configuration translator so user-facing
// errors read sensibly even when no translation bundle is wired in.
var defaultMessages = map[string]string{
	msgKeyNoUserForEmail: "There's no account matching this email.",
}

type defaultTranslator struct{}

func (defaultTranslator) T(_, key string, _ ...string) string {
	if msg, ok := defaultMessages[key]; ok {
		return msg
	}
	return key
}

// Service orchestrates the citizen store, token store and notifier into the
// three signup use cases. Each use case is a fixed sequence of dependent
// calls that stops at the first failure; the service itself holds no mutable
// state, so a single instance is safe for concurrent use.
type Service struct {
	citizens   CitizenStore
	tokens     TokenStore
	notifier   Notifier
	cfg        Config
	log        *slog.Logger
	translator Translator
}

// Option configures a Service during construction.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTranslator sets the translator used for user-facing error messages.
func WithTranslator(t Translator) Option {
	return func(s *Service) {
		if t != nil {
			s.translator = t
		}
	}
}

// New creates a signup service over the given collaborators.
func New(citizens CitizenStore, tokens TokenStore, notifier Notifier, cfg Config, opts ...Option) *Service {
	s := &Service{
		citizens:   citizens,
		tokens:     tokens,
		notifier:   notifier,
		cfg:        cfg,
		log:        logger.NewDiscard(),
		translator: defaultTranslator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignUp registers a new citizen from the submitted profile and sends the
// verification email.
//
// The avatar is derived deterministically from the email address, and in the
// development environment the account is created with EmailValidated already
// true (see Config.Environment); the verification email is still sent so the
// full flow stays exercisable locally.
//
// On success both the created citizen and the delivery receipt are returned;
// the receipt is nil when the notifier is disabled. When registration
// succeeds but sending fails, the citizen is returned alongside the error
// because the account does exist at that point.
func (s *Service) SignUp(ctx context.Context, profile Profile, meta Meta) (*Citizen, *DeliveryReceipt, error) {
	email := sanitizer.NormalizeEmail(profile.Email)

	if err := validator.Apply(
		validator.ValidEmail("email", email),
		validator.Required("password", profile.Password),
		validator.MinLen("password", profile.Password, 8),
		validator.MaxLen("password", profile.Password, 72),
	); err != nil {
		return nil, nil, err
	}

	citizen := &Citizen{
		Email:     email,
		FirstName: sanitizer.TrimName(profile.FirstName),
		LastName:  sanitizer.TrimName(profile.LastName),
		Reference: profile.Reference,
		Avatar:    gravatar.URL(email),
	}

	if s.cfg.Environment.IsDevelopment() {
		// Development backdoor: skip the verification requirement so local
		// signups work without a mailbox.
		citizen.EmailValidated = true
	}

	if err := s.citizens.RegisterWithPassword(ctx, citizen, profile.Password); err != nil {
		return nil, nil, err
	}

	s.log.DebugContext(ctx, "citizen registered",
		logger.Component("signup"),
		logger.CitizenID(citizen.ID),
		logger.Email(sanitizer.MaskEmail(citizen.Email)),
	)

	receipt, err := s.sendValidationEmail(ctx, citizen, EventSignup, meta)
	if err != nil {
		return citizen, nil, err
	}
	return citizen, receipt, nil
}

// ResendValidationEmail issues a fresh token and verification email for an
// existing account. An unknown address yields a UserFacingError wrapping
// ErrNoUserForEmail with a localized message; previously issued tokens are
// not revoked and remain valid until they expire.
func (s *Service) ResendValidationEmail(ctx context.Context, profile Profile, meta Meta) (*DeliveryReceipt, error) {
	email := sanitizer.NormalizeEmail(profile.Email)

	if err := validator.Apply(
		validator.ValidEmail("email", email),
	); err != nil {
		return nil, err
	}

	citizen, err := s.citizens.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrCitizenNotFound) {
			return nil, &UserFacingError{
				Key:     msgKeyNoUserForEmail,
				Message: s.translator.T(s.cfg.DefaultLanguage, msgKeyNoUserForEmail),
				err:     ErrNoUserForEmail,
			}
		}
		return nil, fmt.Errorf("failed to look up citizen: %w", err)
	}

	return s.sendValidationEmail(ctx, citizen, EventResendValidation, meta)
}

// VerifyEmail consumes a verification token: it marks the owning citizen's
// email as validated, persists the change, deletes the token and returns the
// updated citizen. A second call with the same token fails with
// ErrTokenNotFound because the token is gone.
//
// The mark-validated and delete-token writes are two separate operations
// with no rollback; if deletion fails the citizen stays validated and the
// token stays live until it expires. Accepted consistency gap.
func (s *Service) VerifyEmail(ctx context.Context, form VerifyForm) (*Citizen, error) {
	if err := validator.Apply(
		validator.Required("token", form.Token),
	); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByID(ctx, form.Token)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, fmt.Errorf("no token for id %s: %w", form.Token, err)
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	citizen, err := s.citizens.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load citizen for token %s: %w", token.ID, err)
	}

	citizen.EmailValidated = true
	if err := s.citizens.Save(ctx, citizen); err != nil {
		return nil, fmt.Errorf("failed to save citizen %s: %w", citizen.ID, err)
	}

	if err := s.tokens.Remove(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to remove token %s: %w", token.ID, err)
	}

	s.log.InfoContext(ctx, "email validated",
		logger.Component("signup"),
		logger.CitizenID(citizen.ID),
		logger.TokenID(token.ID),
	)
	return citizen, nil
}

// sendValidationEmail creates a fresh verification token and dispatches the
// notification for it. With the notifier disabled the token is still issued
// but nothing is sent and a nil receipt is returned without error.
func (s *Service) sendValidationEmail(ctx context.Context, citizen *Citizen, event string, meta Meta) (*DeliveryReceipt, error) {
	token, err := s.tokens.CreateEmailValidationToken(ctx, citizen, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation token: %w", err)
	}

	validateURL := s.cfg.ValidationURL(token.ID, citizen.Reference)

	if !s.notifier.Enabled() {
		s.log.DebugContext(ctx, "notifier disabled, skipping validation email",
			logger.Component("signup"),
			logger.Event(event),
			logger.CitizenID(citizen.ID),
		)
		return nil, nil
	}

	receipt, err := s.notifier.Notify(ctx, event, citizen.Email, ValidationEmailData{
		ValidateURL: validateURL,
		FirstName:   citizen.FirstName,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to send validation email",
			logger.Component("signup"),
			logger.Event(event),
			logger.CitizenID(citizen.ID),
			logger.Email(sanitizer.MaskEmail(citizen.Email)),
			logger.Error(err),
		)
		return nil, err
	}

	s.log.DebugContext(ctx, "validation email sent",
		logger.Component("signup"),
		logger.Event(event),
		logger.CitizenID(citizen.ID),
		logger.TokenID(token.ID),
	)
	return receipt, nil
}
