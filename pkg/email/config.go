package email

// Config holds email delivery configuration.
// The Postmark tokens are optional to support development environments where
// outbound email is written to disk instead of sent; SenderEmail and
// SupportEmail establish the sender identity and reply-to behavior for all
// outbound mail and are always required.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}
