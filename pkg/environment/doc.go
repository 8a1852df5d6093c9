// Package environment defines the application environment values used across
// signupkit and helpers to classify them.
//
// The environment gates behavior such as the development-only email
// auto-validation backdoor in the signup service, so parsing is deliberately
// conservative: anything unrecognized is treated as production.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsDevelopment() {
//	    // development-only behavior
//	}
package environment
