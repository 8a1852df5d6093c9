// Package validator provides rule-based input validation for signup profile
// data.
//
// Rules are plain closures combined with Apply, which collects every failure
// instead of stopping at the first one so a form can surface all problems at
// once:
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", profile.Email),
//	    validator.Required("password", profile.Password),
//	    validator.MinLen("password", profile.Password, 8),
//	)
//
// The returned error is a ValidationErrors value; callers can assert on it to
// map individual field failures to form fields.
package validator
