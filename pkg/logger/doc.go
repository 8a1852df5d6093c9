// Package logger builds configured log/slog loggers and provides attribute
// helpers that keep field names consistent across signupkit components.
//
// Defaults are production-safe (JSON format, INFO level). Environment presets
// switch to human-readable text output at DEBUG level for development:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "signup"),
//	)
//	log.Info("started")
//
// Services default to logger.NewDiscard() so logging is opt-in and tests stay
// quiet unless a logger is injected.
package logger
