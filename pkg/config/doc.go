// Package config loads struct-based configuration from environment variables
// using github.com/caarlos0/env field tags, with transparent .env file support
// for local development via github.com/joho/godotenv.
//
// Every component in signupkit declares its own Config struct (mongo, redis,
// email, signup service) and loads it independently:
//
//	var cfg signup.Config
//	config.MustLoad(&cfg)
//
// The .env file is read at most once per process; real environment variables
// always take precedence over file values.
package config
