package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided configuration struct from environment variables
// based on `env` field tags.
//
// The first call attempts to load a .env file from the working directory so
// local development does not require exporting variables manually. A missing
// .env file is not an error.
//
// Example:
//
//	type SignupConfig struct {
//		Protocol   string `env:"APP_PROTOCOL" envDefault:"https"`
//		Host       string `env:"APP_HOST,required"`
//		PublicPort int    `env:"APP_PUBLIC_PORT" envDefault:"443"`
//	}
//
//	var cfg SignupConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
