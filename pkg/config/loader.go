package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load fills v from the environment. With no files the default .env is read
// if present; otherwise each listed file is loaded and must exist.
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if err := LoadEnv(files...); err != nil {
		return err
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv copies .env file values into the process environment.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		// A missing default .env is fine.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
