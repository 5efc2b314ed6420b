// Package config loads process configuration from environment variables and
// optional .env files.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing tagged structs:
//
//	type Config struct {
//	    FailOpen bool   `env:"SANITIZE_FAIL_OPEN" envDefault:"false"`
//	    Patterns string `env:"SANITIZE_PATTERNS_FILE"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
//
// Load reads ./.env when it exists. Explicit files passed to Load must exist.
// Variables already present in the process environment are never overridden
// by file values.
//
// Errors wrap ErrNilPointer, ErrLoadingEnvFile or ErrParsingConfig and can be
// tested with errors.Is.
package config
