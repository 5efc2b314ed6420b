package httpserver

import (
	"log/slog"
	"time"
)

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		readTimeout:     10 * time.Second,
		writeTimeout:    10 * time.Second,
		idleTimeout:     60 * time.Second,
		shutdownTimeout: 5 * time.Second,
	}
}

// Option configures the HTTP server.
type Option func(*config)

// WithAddr sets the listen address. Empty values are ignored.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithReadTimeout sets the maximum duration for reading a request.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.readTimeout = d
		}
	}
}

// WithWriteTimeout sets the maximum duration for writing a response.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.writeTimeout = d
		}
	}
}

// WithIdleTimeout sets the keep-alive idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.idleTimeout = d
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// WithLogger sets the logger for start and stop messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
