package sanitizer

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
)

// Policy decides what a failed match produces.
type Policy uint8

const (
	// FailClosed returns the validation error and no value.
	FailClosed Policy = iota
	// FailOpen logs a warning and returns the normalized value anyway.
	FailOpen
)

func (p Policy) String() string {
	switch p {
	case FailClosed:
		return "fail_closed"
	case FailOpen:
		return "fail_open"
	default:
		return "unknown"
	}
}

// PolicyFromThrow maps a throw-on-fail flag to a Policy.
func PolicyFromThrow(throwOnFail bool) Policy {
	if throwOnFail {
		return FailClosed
	}
	return FailOpen
}

// Option configures a single sanitize call.
type Option func(*options)

type options struct {
	policy Policy
	logger *slog.Logger
	ctx    context.Context
}

func newOptions(opts []Option) *options {
	o := &options{policy: FailClosed}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}
	return o
}

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithThrowOnFail selects FailClosed when true and FailOpen when false.
func WithThrowOnFail(throwOnFail bool) Option {
	return WithPolicy(PolicyFromThrow(throwOnFail))
}

// WithFailOpen is shorthand for WithPolicy(FailOpen).
func WithFailOpen() Option {
	return WithPolicy(FailOpen)
}

// WithLogger sets the channel for fail-open warnings.
// Without it slog.Default() is used; a nil logger discards warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logger.Discard()
		}
		o.logger = l
	}
}

// WithContext passes ctx to the logger, so context extractors can attach
// request-scoped attributes to warnings.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}
