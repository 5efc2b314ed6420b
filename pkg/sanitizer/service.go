package sanitizer

import (
	"context"

	"github.com/dmitrymomot/web3sanitizer/pkg/patterns"
)

// Sanitizer binds a format registry to a set of default options.
// The CLI and the HTTP API use it to sanitize by format name.
type Sanitizer struct {
	registry *patterns.Registry
	defaults []Option
}

// New returns a Sanitizer over registry. A nil registry means the built-in
// formats. The defaults are applied before per-call options.
func New(registry *patterns.Registry, defaults ...Option) *Sanitizer {
	if registry == nil {
		registry = patterns.Default()
	}
	return &Sanitizer{registry: registry, defaults: defaults}
}

// Registry returns the underlying registry.
func (s *Sanitizer) Registry() *patterns.Registry {
	return s.registry
}

// Sanitize sanitizes input with the named format.
func (s *Sanitizer) Sanitize(ctx context.Context, format string, input any, opts ...Option) (string, error) {
	all := make([]Option, 0, len(s.defaults)+len(opts)+1)
	all = append(all, s.defaults...)
	all = append(all, WithContext(ctx))
	all = append(all, opts...)
	return ByName(s.registry, format, input, all...)
}

// Evaluate checks input against the named format without applying a policy.
func (s *Sanitizer) Evaluate(format string, input any) (patterns.Format, Result, error) {
	f, err := s.registry.Lookup(format)
	if err != nil {
		return patterns.Format{}, Result{}, err
	}
	return f, Evaluate(input, f.Label, f.Rule), nil
}
