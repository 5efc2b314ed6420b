package sanitizer

import (
	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
	"github.com/dmitrymomot/web3sanitizer/pkg/patterns"
)

// Result is the outcome of checking one input against one rule.
// Value is always the normalized text, Err is nil when the input matched.
type Result struct {
	Value string
	Err   error
}

// Valid reports whether the input matched its rule.
func (r Result) Valid() bool {
	return r.Err == nil
}

// Evaluate coerces input to text, matches it against rule and normalizes it.
// It applies no failure policy and has no side effects.
func Evaluate(input any, label string, rule *patterns.Rule) Result {
	if rule == nil {
		return Result{Err: ErrNilRule}
	}

	text := ToText(input)
	res := Result{Value: normalize(text)}
	if !rule.Match(text) {
		res.Err = &ValidationError{Label: label, Input: text}
	}
	return res
}

// Sanitize validates input against rule and returns its normalized form.
//
// When the input does not match, the default FailClosed policy returns "" and
// a *ValidationError. Under FailOpen the same message is logged as a warning
// and the normalized value is returned with a nil error.
func Sanitize(input any, label string, rule *patterns.Rule, opts ...Option) (string, error) {
	res := Evaluate(input, label, rule)
	if res.Valid() {
		return res.Value, nil
	}
	if rule == nil {
		return "", res.Err
	}

	o := newOptions(opts)
	if o.policy != FailOpen {
		return "", res.Err
	}

	o.logger.WarnContext(o.ctx, res.Err.Error(),
		logger.Label(label),
		logger.Input(ToText(input)),
		logger.Policy(o.policy.String()),
	)
	return res.Value, nil
}
