package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one failed rule.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects failures from Apply.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the failing field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]struct{}, len(ve))
	for _, err := range ve {
		if _, ok := seen[err.Field]; !ok {
			fields = append(fields, err.Field)
			seen[err.Field] = struct{}{}
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a single deferred check.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors when any of them fails.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Check == nil || !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors held by err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
