package sanitizer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("input is not valid")

	// ErrNilRule is returned when no matching rule is supplied.
	ErrNilRule = errors.New("sanitizer: nil rule")
)

// ValidationError reports input that does not match its format rule.
type ValidationError struct {
	Label string
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s input %s is not valid", e.Label, e.Input)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
