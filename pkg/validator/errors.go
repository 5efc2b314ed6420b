package validator

import "errors"

// ErrValidationFailed is the sentinel matched by ValidationErrors.
var ErrValidationFailed = errors.New("validation failed")
