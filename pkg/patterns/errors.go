package patterns

import "errors"

var (
	// ErrUnknownFormat is returned when a format name is not registered.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrDuplicateFormat is returned when registering a name that is already taken.
	ErrDuplicateFormat = errors.New("format already registered")

	// ErrInvalidPattern is returned when a pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidDefinition is returned for formats with a missing name, label or rule.
	ErrInvalidDefinition = errors.New("invalid format definition")
)
