// Package logger builds the *slog.Logger instances used as the diagnostic
// channel of the sanitizer, the CLI and the HTTP API.
//
// New assembles a text or JSON slog.Handler from functional options and wraps
// it with ContextHandler, which copies request-scoped values (such as the
// request id set by the API middleware) from context.Context into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "web3sanitizer"),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//
//	_, err := sanitizer.EthAddress(input,
//	    sanitizer.WithFailOpen(),
//	    sanitizer.WithLogger(log),
//	)
//
// Attribute helpers in attr.go (FormatName, Label, Input, Error, ...) keep
// key names consistent across packages. Error returns an empty attribute for
// nil errors, so it can be passed unconditionally.
package logger
