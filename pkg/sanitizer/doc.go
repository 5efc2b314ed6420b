// Package sanitizer validates raw input against a format rule and returns its
// normalized form: Unicode-lowercased and trimmed.
//
// The generic primitive is Sanitize. It coerces any input to text, matches the
// text against a patterns.Rule and applies a failure policy:
//
//   - FailClosed (default): a mismatch returns "" and a *ValidationError.
//   - FailOpen: a mismatch is logged at WARN level on the injected logger and
//     the normalized value is returned with a nil error.
//
// Matching is unanchored for most built-in rules, so input that merely
// contains a valid value passes. For example "1234567" passes POAPEditCode
// because it contains a six digit run.
//
// # Usage
//
//	addr, err := sanitizer.EthAddress(" 0xDE0B295669a9FD93d5F28D9Ec85E40f4cb697BAe ")
//	// addr == "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae"
//
//	name, _ := sanitizer.ENSName("bad input", sanitizer.WithFailOpen(), sanitizer.WithLogger(log))
//	// name == "bad input", a warning was written to log
//
// Evaluate exposes the policy-free result of a single check:
//
//	res := sanitizer.Evaluate(input, "POAP ID", patterns.POAPID.Rule)
//	if !res.Valid() { ... }
//
// # Error handling
//
// Every *ValidationError matches ErrInvalidInput with errors.Is and carries
// the offending input and the format label. The message reads
// "{label} input {input} is not valid".
//
// All functions are stateless and safe for concurrent use.
package sanitizer
