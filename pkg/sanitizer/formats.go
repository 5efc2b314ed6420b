package sanitizer

import "github.com/dmitrymomot/web3sanitizer/pkg/patterns"

// Format sanitizes input with the rule and label of f.
func Format(f patterns.Format, input any, opts ...Option) (string, error) {
	return Sanitize(input, f.Label, f.Rule, opts...)
}

// EthAddress validates a 0x-prefixed, 40 hex digit Ethereum address.
// The checksum is not verified; use a dedicated library when that matters.
func EthAddress(input any, opts ...Option) (string, error) {
	return Format(patterns.EthAddress, input, opts...)
}

// ENSName validates an ENS name. Any DNS name with an alphabetic TLD of two or
// more letters is accepted, not only .eth names.
func ENSName(input any, opts ...Option) (string, error) {
	return Format(patterns.ENSName, input, opts...)
}

// EthOrENS accepts either an Ethereum address or an ENS name.
func EthOrENS(input any, opts ...Option) (string, error) {
	return Format(patterns.EthOrENS, input, opts...)
}

// Email validates an email address with an RFC 5322 style grammar, including
// quoted local parts and bracketed IP literals.
func Email(input any, opts ...Option) (string, error) {
	return Format(patterns.Email, input, opts...)
}

// POAPID validates a POAP drop ID. Drop IDs are numeric, but the result is
// returned as text; convert it if a number is needed.
func POAPID(input any, opts ...Option) (string, error) {
	return Format(patterns.POAPID, input, opts...)
}

// POAPEditCode validates a six digit POAP edit code.
func POAPEditCode(input any, opts ...Option) (string, error) {
	return Format(patterns.POAPEditCode, input, opts...)
}

// ByName looks up a format in registry and sanitizes input with it.
// Unknown names return an error wrapping patterns.ErrUnknownFormat.
// A nil registry means the built-in formats.
func ByName(registry *patterns.Registry, name string, input any, opts ...Option) (string, error) {
	if registry == nil {
		registry = patterns.Default()
	}
	f, err := registry.Lookup(name)
	if err != nil {
		return "", err
	}
	return Format(f, input, opts...)
}
