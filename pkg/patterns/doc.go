// Package patterns holds the matching rules for the input formats understood
// by the sanitizer: Ethereum addresses, ENS names, POAP drop IDs and edit
// codes, and email addresses.
//
// A Rule is an immutable, pre-compiled, case-insensitive regular expression.
// Rules are pure data; the only question one can ask of a Rule is whether a
// piece of text matches it. Matching is unanchored unless the pattern carries
// its own anchors, so `(0x[a-f0-9]{40})` matches an address embedded anywhere
// in the text.
//
// A Format binds a Rule to a machine name (used by the CLI and HTTP API) and a
// human-readable label (used in diagnostics):
//
//	f := patterns.EthAddress
//	f.Name  // "eth_address"
//	f.Label // "Ethereum address"
//	f.Rule.Match("0x0000000000000000000000000000000000000000") // true
//
// # Registry
//
// Registry maps format names to formats. Default returns a registry preloaded
// with the built-in formats; additional formats can be registered directly or
// loaded from a YAML document:
//
//	formats:
//	  - name: sol_address
//	    label: Solana address
//	    pattern: '^[1-9a-hj-np-z]{32,44}$'
//
// A Registry is safe for concurrent use.
package patterns
