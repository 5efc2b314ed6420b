package patterns_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/web3sanitizer/pkg/patterns"
)

const (
	lowerAddress = "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae"
	mixedAddress = "0xDE0B295669a9FD93d5F28D9Ec85E40f4cb697BAe"
)

func TestBuiltinRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format patterns.Format
		input  string
		want   bool
	}{
		// Ethereum address
		{"eth lowercase", patterns.EthAddress, lowerAddress, true},
		{"eth mixed case", patterns.EthAddress, mixedAddress, true},
		{"eth uppercase prefix", patterns.EthAddress, "0X" + strings.Repeat("A", 40), true},
		{"eth embedded in text", patterns.EthAddress, "send to " + lowerAddress + " please", true},
		{"eth too short", patterns.EthAddress, "0x1234", false},
		{"eth no prefix", patterns.EthAddress, strings.Repeat("a", 40), false},
		{"eth non-hex", patterns.EthAddress, "0x" + strings.Repeat("g", 40), false},
		{"eth empty", patterns.EthAddress, "", false},
		{"eth full-width digits", patterns.EthAddress, "0x" + strings.Repeat("\uFF11", 40), false},
		{"eth full-width prefix", patterns.EthAddress, "\uFF10x" + strings.Repeat("a", 40), false},
		{"eth kelvin sign", patterns.EthAddress, "0x" + strings.Repeat("a", 39) + "\u212A", false},

		// ENS
		{"ens simple", patterns.ENSName, "vitalik.eth", true},
		{"ens uppercase", patterns.ENSName, "VITALIK.ETH", true},
		{"ens subdomain", patterns.ENSName, "pay.vitalik.eth", true},
		{"ens dns name", patterns.ENSName, "example.co.uk", true},
		{"ens single char label", patterns.ENSName, "a.eth", true},
		{"ens hyphen inside", patterns.ENSName, "my-name.eth", true},
		{"ens leading hyphen", patterns.ENSName, "-abc.eth", false},
		{"ens trailing hyphen", patterns.ENSName, "abc-.eth", false},
		{"ens inner label leading hyphen", patterns.ENSName, "abc.-def.eth", false},
		{"ens no tld", patterns.ENSName, "vitalik", false},
		{"ens one letter tld", patterns.ENSName, "vitalik.e", false},
		{"ens numeric tld", patterns.ENSName, "vitalik.e1", false},
		{"ens 63 char label", patterns.ENSName, strings.Repeat("a", 63) + ".eth", true},
		{"ens 64 char label", patterns.ENSName, strings.Repeat("a", 64) + ".eth", false},
		{"ens surrounding text", patterns.ENSName, "name: vitalik.eth", false},
		{"ens kelvin sign", patterns.ENSName, "vitali\u212A.eth", false},
		{"ens kelvin sign in tld", patterns.ENSName, "vitalik.\u212Aa", false},
		{"ens long s", patterns.ENSName, "pa\u017Fs.eth", false},
		{"ens full-width letters", patterns.ENSName, "\uFF56\uFF49\uFF54\uFF41\uFF4C\uFF49\uFF4B.eth", false},
		{"ens full-width digits", patterns.ENSName, "\uFF11\uFF12\uFF13.eth", false},

		// Ethereum address or ENS
		{"eth or ens address", patterns.EthOrENS, lowerAddress, true},
		{"eth or ens name", patterns.EthOrENS, "vitalik.eth", true},
		{"eth or ens neither", patterns.EthOrENS, "hello world", false},
		{"eth or ens leading hyphen", patterns.EthOrENS, "-abc.eth", false},
		{"eth or ens kelvin sign", patterns.EthOrENS, "vitali\u212A.eth", false},

		// Email
		{"email simple", patterns.Email, "user@example.com", true},
		{"email mixed case", patterns.Email, "User@Example.com", true},
		{"email plus tag", patterns.Email, "user.name+tag@sub.example.co.uk", true},
		{"email quoted local part", patterns.Email, `"john.doe"@example.com`, true},
		{"email ip literal", patterns.Email, "user@[192.168.0.1]", true},
		{"email no at", patterns.Email, "plainaddress", false},
		{"email no local part", patterns.Email, "@example.com", false},
		{"email no domain", patterns.Email, "user@", false},
		{"email dotless domain", patterns.Email, "user@localhost", false},
		{"email long s local part", patterns.Email, "\u017F@example.com", false},
		{"email kelvin sign local part", patterns.Email, "\u212A@example.com", false},
		{"email kelvin sign domain", patterns.Email, "user@\u212A.com", false},
		{"email long s tld", patterns.Email, "user@example.\u017Fe", false},

		// POAP drop ID
		{"poap id digits", patterns.POAPID, "12345", true},
		{"poap id embedded digits", patterns.POAPID, "drop-42", true},
		{"poap id letters", patterns.POAPID, "abc", false},
		{"poap id empty", patterns.POAPID, "", false},

		// POAP edit code
		{"edit code six digits", patterns.POAPEditCode, "123456", true},
		{"edit code five digits", patterns.POAPEditCode, "12345", false},
		// Unanchored: the embedded six digit run matches.
		{"edit code seven digits", patterns.POAPEditCode, "1234567", true},
		{"edit code letters", patterns.POAPEditCode, "abcdef", false},
		{"edit code full-width digits", patterns.POAPEditCode, "\uFF11\uFF12\uFF13\uFF14\uFF15\uFF16", false},
		{"poap id full-width digits", patterns.POAPID, "\uFF14\uFF12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.format.Rule.Match(tt.input))
		})
	}
}

func TestBuiltinOrder(t *testing.T) {
	t.Parallel()

	var names []string
	for _, f := range patterns.Builtin() {
		names = append(names, f.Name)
		assert.NotEmpty(t, f.Label)
		assert.True(t, f.Rule.Match(sampleFor(f.Name)), f.Name)
	}
	assert.Equal(t, []string{
		"eth_address", "ens_name", "eth_or_ens", "email", "poap_id", "poap_edit_code",
	}, names)
}

func sampleFor(name string) string {
	switch name {
	case "eth_address", "eth_or_ens":
		return lowerAddress
	case "ens_name":
		return "vitalik.eth"
	case "email":
		return "user@example.com"
	default:
		return "123456"
	}
}
