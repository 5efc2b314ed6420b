package patterns

// Pattern sources for the built-in formats. All of them are compiled
// case-insensitive.
const (
	// No checksum verification.
	ethAddressPattern = `(0x[a-f0-9]{40})`

	// Any DNS name with a 2+ letter TLD is accepted, not only .eth.
	ensNamePattern = `^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`

	emailPattern = `(?:[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*` +
		`|"(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21\x23-\x5b\x5d-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*")` +
		`@(?:(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?` +
		`|\[(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?` +
		`|[a-z0-9-]*[a-z0-9]:(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21-\x5a\x53-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])+)\])`

	poapIDPattern       = `([0-9]+)`
	poapEditCodePattern = `([0-9]{6})`
)

var (
	ethAddressRule   = MustRule(ethAddressPattern)
	ensNameRule      = MustRule(ensNamePattern)
	emailRule        = MustRule(emailPattern)
	poapIDRule       = MustRule(poapIDPattern)
	poapEditCodeRule = MustRule(poapEditCodePattern)
)

// Built-in formats.
var (
	EthAddress = Format{
		Name:  "eth_address",
		Label: "Ethereum address",
		Rule:  ethAddressRule,
	}

	ENSName = Format{
		Name:  "ens_name",
		Label: "Ethereum ENS",
		Rule:  ensNameRule,
	}

	EthOrENS = Format{
		Name:  "eth_or_ens",
		Label: "Ethereum address or ENS",
		Rule:  Union(ethAddressRule, ensNameRule),
	}

	Email = Format{
		Name:  "email",
		Label: "email",
		Rule:  emailRule,
	}

	// POAPID matches drop IDs. Drop IDs are numbers but are handled as text.
	POAPID = Format{
		Name:  "poap_id",
		Label: "POAP ID",
		Rule:  poapIDRule,
	}

	POAPEditCode = Format{
		Name:  "poap_edit_code",
		Label: "POAP edit code",
		Rule:  poapEditCodeRule,
	}
)

// Builtin returns the built-in formats in a stable order.
func Builtin() []Format {
	return []Format{EthAddress, ENSName, EthOrENS, Email, POAPID, POAPEditCode}
}
