package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/web3sanitizer/pkg/patterns"
)

// Required fails for values that are empty after trimming.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MatchesFormat checks value against the rule of f. Empty values fail; pair
// with Required only when a distinct message is wanted.
func MatchesFormat(field, value string, f patterns.Format) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && f.Rule.Match(value)
		},
		Error: formatError(field, f),
	}
}

func formatError(field string, f patterns.Format) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be a valid %s", f.Label),
		TranslationKey: "validation." + f.Name,
		TranslationValues: map[string]any{
			"field":  field,
			"format": f.Name,
			"label":  f.Label,
		},
	}
}

func ValidEthAddress(field, value string) Rule {
	return MatchesFormat(field, value, patterns.EthAddress)
}

func ValidENSName(field, value string) Rule {
	return MatchesFormat(field, value, patterns.ENSName)
}

func ValidEthOrENS(field, value string) Rule {
	return MatchesFormat(field, value, patterns.EthOrENS)
}

func ValidEmail(field, value string) Rule {
	return MatchesFormat(field, value, patterns.Email)
}

func ValidPOAPID(field, value string) Rule {
	return MatchesFormat(field, value, patterns.POAPID)
}

func ValidPOAPEditCode(field, value string) Rule {
	return MatchesFormat(field, value, patterns.POAPEditCode)
}
