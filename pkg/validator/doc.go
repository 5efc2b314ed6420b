// Package validator checks several inputs at once and reports every failure
// together, where the sanitizer package stops at the first bad value.
//
// A Rule pairs a Check function with a ValidationError describing the
// failure. Apply runs rules and collects failures into ValidationErrors, which
// implements error and supports per-field lookups:
//
//	err := validator.Apply(
//	    validator.Required("wallet", req.Wallet),
//	    validator.ValidEthOrENS("wallet", req.Wallet),
//	    validator.ValidEmail("email", req.Email),
//	    validator.ValidPOAPEditCode("edit_code", req.EditCode),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() { ... }
//	}
//
// Format rules delegate to the patterns package, so they accept exactly what
// the matching sanitizer function accepts. Every error carries a translation
// key of the form "validation.<format name>".
//
// Struct does the same for tagged structs on top of go-playground/validator,
// adding a "format" tag bound to a patterns.Registry:
//
//	type Claim struct {
//	    Wallet string `json:"wallet" validate:"required,format=eth_or_ens"`
//	}
//	err := validator.NewStruct(registry).Validate(claim)
package validator
