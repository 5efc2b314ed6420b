package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/web3sanitizer/pkg/patterns"
)

// FormatTag checks a string field against a registered format:
//
//	Wallet string `json:"wallet" validate:"required,format=eth_or_ens"`
const FormatTag = "format"

// Struct validates tagged structs and reports failures as ValidationErrors.
// Fields are named by their json tag.
type Struct struct {
	validate *playground.Validate
	registry *patterns.Registry
}

// NewStruct creates a struct validator whose format tag resolves names in
// registry. A nil registry means the built-in formats.
func NewStruct(registry *patterns.Registry) *Struct {
	if registry == nil {
		registry = patterns.Default()
	}

	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	s := &Struct{validate: v, registry: registry}
	if err := v.RegisterValidation(FormatTag, s.matchFormat); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", FormatTag, err))
	}
	return s
}

func (s *Struct) matchFormat(fl playground.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	f, err := s.registry.Lookup(fl.Param())
	if err != nil {
		return false
	}
	value := field.String()
	return value != "" && f.Rule.Match(value)
}

// Validate checks v. It returns ValidationErrors for rule failures and the
// underlying error for anything else, such as a non-struct argument.
func (s *Struct) Validate(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out.Add(s.translate(fe))
	}
	return out
}

func (s *Struct) translate(fe playground.FieldError) ValidationError {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case FormatTag:
		f, err := s.registry.Lookup(fe.Param())
		if err != nil {
			return ValidationError{
				Field:             field,
				Message:           fmt.Sprintf("unknown format %s", fe.Param()),
				TranslationKey:    "validation.unknown_format",
				TranslationValues: map[string]any{"field": field, "format": fe.Param()},
			}
		}
		return formatError(field, f)
	case "required":
		return ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		}
	}

	var msg string
	switch fe.Tag() {
	case "min":
		msg = fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		msg = fmt.Sprintf("must be at most %s", fe.Param())
	default:
		msg = fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
	return ValidationError{
		Field:          field,
		Message:        msg,
		TranslationKey: "validation." + fe.Tag(),
		TranslationValues: map[string]any{
			"field": field,
			"param": fe.Param(),
		},
	}
}
