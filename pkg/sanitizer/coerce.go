package sanitizer

import (
	"fmt"

	"github.com/spf13/cast"
)

// ToText converts any input to the text that gets matched and normalized.
// Absent values become "null" rather than being rejected, so they fail the
// format rule like any other bad input.
func ToText(input any) string {
	switch v := input.(type) {
	case nil:
		return "null"
	case string:
		return v
	}
	if s, err := cast.ToStringE(input); err == nil {
		return s
	}
	return fmt.Sprint(input)
}
