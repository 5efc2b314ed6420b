package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/web3sanitizer/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "wallet", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "email", Message: "must be a valid email"})
		assert.Equal(t, "validation failed: wallet: is required; email: must be a valid email", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "code", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "wallet", Message: "bad"})
	errs.Add(validator.ValidationError{Field: "code", Message: "not numeric"})

	assert.True(t, errs.Has("code"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"too short", "not numeric"}, errs.Get("code"))
	assert.Nil(t, errs.Get("email"))
	assert.Equal(t, []string{"code", "wallet"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }}
	fail := validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: "f", Message: "failed"},
	}

	t.Run("nil when all rules pass", func(t *testing.T) {
		require.NoError(t, validator.Apply(pass, pass))
		require.NoError(t, validator.Apply())
	})

	t.Run("collects failures", func(t *testing.T) {
		err := validator.Apply(pass, fail, fail)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "f", verrs[0].Field)
	})

	t.Run("rule without check fails", func(t *testing.T) {
		err := validator.Apply(validator.Rule{Error: validator.ValidationError{Field: "x"}})
		assert.True(t, validator.IsValidationError(err))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, validator.IsValidationError(errors.New("plain")))

	wrapped := fmt.Errorf("request: %w", validator.ValidationErrors{{Field: "a", Message: "b"}})
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.True(t, validator.IsValidationError(wrapped))
}
