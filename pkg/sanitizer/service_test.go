package sanitizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
	"github.com/dmitrymomot/web3sanitizer/pkg/patterns"
	"github.com/dmitrymomot/web3sanitizer/pkg/sanitizer"
)

func TestSanitizer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("uses builtin registry by default", func(t *testing.T) {
		t.Parallel()
		s := sanitizer.New(nil)
		assert.Len(t, s.Registry().Names(), 6)

		got, err := s.Sanitize(ctx, "eth_or_ens", "Vitalik.eth")
		require.NoError(t, err)
		assert.Equal(t, "vitalik.eth", got)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := sanitizer.New(nil).Sanitize(ctx, "btc", "x")
		require.ErrorIs(t, err, patterns.ErrUnknownFormat)
	})

	t.Run("defaults apply and can be overridden", func(t *testing.T) {
		t.Parallel()
		s := sanitizer.New(patterns.Default(),
			sanitizer.WithFailOpen(),
			sanitizer.WithLogger(logger.Discard()),
		)

		got, err := s.Sanitize(ctx, "poap_id", "ABC")
		require.NoError(t, err)
		assert.Equal(t, "abc", got)

		_, err = s.Sanitize(ctx, "poap_id", "ABC", sanitizer.WithPolicy(sanitizer.FailClosed))
		require.ErrorIs(t, err, sanitizer.ErrInvalidInput)
	})

	t.Run("evaluate", func(t *testing.T) {
		t.Parallel()
		s := sanitizer.New(nil)

		f, res, err := s.Evaluate("email", "Bob@Example.org")
		require.NoError(t, err)
		assert.Equal(t, "email", f.Name)
		assert.True(t, res.Valid())
		assert.Equal(t, "bob@example.org", res.Value)

		_, _, err = s.Evaluate("nope", "x")
		require.ErrorIs(t, err, patterns.ErrUnknownFormat)
	})
}
