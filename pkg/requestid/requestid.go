package requestid

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
	"github.com/dmitrymomot/web3sanitizer/pkg/patterns"
)

// Header is the request and response header carrying the id.
const Header = "X-Request-ID"

var idRule = mustCaseSensitive(`^[a-zA-Z0-9_-]{1,128}$`)

func mustCaseSensitive(pattern string) *patterns.Rule {
	r, err := patterns.NewCaseSensitiveRule(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

type contextKey struct{}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id, or "" when none is set.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Middleware ensures every request has an id. Client-supplied ids that are
// empty, longer than 128 bytes or contain characters other than letters,
// digits, '-' and '_' are replaced.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !idRule.Match(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// Extractor adds the request id to log records.
func Extractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
