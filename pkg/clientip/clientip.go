package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
)

var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// FromRequest returns the normalized client IP, or "" when none is valid.
func FromRequest(r *http.Request) string {
	for _, h := range proxyHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		// X-Forwarded-For lists the original client first.
		for part := range strings.SplitSeq(v, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the client IP in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), FromRequest(r))))
	})
}

// Extractor adds the client IP to log records.
func Extractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return logger.ClientIP(ip), true
		}
		return slog.Attr{}, false
	}
}
