// Package clientip resolves the caller's address for HTTP requests and makes
// it available to log records.
//
// Proxy headers are consulted in order (CF-Connecting-IP, DO-Connecting-IP,
// X-Forwarded-For, X-Real-IP) before falling back to RemoteAddr. Header values
// that do not parse as an IP address are skipped. Only deploy behind a proxy
// that overwrites these headers; they are client-controlled otherwise.
package clientip
