// Package api exposes the sanitizer over HTTP.
//
// Routes:
//
//	GET  /health                  liveness probe
//	GET  /v1/formats              registered formats
//	POST /v1/sanitize/{format}    {"input": any, "fail_open": bool}
//	POST /v1/validate             {"fields": {"<name>": {"format": "...", "value": "..."}}}
//
// A failed sanitize under the fail-closed policy answers 422 with the
// validation message. Under fail-open it answers 200 with "valid": false and
// the normalized value, and the warning goes to the handler's logger with the
// request id and client IP attached.
package api
