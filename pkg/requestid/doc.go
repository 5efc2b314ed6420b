// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUIDv4,
// stores the id in the request context and echoes it in the response header.
// Extractor plugs the id into logger.New so that every record written while
// serving the request, including fail-open sanitizer warnings, carries it.
package requestid
