// Package middleware holds the echo middleware shared by every route:
// request ids, request-scoped logging, New Relic tracing, CORS, panic
// recovery, secure headers and the global error handler.
package middleware
