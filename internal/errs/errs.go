// Package errs defines the error types returned to API clients.
//
// Services return an *HTTPError when a request fails for a reason the client
// can act on (missing field, unknown list, duplicate name). Anything else is
// treated as an internal failure by the global error handler.
package errs
