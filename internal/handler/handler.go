// Package handler is the HTTP layer. Each endpoint is a typed function that
// receives its bound request payload and calls the service layer; the shared
// pipeline in base.go takes care of binding, logging, tracing and writing
// the response.
package handler
