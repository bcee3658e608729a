package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "title", "error": "is required" }
type FieldError struct {
	// Field is the request field the error relates to (e.g. "title").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Only Message reaches the client, rendered as {"error": "<message>"}.
// The remaining fields drive the status code and the structured log line.
//   - Code: machine-friendly error code (e.g. "NOT_FOUND", "TODO_LIST_ALREADY_EXISTS").
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as is.
//   - Errors: list of per-field errors (validation), logged only.
type HTTPError struct {
	Code     string       `json:"-"`
	Message  string       `json:"error"`
	Status   int          `json:"-"`
	Override bool         `json:"-"`
	Errors   []FieldError `json:"-"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError with the same status and message.
//
// A target with an empty message matches any error of the same status, so
// errors.Is(err, &HTTPError{Status: 404}) answers "is this a not found".
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}

	if t.Status != 0 && t.Status != e.Status {
		return false
	}

	return t.Message == "" || t.Message == e.Message
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
