// Package validation checks request payloads against the rules declared in
// their `validate` struct tags and turns failures into 400 responses whose
// message names the first offending field, e.g. "Title is required".
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates every tagged field of v.
func Struct(v any) error {
	return toHTTPError(validate.Struct(v), "")
}

// Var validates a single value against tag, reporting failures under field.
func Var(field string, value any, tag string) error {
	return toHTTPError(validate.Var(value, tag), field)
}

func toHTTPError(err error, field string) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs.ValidationError(err)
	}

	message, fieldErrors := extractValidationError(validationErrors, field)
	return errs.NewBadRequestError(message, true, nil, fieldErrors)
}

// extractValidationError converts validator errors into field errors. The
// returned message describes the first failure only.
func extractValidationError(validationErrors validator.ValidationErrors, fallbackField string) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError
	var message string

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		if field == "" {
			field = fallbackField
		}

		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s", err.Tag(), err.Param())
			} else {
				msg = err.Tag()
			}
		}

		if message == "" {
			message = capitalize(field) + " " + msg
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return message, fieldErrors
}

func capitalize(s string) string {
	if s == "" {
		return "Value"
	}
	return cases.Title(language.English).String(s[:1]) + s[1:]
}
