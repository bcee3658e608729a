package validation

import (
	"strings"
	"testing"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedPayload struct {
	Name  string `json:"name" validate:"required,max=100"`
	Level string `json:"level" validate:"omitempty,oneof=low high"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		payload namedPayload
		message string
		fields  []errs.FieldError
	}{
		{
			name:    "valid",
			payload: namedPayload{Name: "Groceries"},
		},
		{
			name:    "missing name",
			payload: namedPayload{},
			message: "Name is required",
			fields:  []errs.FieldError{{Field: "name", Error: "is required"}},
		},
		{
			name:    "name too long",
			payload: namedPayload{Name: strings.Repeat("a", 101)},
			message: "Name must not exceed 100 characters",
			fields:  []errs.FieldError{{Field: "name", Error: "must not exceed 100 characters"}},
		},
		{
			name:    "first failure wins",
			payload: namedPayload{Level: "medium"},
			message: "Name is required",
			fields: []errs.FieldError{
				{Field: "name", Error: "is required"},
				{Field: "level", Error: "must be one of: low high"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.payload)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			var httpErr *errs.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, 400, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.Equal(t, tt.fields, httpErr.Errors)
		})
	}
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("title", "Milk", "required,max=100"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, Var("title", "", "required,max=100"), &httpErr)
	assert.Equal(t, "Title is required", httpErr.Message)

	require.ErrorAs(t, Var("title", strings.Repeat("x", 101), "required,max=100"), &httpErr)
	assert.Equal(t, "Title must not exceed 100 characters", httpErr.Message)
}
