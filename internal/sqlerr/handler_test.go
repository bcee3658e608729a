package sqlerr

import (
	"net/http"
	"testing"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	t.Run("unique violation is a conflict", func(t *testing.T) {
		err := errors.Wrap(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			Severity:       "ERROR",
			TableName:      "todo_lists",
			ConstraintName: "todo_lists_name_key",
		}, "insert todo list")

		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(err), &httpErr)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "TODO_LIST_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "A Todo List with this name already exists", httpErr.Message)
	})

	t.Run("foreign key violation is a bad request", func(t *testing.T) {
		err := &pgconn.PgError{
			Code:       pgerrcode.ForeignKeyViolation,
			TableName:  "todo_items",
			ColumnName: "todo_list_id",
		}

		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(err), &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "The referenced Todo List does not exist", httpErr.Message)
	})

	t.Run("not null violation carries a field error", func(t *testing.T) {
		err := &pgconn.PgError{
			Code:       pgerrcode.NotNullViolation,
			TableName:  "todo_items",
			ColumnName: "title",
		}

		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(err), &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, []errs.FieldError{{Field: "title", Error: "is required"}}, httpErr.Errors)
	})

	t.Run("no rows is not found", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(pgx.ErrNoRows), &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("http error passes through", func(t *testing.T) {
		original := errs.NewNotFoundError("Item not found", true, nil)
		assert.Same(t, original, HandleError(original))
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(assert.AnError), &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	})
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "todo_lists_name_key"}

	assert.Equal(t, UniqueViolation, ErrCode(errors.Wrap(pgErr, "exec")))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(pgErr)))
	assert.Equal(t, Other, ErrCode(assert.AnError))
	assert.Equal(t, "todo_lists_name_key", ConstraintName(errors.Wrap(pgErr, "exec")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "name", extractColumnForUniqueViolation("todo_lists_name_key"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("unique_todo_lists_name"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
