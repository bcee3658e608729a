package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/model"
)

var todoListColumns = []string{"id", "name"}

type TodoListRepository struct{}

func NewTodoListRepository() *TodoListRepository {
	return &TodoListRepository{}
}

// ListLists returns every list ordered by name.
func (r *TodoListRepository) ListLists(ctx context.Context, q database.Querier) ([]model.TodoList, error) {
	return selectMany[model.TodoList](ctx, q,
		NewQueryBuilder().
			Select(todoListColumns...).
			From(tableTodoLists).
			OrderBy("name", "id"),
	)
}

// GetList returns the list with the given id, or an error wrapping
// pgx.ErrNoRows.
func (r *TodoListRepository) GetList(ctx context.Context, q database.Querier, id int64) (model.TodoList, error) {
	return selectOne[model.TodoList](ctx, q,
		NewQueryBuilder().
			Select(todoListColumns...).
			From(tableTodoLists).
			Where(squirrel.Eq{"id": id}),
	)
}

// CreateList inserts a list and returns its id. A taken name surfaces as a
// unique violation on todo_lists_name_key.
func (r *TodoListRepository) CreateList(ctx context.Context, q database.Querier, name string) (int64, error) {
	return insertReturningID(ctx, q,
		NewQueryBuilder().
			Insert(tableTodoLists).
			Columns("name").
			Values(name),
	)
}

// DeleteList removes one list (and, through the foreign key, its items).
// It reports whether a row was deleted.
func (r *TodoListRepository) DeleteList(ctx context.Context, q database.Querier, id int64) (bool, error) {
	n, err := execRows(ctx, q,
		NewQueryBuilder().
			Delete(tableTodoLists).
			Where(squirrel.Eq{"id": id}),
	)
	return n > 0, err
}

// DeleteAllLists removes every list and every item.
func (r *TodoListRepository) DeleteAllLists(ctx context.Context, q database.Querier) (int64, error) {
	return execRows(ctx, q, NewQueryBuilder().Delete(tableTodoLists))
}
