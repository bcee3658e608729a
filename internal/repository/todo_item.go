package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/model"
)

var todoItemColumns = []string{"id", "title", "completed", "deadline", "created_at", "todo_list_id"}

type TodoItemRepository struct{}

func NewTodoItemRepository() *TodoItemRepository {
	return &TodoItemRepository{}
}

// ListItems returns the items of one list in creation order.
func (r *TodoItemRepository) ListItems(ctx context.Context, q database.Querier, listID int64) ([]model.TodoItem, error) {
	return selectMany[model.TodoItem](ctx, q,
		NewQueryBuilder().
			Select(todoItemColumns...).
			From(tableTodoItems).
			Where(squirrel.Eq{"todo_list_id": listID}).
			OrderBy("created_at", "id"),
	)
}

// GetItem returns an item only if it belongs to listID. With forUpdate the
// row stays locked until the surrounding transaction ends.
func (r *TodoItemRepository) GetItem(ctx context.Context, q database.Querier, listID, itemID int64, forUpdate bool) (model.TodoItem, error) {
	query := NewQueryBuilder().
		Select(todoItemColumns...).
		From(tableTodoItems).
		Where(squirrel.Eq{"id": itemID, "todo_list_id": listID})

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	return selectOne[model.TodoItem](ctx, q, query)
}

func (r *TodoItemRepository) CreateItem(ctx context.Context, q database.Querier, item model.NewTodoItem) (int64, error) {
	return insertReturningID(ctx, q,
		NewQueryBuilder().
			Insert(tableTodoItems).
			Columns("todo_list_id", "title", "completed", "deadline").
			Values(item.TodoListID, item.Title, item.Completed, item.Deadline),
	)
}

// UpdateItem writes the mutable fields of item back.
func (r *TodoItemRepository) UpdateItem(ctx context.Context, q database.Querier, item model.TodoItem) error {
	_, err := execRows(ctx, q,
		NewQueryBuilder().
			Update(tableTodoItems).
			Set("title", item.Title).
			Set("completed", item.Completed).
			Set("deadline", item.Deadline).
			Where(squirrel.Eq{"id": item.ID, "todo_list_id": item.TodoListID}),
	)
	return err
}

// DeleteItem removes one item of one list and reports whether it existed.
func (r *TodoItemRepository) DeleteItem(ctx context.Context, q database.Querier, listID, itemID int64) (bool, error) {
	n, err := execRows(ctx, q,
		NewQueryBuilder().
			Delete(tableTodoItems).
			Where(squirrel.Eq{"id": itemID, "todo_list_id": listID}),
	)
	return n > 0, err
}

// DeleteItemsByList empties a list, leaving the list itself in place.
func (r *TodoItemRepository) DeleteItemsByList(ctx context.Context, q database.Querier, listID int64) (int64, error) {
	return execRows(ctx, q,
		NewQueryBuilder().
			Delete(tableTodoItems).
			Where(squirrel.Eq{"todo_list_id": listID}),
	)
}
