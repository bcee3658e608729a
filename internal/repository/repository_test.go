package repository

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/guregu/null/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestTodoListRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoListRepository()

	t.Run("ListLists", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT id, name FROM todo_lists ORDER BY name, id`).
			WillReturnRows(pgxmock.NewRows(todoListColumns).
				AddRow(int64(2), "Chores").
				AddRow(int64(1), "Groceries"))

		lists, err := repo.ListLists(ctx, mock)
		require.NoError(t, err)
		assert.Equal(t, []model.TodoList{{ID: 2, Name: "Chores"}, {ID: 1, Name: "Groceries"}}, lists)
	})

	t.Run("GetList not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT id, name FROM todo_lists WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(todoListColumns))

		_, err := repo.GetList(ctx, mock, 7)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("CreateList", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO todo_lists \(name\) VALUES \(\$1\) RETURNING id`).
			WithArgs("Groceries").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

		id, err := repo.CreateList(ctx, mock, "Groceries")
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("DeleteList", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM todo_lists WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec(`DELETE FROM todo_lists WHERE id = \$1`).
			WithArgs(int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.DeleteList(ctx, mock, 1)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.DeleteList(ctx, mock, 2)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("DeleteAllLists", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`^DELETE FROM todo_lists$`).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		n, err := repo.DeleteAllLists(ctx, mock)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestTodoItemRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTodoItemRepository()
	created := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("ListItems", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM todo_items WHERE todo_list_id = \$1 ORDER BY created_at, id`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(todoItemColumns).
				AddRow(int64(1), "Milk", false, deadline, created, int64(1)).
				AddRow(int64(2), "Eggs", true, nil, created, int64(1)))

		items, err := repo.ListItems(ctx, mock, 1)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Milk", items[0].Title)
		assert.True(t, items[0].Deadline.Valid)
		assert.True(t, deadline.Equal(items[0].Deadline.Time))
		assert.True(t, items[1].Completed)
		assert.False(t, items[1].Deadline.Valid)
	})

	t.Run("GetItem for update", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM todo_items WHERE id = \$1 AND todo_list_id = \$2 FOR UPDATE`).
			WithArgs(int64(5), int64(1)).
			WillReturnRows(pgxmock.NewRows(todoItemColumns).
				AddRow(int64(5), "Milk", false, nil, created, int64(1)))

		item, err := repo.GetItem(ctx, mock, 1, 5, true)
		require.NoError(t, err)
		assert.Equal(t, int64(5), item.ID)
		assert.Equal(t, int64(1), item.TodoListID)
	})

	t.Run("GetItem in another list", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM todo_items WHERE id = \$1 AND todo_list_id = \$2`).
			WithArgs(int64(5), int64(2)).
			WillReturnRows(pgxmock.NewRows(todoItemColumns))

		_, err := repo.GetItem(ctx, mock, 2, 5, false)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("CreateItem", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO todo_items \(todo_list_id,title,completed,deadline\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
			WithArgs(int64(1), "Milk", false, pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

		id, err := repo.CreateItem(ctx, mock, model.NewTodoItem{
			TodoListID: 1,
			Title:      "Milk",
			Deadline:   null.TimeFrom(deadline),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
	})

	t.Run("UpdateItem", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`UPDATE todo_items SET title = \$1, completed = \$2, deadline = \$3 WHERE id = \$4 AND todo_list_id = \$5`).
			WithArgs("Oat milk", true, pgxmock.AnyArg(), int64(5), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateItem(ctx, mock, model.TodoItem{ID: 5, TodoListID: 1, Title: "Oat milk", Completed: true})
		assert.NoError(t, err)
	})

	t.Run("DeleteItem", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM todo_items WHERE id = \$1 AND todo_list_id = \$2`).
			WithArgs(int64(5), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.DeleteItem(ctx, mock, 1, 5)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("DeleteItemsByList", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM todo_items WHERE todo_list_id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		n, err := repo.DeleteItemsByList(ctx, mock, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}
