// Package service contains the business logic.
//
// It sits between the handler and repository layers. Every operation runs in
// one database transaction, checks that the addressed list or item exists,
// validates the request and only then calls the repositories.
package service

import (
	"context"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/model"
)

// Transactor runs fn inside a single transaction. *database.Database
// satisfies it.
type Transactor interface {
	WithTx(ctx context.Context, fn func(q database.Querier) error) error
}

// TodoListStore is the list persistence the services need.
type TodoListStore interface {
	ListLists(ctx context.Context, q database.Querier) ([]model.TodoList, error)
	GetList(ctx context.Context, q database.Querier, id int64) (model.TodoList, error)
	CreateList(ctx context.Context, q database.Querier, name string) (int64, error)
	DeleteList(ctx context.Context, q database.Querier, id int64) (bool, error)
	DeleteAllLists(ctx context.Context, q database.Querier) (int64, error)
}

// TodoItemStore is the item persistence the services need.
type TodoItemStore interface {
	ListItems(ctx context.Context, q database.Querier, listID int64) ([]model.TodoItem, error)
	GetItem(ctx context.Context, q database.Querier, listID, itemID int64, forUpdate bool) (model.TodoItem, error)
	CreateItem(ctx context.Context, q database.Querier, item model.NewTodoItem) (int64, error)
	UpdateItem(ctx context.Context, q database.Querier, item model.TodoItem) error
	DeleteItem(ctx context.Context, q database.Querier, listID, itemID int64) (bool, error)
	DeleteItemsByList(ctx context.Context, q database.Querier, listID int64) (int64, error)
}

var (
	codeListNotFound      = "TODO_LIST_NOT_FOUND"
	codeItemNotFound      = "TODO_ITEM_NOT_FOUND"
	codeListAlreadyExists = "TODO_LIST_ALREADY_EXISTS"
)

// listNameConstraint is the unique constraint on todo_lists.name.
const listNameConstraint = "todo_lists_name_key"

func errListNotFound() error {
	return errs.NewNotFoundError("List not found", true, &codeListNotFound)
}

func errItemNotFound() error {
	return errs.NewNotFoundError("Item not found", true, &codeItemNotFound)
}

func errListAlreadyExists() error {
	return errs.NewConflictError("List already exists", true, &codeListAlreadyExists)
}
