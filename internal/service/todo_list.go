package service

import (
	"context"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type TodoListService struct {
	tx    Transactor
	lists TodoListStore
	items TodoItemStore
}

func NewTodoListService(tx Transactor, lists TodoListStore, items TodoItemStore) *TodoListService {
	return &TodoListService{tx: tx, lists: lists, items: items}
}

func (s *TodoListService) ListLists(ctx context.Context) (model.ListsResponse, error) {
	var lists []model.TodoList

	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		var err error
		lists, err = s.lists.ListLists(ctx, q)
		return err
	})
	if err != nil {
		return model.ListsResponse{}, err
	}

	if lists == nil {
		lists = []model.TodoList{}
	}
	return model.ListsResponse{Lists: lists}, nil
}

// CreateList relies on the unique constraint on the name; a concurrent
// insert of the same name loses with a 409 as well.
func (s *TodoListService) CreateList(ctx context.Context, req *model.CreateListRequest) (model.IDResponse, error) {
	if err := req.Validate(); err != nil {
		return model.IDResponse{}, err
	}

	var id int64
	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		var err error
		id, err = s.lists.CreateList(ctx, q, req.Name)
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation && sqlerr.ConstraintName(err) == listNameConstraint {
			return errListAlreadyExists()
		}
		return err
	})
	if err != nil {
		return model.IDResponse{}, err
	}

	zerolog.Ctx(ctx).Info().Int64("list_id", id).Msg("todo list created")
	return model.IDResponse{ID: id}, nil
}

// DeleteAllLists removes every list together with its items.
func (s *TodoListService) DeleteAllLists(ctx context.Context) error {
	var n int64

	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		var err error
		n, err = s.lists.DeleteAllLists(ctx, q)
		return err
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int64("deleted", n).Msg("all todo lists deleted")
	return nil
}

// GetList returns the list with its items in creation order.
func (s *TodoListService) GetList(ctx context.Context, req *model.ListPathRequest) (model.TodoListDetail, error) {
	var detail model.TodoListDetail

	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		list, err := requireList(ctx, q, s.lists, req.ListID)
		if err != nil {
			return err
		}

		items, err := s.items.ListItems(ctx, q, list.ID)
		if err != nil {
			return err
		}
		if items == nil {
			items = []model.TodoItem{}
		}

		detail = model.TodoListDetail{ID: list.ID, Name: list.Name, Items: items}
		return nil
	})
	return detail, err
}

func (s *TodoListService) DeleteList(ctx context.Context, req *model.ListPathRequest) error {
	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		deleted, err := s.lists.DeleteList(ctx, q, req.ListID)
		if err != nil {
			return err
		}
		if !deleted {
			return errListNotFound()
		}
		return nil
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int64("list_id", req.ListID).Msg("todo list deleted")
	return nil
}

// requireList loads a list, turning a missing row into "List not found".
func requireList(ctx context.Context, q database.Querier, lists TodoListStore, id int64) (model.TodoList, error) {
	list, err := lists.GetList(ctx, q, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.TodoList{}, errListNotFound()
	}
	return list, err
}
