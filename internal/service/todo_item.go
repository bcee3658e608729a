package service

import (
	"context"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type TodoItemService struct {
	tx    Transactor
	lists TodoListStore
	items TodoItemStore
}

func NewTodoItemService(tx Transactor, lists TodoListStore, items TodoItemStore) *TodoItemService {
	return &TodoItemService{tx: tx, lists: lists, items: items}
}

func (s *TodoItemService) CreateItem(ctx context.Context, req *model.CreateItemRequest) (model.IDResponse, error) {
	var id int64

	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		if _, err := requireList(ctx, q, s.lists, req.ListID); err != nil {
			return err
		}

		if err := req.Validate(); err != nil {
			return err
		}

		var err error
		id, err = s.items.CreateItem(ctx, q, model.NewTodoItem{
			TodoListID: req.ListID,
			Title:      req.Title,
			Completed:  req.Completed,
			Deadline:   req.Deadline.Time,
		})
		return err
	})
	if err != nil {
		return model.IDResponse{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("list_id", req.ListID).
		Int64("item_id", id).
		Msg("todo item created")
	return model.IDResponse{ID: id}, nil
}

func (s *TodoItemService) ListItems(ctx context.Context, req *model.ListPathRequest) (model.ItemsResponse, error) {
	var items []model.TodoItem

	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		if _, err := requireList(ctx, q, s.lists, req.ListID); err != nil {
			return err
		}

		var err error
		items, err = s.items.ListItems(ctx, q, req.ListID)
		return err
	})
	if err != nil {
		return model.ItemsResponse{}, err
	}

	if items == nil {
		items = []model.TodoItem{}
	}
	return model.ItemsResponse{Items: items}, nil
}

// DeleteItems empties a list. The list itself and other lists are untouched.
func (s *TodoItemService) DeleteItems(ctx context.Context, req *model.ListPathRequest) error {
	var n int64

	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		if _, err := requireList(ctx, q, s.lists, req.ListID); err != nil {
			return err
		}

		var err error
		n, err = s.items.DeleteItemsByList(ctx, q, req.ListID)
		return err
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Int64("list_id", req.ListID).
		Int64("deleted", n).
		Msg("todo items deleted")
	return nil
}

// UpdateItem applies a partial update. The item row is locked between the
// read and the write.
func (s *TodoItemService) UpdateItem(ctx context.Context, req *model.UpdateItemRequest) (model.IDResponse, error) {
	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		item, err := s.items.GetItem(ctx, q, req.ListID, req.ItemID, true)
		if errors.Is(err, pgx.ErrNoRows) {
			return errItemNotFound()
		}
		if err != nil {
			return err
		}

		if err := req.Validate(); err != nil {
			return err
		}

		req.Apply(&item)
		return s.items.UpdateItem(ctx, q, item)
	})
	if err != nil {
		return model.IDResponse{}, err
	}

	return model.IDResponse{ID: req.ItemID}, nil
}

func (s *TodoItemService) DeleteItem(ctx context.Context, req *model.ItemPathRequest) error {
	return s.tx.WithTx(ctx, func(q database.Querier) error {
		deleted, err := s.items.DeleteItem(ctx, q, req.ListID, req.ItemID)
		if err != nil {
			return err
		}
		if !deleted {
			return errItemNotFound()
		}
		return nil
	})
}
