// Package repositorytest provides an in-memory stand-in for the Postgres
// repositories, for tests that exercise services and HTTP routes without a
// database.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// Store keeps lists and items in memory. It mimics the parts of the schema
// the services rely on: the unique list name, the cascading foreign key
// and rollback of a failed transaction.
//
// WithTx serialises transactions, so a Store is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	state state
	now   func() time.Time
}

type state struct {
	lists      map[int64]model.TodoList
	items      map[int64]model.TodoItem
	nextListID int64
	nextItemID int64
}

func (s state) clone() state {
	c := s
	c.lists = make(map[int64]model.TodoList, len(s.lists))
	for k, v := range s.lists {
		c.lists[k] = v
	}
	c.items = make(map[int64]model.TodoItem, len(s.items))
	for k, v := range s.items {
		c.items[k] = v
	}
	return c
}

func NewStore() *Store {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	return &Store{
		state: state{
			lists: map[int64]model.TodoList{},
			items: map[int64]model.TodoItem{},
		},
		// Strictly increasing so creation order is deterministic.
		now: func() time.Time {
			tick++
			return start.Add(time.Duration(tick) * time.Millisecond)
		},
	}
}

// WithTx runs fn with exclusive access and restores the previous state if
// fn fails. The Querier passed to fn is nil; Store ignores it.
func (s *Store) WithTx(ctx context.Context, fn func(q database.Querier) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(nil); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// Counts returns the number of stored lists and items.
func (s *Store) Counts() (lists, items int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.lists), len(s.state.items)
}

func (s *Store) ListLists(ctx context.Context, _ database.Querier) ([]model.TodoList, error) {
	out := make([]model.TodoList, 0, len(s.state.lists))
	for _, l := range s.state.lists {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetList(ctx context.Context, _ database.Querier, id int64) (model.TodoList, error) {
	l, ok := s.state.lists[id]
	if !ok {
		return model.TodoList{}, errors.Wrap(pgx.ErrNoRows, "found no model.TodoList")
	}
	return l, nil
}

func (s *Store) CreateList(ctx context.Context, _ database.Querier, name string) (int64, error) {
	for _, l := range s.state.lists {
		if l.Name == name {
			return 0, &pgconn.PgError{
				Severity:       "ERROR",
				Code:           pgerrcode.UniqueViolation,
				Message:        `duplicate key value violates unique constraint "todo_lists_name_key"`,
				TableName:      "todo_lists",
				ConstraintName: "todo_lists_name_key",
			}
		}
	}

	s.state.nextListID++
	id := s.state.nextListID
	s.state.lists[id] = model.TodoList{ID: id, Name: name}
	return id, nil
}

func (s *Store) DeleteList(ctx context.Context, _ database.Querier, id int64) (bool, error) {
	if _, ok := s.state.lists[id]; !ok {
		return false, nil
	}
	delete(s.state.lists, id)
	s.cascade(id)
	return true, nil
}

func (s *Store) DeleteAllLists(ctx context.Context, _ database.Querier) (int64, error) {
	n := int64(len(s.state.lists))
	s.state.lists = map[int64]model.TodoList{}
	s.state.items = map[int64]model.TodoItem{}
	return n, nil
}

func (s *Store) ListItems(ctx context.Context, _ database.Querier, listID int64) ([]model.TodoItem, error) {
	out := []model.TodoItem{}
	for _, it := range s.state.items {
		if it.TodoListID == listID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetItem(ctx context.Context, _ database.Querier, listID, itemID int64, _ bool) (model.TodoItem, error) {
	it, ok := s.state.items[itemID]
	if !ok || it.TodoListID != listID {
		return model.TodoItem{}, errors.Wrap(pgx.ErrNoRows, "found no model.TodoItem")
	}
	return it, nil
}

func (s *Store) CreateItem(ctx context.Context, _ database.Querier, item model.NewTodoItem) (int64, error) {
	if _, ok := s.state.lists[item.TodoListID]; !ok {
		return 0, &pgconn.PgError{
			Severity:       "ERROR",
			Code:           pgerrcode.ForeignKeyViolation,
			TableName:      "todo_items",
			ConstraintName: "todo_items_todo_list_id_fkey",
		}
	}

	s.state.nextItemID++
	id := s.state.nextItemID
	s.state.items[id] = model.TodoItem{
		ID:         id,
		Title:      item.Title,
		Completed:  item.Completed,
		Deadline:   item.Deadline,
		CreatedAt:  s.now(),
		TodoListID: item.TodoListID,
	}
	return id, nil
}

func (s *Store) UpdateItem(ctx context.Context, _ database.Querier, item model.TodoItem) error {
	cur, ok := s.state.items[item.ID]
	if !ok || cur.TodoListID != item.TodoListID {
		return nil
	}
	cur.Title = item.Title
	cur.Completed = item.Completed
	cur.Deadline = item.Deadline
	s.state.items[item.ID] = cur
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, _ database.Querier, listID, itemID int64) (bool, error) {
	it, ok := s.state.items[itemID]
	if !ok || it.TodoListID != listID {
		return false, nil
	}
	delete(s.state.items, itemID)
	return true, nil
}

func (s *Store) DeleteItemsByList(ctx context.Context, _ database.Querier, listID int64) (int64, error) {
	return s.cascade(listID), nil
}

func (s *Store) cascade(listID int64) int64 {
	var n int64
	for id, it := range s.state.items {
		if it.TodoListID == listID {
			delete(s.state.items, id)
			n++
		}
	}
	return n
}
