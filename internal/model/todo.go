// Package model holds the to-do entities and the request and response
// payloads exchanged with clients.
package model

import (
	"time"

	"github.com/guregu/null/v5"
)

// TodoList is a named container of items. Names are unique.
type TodoList struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// TodoItem is a single entry owned by exactly one TodoList.
type TodoItem struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Completed  bool      `json:"completed" db:"completed"`
	Deadline   null.Time `json:"deadline" db:"deadline"`
	CreatedAt  time.Time `json:"-" db:"created_at"`
	TodoListID int64     `json:"-" db:"todo_list_id"`
}

// NewTodoItem holds the values of an item about to be inserted.
type NewTodoItem struct {
	TodoListID int64
	Title      string
	Completed  bool
	Deadline   null.Time
}

// TodoListDetail is a list with all of its items in creation order.
type TodoListDetail struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Items []TodoItem `json:"items"`
}

// IDResponse answers create and update requests.
type IDResponse struct {
	ID int64 `json:"id"`
}

// ListsResponse answers GET /lists/.
type ListsResponse struct {
	Lists []TodoList `json:"lists"`
}

// ItemsResponse answers GET /lists/{pk}/items/.
type ItemsResponse struct {
	Items []TodoItem `json:"items"`
}
