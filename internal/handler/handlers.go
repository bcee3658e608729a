package handler

import (
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
)

// Handlers groups every HTTP handler so router setup receives one value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	TodoList *TodoListHandler
	TodoItem *TodoItemHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	var db Pinger
	if s.DB != nil {
		db = s.DB
	}

	return &Handlers{
		Health:   NewHealthHandler(s, db),
		OpenAPI:  NewOpenAPIHandler(s),
		TodoList: NewTodoListHandler(s, services.TodoLists),
		TodoItem: NewTodoItemHandler(s, services.TodoItems),
	}
}
