package service

import (
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/server"
)

type Services struct {
	TodoLists *TodoListService
	TodoItems *TodoItemService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		TodoLists: NewTodoListService(s.DB, repos.TodoLists, repos.TodoItems),
		TodoItems: NewTodoItemService(s.DB, repos.TodoLists, repos.TodoItems),
	}
}
