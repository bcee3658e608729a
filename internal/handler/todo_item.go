package handler

import (
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
)

type TodoItemHandler struct {
	Handler
	items *service.TodoItemService
}

func NewTodoItemHandler(s *server.Server, items *service.TodoItemService) *TodoItemHandler {
	return &TodoItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

func (h *TodoItemHandler) ListItems(c echo.Context, req *model.ListPathRequest) (model.ItemsResponse, error) {
	return h.items.ListItems(c.Request().Context(), req)
}

func (h *TodoItemHandler) CreateItem(c echo.Context, req *model.CreateItemRequest) (model.IDResponse, error) {
	return h.items.CreateItem(c.Request().Context(), req)
}

// DeleteItems empties the list, keeping the list itself.
func (h *TodoItemHandler) DeleteItems(c echo.Context, req *model.ListPathRequest) error {
	return h.items.DeleteItems(c.Request().Context(), req)
}

func (h *TodoItemHandler) UpdateItem(c echo.Context, req *model.UpdateItemRequest) (model.IDResponse, error) {
	return h.items.UpdateItem(c.Request().Context(), req)
}

func (h *TodoItemHandler) DeleteItem(c echo.Context, req *model.ItemPathRequest) error {
	return h.items.DeleteItem(c.Request().Context(), req)
}
