package handler

import (
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
)

type TodoListHandler struct {
	Handler
	lists *service.TodoListService
}

func NewTodoListHandler(s *server.Server, lists *service.TodoListService) *TodoListHandler {
	return &TodoListHandler{
		Handler: NewHandler(s),
		lists:   lists,
	}
}

func (h *TodoListHandler) ListLists(c echo.Context, _ *model.EmptyRequest) (model.ListsResponse, error) {
	return h.lists.ListLists(c.Request().Context())
}

func (h *TodoListHandler) CreateList(c echo.Context, req *model.CreateListRequest) (model.IDResponse, error) {
	return h.lists.CreateList(c.Request().Context(), req)
}

func (h *TodoListHandler) DeleteAllLists(c echo.Context, _ *model.EmptyRequest) error {
	return h.lists.DeleteAllLists(c.Request().Context())
}

func (h *TodoListHandler) GetList(c echo.Context, req *model.ListPathRequest) (model.TodoListDetail, error) {
	return h.lists.GetList(c.Request().Context(), req)
}

func (h *TodoListHandler) DeleteList(c echo.Context, req *model.ListPathRequest) error {
	return h.lists.DeleteList(c.Request().Context(), req)
}
