// Package router builds the echo instance: the global middleware chain, the
// error handler, the to-do routes and the system routes.
package router

import (
	"net/http"

	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/deppfellow/todo-api/internal/middleware"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and the New Relic transaction must exist
	// before the request logger is built, and the logger before anything
	// that logs.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)
	registerTodoRoutes(router, h)

	return router
}

func registerTodoRoutes(r *echo.Echo, h *handler.Handlers) {
	lists := r.Group("/lists")

	lists.GET("/", handler.Handle(h.TodoList.ListLists, http.StatusOK))
	lists.POST("/", handler.Handle(h.TodoList.CreateList, http.StatusCreated))
	lists.DELETE("/", handler.HandleNoContent(h.TodoList.DeleteAllLists, http.StatusNoContent))

	lists.GET("/:pk/", handler.Handle(h.TodoList.GetList, http.StatusOK))
	lists.DELETE("/:pk/", handler.HandleNoContent(h.TodoList.DeleteList, http.StatusNoContent))

	lists.GET("/:pk/items/", handler.Handle(h.TodoItem.ListItems, http.StatusOK))
	lists.POST("/:pk/items/", handler.Handle(h.TodoItem.CreateItem, http.StatusCreated))
	lists.DELETE("/:pk/items/", handler.HandleNoContent(h.TodoItem.DeleteItems, http.StatusNoContent))

	lists.PATCH("/:pk/items/:li", handler.Handle(h.TodoItem.UpdateItem, http.StatusOK))
	lists.DELETE("/:pk/items/:li", handler.HandleNoContent(h.TodoItem.DeleteItem, http.StatusNoContent))
}
