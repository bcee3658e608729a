package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/middleware"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base embedded by concrete handlers for access to the
// server container.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// RequestPayload is satisfied by *Req for every request payload type Req.
// The pipeline allocates a fresh Req per request through it.
type RequestPayload[Req any] interface {
	*Req
	validation.Validatable
}

// ResponseHandler writes a successful result and names the operation for
// logs and traces.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	if txn == nil {
		return
	}
	if res, ok := result.(model.IDResponse); ok {
		txn.AddAttribute("response.id", res.ID)
	}
}

// NoContentResponseHandler writes a bodiless response, 204 in practice.
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result any) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

func (h NoContentResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	// http.status_code is already set by tracing middleware
}

// bodyRecorder is implemented by requests that carry a body.
type bodyRecorder interface {
	SetBodyError(err error)
}

// bindRequest fills req from the path and, for requests that carry one, the
// body. Path ids must be unsigned decimal integers; anything else does not
// name a resource and is reported like an unknown route. An id too large for
// int64 cannot exist and is bound as 0 so the service reports it missing.
// A body that fails to decode is recorded on req, not returned: it is
// reported by the service after existence checks.
func bindRequest(c echo.Context, req any) error {
	values := append([]string(nil), c.ParamValues()...)
	for i, v := range values {
		if v == "" || strings.Trim(v, "0123456789") != "" {
			return errs.NewNotFoundError("Route not found", false, nil)
		}
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			values[i] = "0"
		}
	}
	c.SetParamValues(values...)

	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, req); err != nil {
		return errs.NewNotFoundError("Route not found", false, nil)
	}

	recorder, ok := req.(bodyRecorder)
	if !ok {
		return nil
	}
	switch c.Request().Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if err := binder.BindBody(c, req); err != nil {
			recorder.SetBodyError(err)
		}
	}

	return nil
}

// handleRequest is the shared execution pipeline for all endpoints:
// request binding, structured logging, New Relic attributes and error
// reporting, timings and response writing.
func handleRequest[Req any, PReq RequestPayload[Req]](
	c echo.Context,
	handler func(c echo.Context, req PReq) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", c.Request().Method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// Binding phase
	bindStart := time.Now()

	req := PReq(new(Req))
	if err := bindRequest(c, req); err != nil {
		bindDuration := time.Since(bindStart)

		logger.Warn().
			Err(err).
			Dur("bind_duration", bindDuration).
			Msg("request binding failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("bind.status", "failed")
			txn.AddAttribute("bind.duration_ms", bindDuration.Milliseconds())
		}

		return err
	}

	bindDuration := time.Since(bindStart)
	if txn != nil {
		txn.AddAttribute("bind.status", "success")
		txn.AddAttribute("bind.duration_ms", bindDuration.Milliseconds())
	}

	// Handler execution phase
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Debug().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("bind_duration", bindDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle adapts a typed endpoint returning a JSON body into an echo.HandlerFunc.
//
//	e.POST("/lists/", handler.Handle(h.TodoList.CreateList, http.StatusCreated))
func Handle[Req any, PReq RequestPayload[Req], Res any](
	handler func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, PReq](c, func(c echo.Context, req PReq) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleNoContent adapts a typed endpoint that answers without a body.
func HandleNoContent[Req any, PReq RequestPayload[Req]](
	handler func(c echo.Context, req PReq) error,
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, PReq](c, func(c echo.Context, req PReq) (any, error) {
			return nil, handler(c, req)
		}, NoContentResponseHandler{status: status})
	}
}
