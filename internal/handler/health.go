package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/todo-api/internal/middleware"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/labstack/echo/v4"
)

// Pinger is a dependency /status can probe. *database.Database satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

var errNotConfigured = errors.New("not configured")

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	db Pinger
}

func NewHealthHandler(s *server.Server, db Pinger) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      db,
	}
}

// CheckHealth probes the configured dependencies. It answers 200 when all of
// them respond and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	if cfg.Enabled {
		for _, name := range cfg.Checks {
			// "database" is the only check config validation accepts.
			if name != "database" {
				continue
			}

			checkStart := time.Now()
			err := h.pingDatabase(c.Request().Context(), cfg.Timeout)
			responseTime := time.Since(checkStart)

			if err != nil {
				isHealthy = false
				checks[name] = map[string]any{
					"status":        "unhealthy",
					"response_time": responseTime.String(),
					"error":         err.Error(),
				}

				logger.Error().
					Err(err).
					Str("check", name).
					Dur("response_time", responseTime).
					Msg("health check failed")

				if app := h.server.LoggerService.GetApplication(); app != nil {
					app.RecordCustomEvent("HealthCheckError", map[string]any{
						"check_type":       name,
						"operation":        "health_check",
						"response_time_ms": responseTime.Milliseconds(),
						"error_message":    err.Error(),
					})
				}
				continue
			}

			checks[name] = map[string]any{
				"status":        "healthy",
				"response_time": responseTime.String(),
			}
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) pingDatabase(ctx context.Context, timeout time.Duration) error {
	if h.db == nil {
		return errNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return h.db.Ping(ctx)
}
