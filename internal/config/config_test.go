package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "todo", cfg.Database.Name)
	assert.True(t, cfg.IsLocal())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TODOSERVER_PRIMARY__ENV", "production")
	t.Setenv("TODOSERVER_SERVER__PORT", "9000")
	t.Setenv("TODOSERVER_SERVER__READ_TIMEOUT", "5")
	t.Setenv("TODOSERVER_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TODOSERVER_DATABASE__HOST", "db.internal")
	t.Setenv("TODOSERVER_DATABASE__PASSWORD", "s3cr:t@")
	t.Setenv("TODOSERVER_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("TODOSERVER_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "s3cr:t@", cfg.Database.Password)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.False(t, cfg.IsLocal())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad ssl mode", func(t *testing.T) {
		t.Setenv("TODOSERVER_DATABASE__SSL_MODE", "sometimes")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("TODOSERVER_OBSERVABILITY__LOGGING__LEVEL", "verbose")

		_, err := Load()
		assert.ErrorContains(t, err, "invalid logging level")
	})
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}
