package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFilterSensitiveData(t *testing.T) {
	out := filterSensitiveData([]byte(`{"email":"a@b.pe","password":"secreta","codigo":"123456"}`))
	assert.Contains(t, out, `"email":"a@b.pe"`)
	assert.Contains(t, out, `"password":"[FILTERED]"`)
	assert.Contains(t, out, `"codigo":"[FILTERED]"`)
	assert.NotContains(t, out, "secreta")

	assert.Empty(t, filterSensitiveData(nil))

	largo := filterSensitiveData([]byte(strings.Repeat("x", 2000)))
	assert.Len(t, largo, maxBodyLog+3)
}

func TestDetermineLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, determineLogLevel(200))
	assert.Equal(t, zapcore.WarnLevel, determineLogLevel(404))
	assert.Equal(t, zapcore.ErrorLevel, determineLogLevel(503))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Post("/login", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/falta", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(`{"password":"x"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	_, err := app.Test(req)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/falta", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "/login", ctx["path"])
	assert.EqualValues(t, 200, ctx["status"])
	assert.Equal(t, `{"password":"[FILTERED]"}`, ctx["body"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.EqualValues(t, 404, entries[1].ContextMap()["status"])
}

func TestRequestLoggerStatusDelErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewMetrics()
	app := appConErrores()
	app.Use(m.Middleware())
	app.Use(RequestLogger(zap.New(core)))
	app.Post("/pacientes", func(c *fiber.Ctx) error { return errDuplicado })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/pacientes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.EqualValues(t, 409, ctx["status"])
	assert.Equal(t, "duplicado", ctx["error"])
}
