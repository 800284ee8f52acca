package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mapbook/config"
	deliverycontext "mapbook/internal/delivery/context"
	"mapbook/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_KeepsValidHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_ReplacesUnsafeHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\nwith newline")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(echo.Context) error { return nil })

	require.NoError(t, handler(c))
	generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.Len(t, generated, 36)
	assert.NotContains(t, generated, " ")
}

func TestLoggerMiddleware(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/addresses?bbox=1,2,3,4", nil)
	req = req.WithContext(deliverycontext.WithIdentity(req.Context(), entity.NewIdentity("uid", "me@example.com")))
	c := e.NewContext(req, httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusTeapot)
	})
	require.NoError(t, handler(c))

	line := buf.String()
	assert.True(t, strings.Contains(line, "level=WARN"))
	assert.Contains(t, line, "status=418")
	assert.Contains(t, line, "user=me@example.com")
	assert.Contains(t, line, "query=")
}

func TestLoggerMiddleware_DisabledWithoutDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Empty(t, buf.String())
}
