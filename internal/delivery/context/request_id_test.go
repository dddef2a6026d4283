package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("missing id is empty on every call", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.Empty(t, GetRequestID(c))
		assert.Empty(t, GetRequestID(c))
	})

	t.Run("stored id is returned", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		SetRequestID(c, "req-42")

		assert.Equal(t, "req-42", GetRequestID(c))
	})
}

func TestWithRequestScope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithRequestScope(context.Background(), "req-7", logger)

	assert.Equal(t, "req-7", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, fallback))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
