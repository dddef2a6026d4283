package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventdesk/config"
	deliverycontext "eventdesk/internal/delivery/context"
	domainerrors "eventdesk/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id kept", incoming: "req-abc-123", keep: true},
		{name: "missing id generated", incoming: ""},
		{name: "id with spaces replaced", incoming: "bad id"},
		{name: "oversized id replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenID string
			var seenLogger *slog.Logger
			err := m.Process(func(c echo.Context) error {
				seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			assert.NotNil(t, seenLogger)
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seenID)
			} else {
				_, parseErr := uuid.Parse(seenID)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		debug     bool
		handler   echo.HandlerFunc
		wantLevel string
		wantNone  bool
	}{
		{
			name:      "success logged at debug outside debug mode",
			path:      "/get-events/u1",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "level=DEBUG",
		},
		{
			name:      "success logged at info in debug mode",
			path:      "/get-events/u1",
			debug:     true,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "level=INFO",
		},
		{
			name:     "polled path is quiet",
			path:     "/get-latest-tokens",
			handler:  func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantNone: true,
		},
		{
			name:      "client error",
			path:      "/get-event/missing",
			handler:   func(echo.Context) error { return domainerrors.ErrEventNotFound },
			wantLevel: "level=WARN",
		},
		{
			name:      "server error",
			path:      "/image/obj-1",
			handler:   func(echo.Context) error { return domainerrors.ErrFetchFailed },
			wantLevel: "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(logger, cfg)

			e := echo.New()
			e.HTTPErrorHandler = func(err error, c echo.Context) {
				var appErr domainerrors.AppError
				if assert.ErrorAs(t, err, &appErr) {
					_ = c.NoContent(appErr.HTTPCode())
				}
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), rec)

			require.NoError(t, m.Handle(tt.handler)(c))

			if tt.wantNone {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), "uri="+tt.path)
		})
	}
}
