package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrimatch/config"
	deliverycontext "agrimatch/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		incoming  string
		propagate bool
	}{
		{name: "propagates client id", incoming: "req-from-gateway", propagate: true},
		{name: "generates missing id"},
		{name: "replaces id with spaces", incoming: "bad id"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := slog.New(slog.NewTextHandler(buf, nil))

			e := echo.New()
			e.Use(NewRequestIDMiddleware(logger).Process)
			e.GET("/ping", func(c echo.Context) error {
				ctx := c.Request().Context()
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("handled")

				return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(ctx))
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, rec.Body.String())
			assert.Contains(t, buf.String(), "request_id="+got)

			if tt.propagate {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware_LevelFollowsStatus(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/missing", func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing?page=2", nil))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, `query="page=2"`)
}

func TestLoggerMiddleware_LogsFinalStatusOfReturnedErrors(t *testing.T) {
	tests := []struct {
		name   string
		debug  bool
		err    error
		want   []string
		silent bool
	}{
		{
			name:  "client error in debug",
			debug: true,
			err:   echo.NewHTTPError(http.StatusBadRequest, "bad"),
			want:  []string{"level=WARN", "status=400", "route=/fail"},
		},
		{
			name: "server error outside debug",
			err:  errors.New("boom"),
			want: []string{"level=ERROR", "status=500", "error=boom"},
		},
		{
			name:   "client error outside debug",
			err:    echo.NewHTTPError(http.StatusNotFound, "gone"),
			silent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := slog.New(slog.NewTextHandler(buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			e.Use(NewLoggerMiddleware(logger, cfg).Handle)
			e.GET("/fail", func(c echo.Context) error {
				return tt.err
			})

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

			if tt.silent {
				assert.Empty(t, buf.String())

				return
			}
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
