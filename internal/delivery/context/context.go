// Package context carries request-scoped values from delivery into the usecases.
package context

import (
	"context"
	"log/slog"

	"agrimatch/internal/domain/constants"
	"agrimatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	callerKey
)

// echoRequestIDKey stores the request id on echo.Context for response envelopes.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is the HTTP header carrying the request id.
const HeaderXRequestID = constants.HeaderRequestID

// Caller is the authenticated party behind a request.
type Caller struct {
	PartyID uuid.UUID
	Roles   entity.Roles
}

// GetRequestID returns the request id stored on c, or a fresh one when the
// request id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when no request id is set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// GetCaller reports false for unauthenticated requests.
func GetCaller(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey).(Caller)
	if !ok || caller.PartyID == uuid.Nil {
		return Caller{}, false
	}

	return caller, true
}
