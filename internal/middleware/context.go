package middleware

import (
	"context"

	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	// UserIDKey and UserRoleKey are the canonical keys used to store and
	// retrieve user identity from Echo context. The auth middleware sets
	// them; handlers read them through the helpers below.
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"

	// LoggerKey is used as the key for storing the request-scoped logger.
	LoggerKey = "logger"
)

// ContextEnhancer is a middleware helper that enriches request context.
//
// It builds a request-scoped logger with useful fields:
//   - request_id
//   - method, path, ip
//   - trace.id/span.id (if a New Relic transaction exists)
//   - user_id/user_role (if auth middleware set them)
//
// It then stores that logger in Echo context and the Go request context.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a new ContextEnhancer using the app Server
// container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware that, for every request:
//  1. gets the request ID (from the request_id middleware)
//  2. creates a logger with request fields
//  3. adds trace context if available (New Relic)
//  4. adds user context if available (from auth middleware)
//  5. stores that logger in Echo context + Go context
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// If the RequestID middleware did not run first, this is "".
			requestID := GetRequestID(c)

			loggerBuilder := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Str("ip", c.RealIP())

			// Linking metadata so log entries correlate with traces.
			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				metadata := txn.GetTraceMetadata()
				if metadata.TraceID != "" {
					loggerBuilder = loggerBuilder.
						Str("trace.id", metadata.TraceID).
						Str("span.id", metadata.SpanID)
				}
			}

			// User identity, when the auth middleware already ran.
			if userID := GetUserID(c); userID != "" {
				loggerBuilder = loggerBuilder.Str("user_id", userID)
			}
			if role := GetUserRole(c); role != "" {
				loggerBuilder = loggerBuilder.Str("user_role", role)
			}

			logger := loggerBuilder.Logger()

			// Store in both context flavors: Echo context for handlers,
			// Go context for code that only sees context.Context.
			c.Set(LoggerKey, &logger)
			ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, &logger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// loggerCtxKey is the private context key for the request-scoped logger.
type loggerCtxKey struct{}

// GetLogger returns the request-scoped logger from Echo context.
//
// Falls back to a disabled-free default logger derived from zerolog's
// global settings, so callers never receive nil.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}
	logger := zerolog.New(zerolog.NewConsoleWriter())
	return &logger
}

// GetUserID retrieves the authenticated user id from Echo context.
// Returns an empty string when the auth middleware has not run.
func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetUserRole retrieves the authenticated user's role from Echo context.
func GetUserRole(c echo.Context) string {
	if role, ok := c.Get(UserRoleKey).(string); ok {
		return role
	}
	return ""
}
