// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/brianloooooh/accountability-app/internal/handler"
	"github.com/brianloooooh/accountability-app/internal/middleware"
	"github.com/labstack/echo/v4"
)

// Setup builds the Echo instance: global middleware chain, the error
// funnel, system routes, and the authenticated API group.
//
// Middleware order matters:
//  1. RequestID, so every later layer can correlate
//  2. New Relic transaction start, so tracing wraps the request
//  3. tracing enhancement + context enhancer, which read the
//     transaction and request id to build the request-scoped logger
//  4. CORS / secure headers / recovery / request logging
func Setup(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true

	// All errors, typed or not, end up in the global funnel.
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.Recover())
	e.Use(m.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}
