package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brianloooooh/accountability-app/internal/errs"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware holds the app Server so middleware can access shared
// deps like Logger and Config.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuth is an Echo middleware that enforces authentication using
// Clerk.
//
// High-level behavior:
//  1. It wraps Clerk's middleware that parses the Authorization header.
//  2. If Clerk fails auth, the failure handler emits the AUTH_ERROR JSON
//     shape directly (a 401, never a panic or a bare error page).
//  3. If Clerk succeeds, session claims are extracted from the request
//     context and the user id is stored in Echo context for handlers.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	// echo.WrapMiddleware converts a standard net/http middleware into
	// Echo middleware. clerkhttp.WithHeaderAuthorization reads
	// "Authorization: Bearer <token>", validates it, and populates the
	// request context with session claims.
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			// Called when the token is missing or invalid.
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)

				// Matches the errs.HTTPError JSON schema; AUTH_ERROR is
				// the code the dashboard expects for unauthenticated
				// calls to any habit operation.
				response := errs.NewTaskError(errs.TaskAuthError, "Not authenticated")

				if err := json.NewEncoder(w).Encode(response); err != nil {
					auth.server.Logger.Error().
						Err(err).
						Str("function", "RequireAuth").
						Dur("duration", time.Since(start)).
						Msg("failed to write JSON response")
				} else {
					auth.server.Logger.Warn().
						Str("function", "RequireAuth").
						Str("path", r.URL.Path).
						Dur("duration", time.Since(start)).
						Msg("rejected unauthenticated request")
				}
			}))))(
		// Runs only if the Clerk middleware let the request through.
		func(c echo.Context) error {
			start := time.Now()

			claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
			if !ok {
				// Claims absent despite passing the middleware; treat as
				// unauthenticated.
				auth.server.Logger.Error().
					Str("function", "RequireAuth").
					Str("request_id", GetRequestID(c)).
					Dur("duration", time.Since(start)).
					Msg("could not get session claims from context")

				return errs.NewTaskError(errs.TaskAuthError, "Not authenticated")
			}

			// Store auth values into Echo context for handlers to read
			// later. These live in Echo's request-scoped key/value bag,
			// not in Go's context.Context.
			c.Set(UserIDKey, claims.Subject)
			c.Set(UserRoleKey, claims.ActiveOrganizationRole)

			auth.server.Logger.Debug().
				Str("function", "RequireAuth").
				Str("user_id", claims.Subject).
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("user authenticated successfully")

			return next(c)
		})
}
