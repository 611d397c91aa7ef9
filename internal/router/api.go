package router

import (
	"net/http"

	"github.com/brianloooooh/accountability-app/internal/handler"
	"github.com/brianloooooh/accountability-app/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the authenticated business endpoints
// under /api/v1. Every route in the group requires a verified Clerk
// session; handlers read the user id from context and never from the
// request body.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	v1 := r.Group("/api/v1", m.RateLimit.Limit(), m.Auth.RequireAuth)

	// Habit board.
	v1.POST("/habits", handler.Handle(h.Habits.Handler, h.Habits.AddHabit, http.StatusCreated, handler.NewAddHabitRequest))
	v1.GET("/habits", handler.Handle(h.Habits.Handler, h.Habits.GetHabits, http.StatusOK, handler.NewEmptyRequest))
	v1.DELETE("/habits/:id", handler.Handle(h.Habits.Handler, h.Habits.DeleteHabit, http.StatusOK, handler.NewHabitIDRequest))
	v1.PATCH("/habits/:id/complete", handler.Handle(h.Habits.Handler, h.Habits.CompleteHabit, http.StatusOK, handler.NewHabitIDRequest))
	v1.GET("/habits/export", handler.HandleFile(h.Habits.Handler, h.Habits.ExportHabits, http.StatusOK, handler.NewEmptyRequest, "habits.csv", "text/csv"))

	// Caller profile.
	v1.GET("/profile", handler.Handle(h.Profiles.Handler, h.Profiles.GetProfile, http.StatusOK, handler.NewEmptyRequest))
	v1.PUT("/profile", handler.Handle(h.Profiles.Handler, h.Profiles.UpsertProfile, http.StatusOK, handler.NewUpsertProfileRequest))
}
