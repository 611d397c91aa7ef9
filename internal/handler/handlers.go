package handler

import (
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/brianloooooh/accountability-app/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health   *HealthHandler   // Health serves service health endpoints (liveness/readiness).
	OpenAPI  *OpenAPIHandler  // OpenAPI serves API documentation (OpenAPI spec / swagger endpoints).
	Habits   *HabitsHandler   // Habits serves the habit task endpoints (add/delete/complete/board).
	Profiles *ProfilesHandler // Profiles serves the caller's display profile endpoints.
}

// NewHandlers constructs the handler container over the application
// container and the business layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Habits:   NewHabitsHandler(s, services.Habits),
		Profiles: NewProfilesHandler(s, services.Profiles),
	}
}
