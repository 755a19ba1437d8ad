package handler

import (
	"github.com/aaadil777/Akron-Crossdock-Site/internal/server"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Contact *ContactHandler // Contact serves the form intake endpoint and its preflight.
	Health  *HealthHandler  // Health serves the liveness endpoint.
	OpenAPI *OpenAPIHandler // OpenAPI serves the API description.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Contact: NewContactHandler(s, services.Contact),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
