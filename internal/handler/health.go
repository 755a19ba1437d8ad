package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/config"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/server"
)

// HealthHandler exposes a "system" endpoint that uptime monitors and load
// balancers use to verify the service is alive.
type HealthHandler struct {
	Handler

	// contact resolves the per-request settings; only the presence of the
	// API key is reported.
	contact config.ContactResolver
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		contact: config.LoadContactConfig,
	}
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one sub-check of the health report.
type HealthCheck struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
}

// CheckHealth reports that the process is serving.
//
// It always answers 200: a missing provider key is reported in checks but
// does not make the process unhealthy, since the endpoint answers every
// request with a well-formed error in that case. No secret is exposed.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := h.logger(c).With().
		Str("operation", "health_check").
		Logger()

	configured := h.contact().HasAPIKey()

	providerStatus := "healthy"
	if !configured {
		providerStatus = "unconfigured"
		logger.Warn().Msg("RESEND_API_KEY is not configured")
	}

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks: map[string]HealthCheck{
			"email_provider": {
				Status:     providerStatus,
				Configured: configured,
			},
		},
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
