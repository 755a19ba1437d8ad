package router

import (
	"github.com/labstack/echo/v4"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/handler"
)

// LegacyContactPath is kept for forms still posting to the old function path.
const LegacyContactPath = "/api/contact"

// registerContactRoutes mounts the intake endpoint at path and at the legacy
// path. Other methods on these paths get 405 from echo's router.
func registerContactRoutes(r *echo.Echo, path string, h *handler.Handlers) {
	for _, p := range contactPaths(path) {
		r.OPTIONS(p, h.Contact.Preflight)
		r.POST(p, h.Contact.Submit)
	}
}

func contactPaths(path string) []string {
	if path == "" || path == LegacyContactPath {
		return []string{LegacyContactPath}
	}
	return []string{path, LegacyContactPath}
}
