// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the routes,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/handler"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/middleware"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/server"
)

// NewRouter builds the echo instance with the full middleware stack and
// every route registered.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters:
	//   - CORS first, so every answer (413 and recovered panics included)
	//     carries the headers.
	//   - RequestID and tracing before ContextEnhancer, which reads both.
	//   - RequestLogger outside Recover, so a panic is logged as a 500.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)
	registerContactRoutes(router, s.Config.Server.ContactPath, h)

	return router
}
