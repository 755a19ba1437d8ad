package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/server"
)

//go:embed openapi.json
var openAPIDocument []byte

// OpenAPIHandler serves the OpenAPI description of the intake endpoint.
//
// The document is embedded in the binary, so the service needs no static
// directory at runtime.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler with access to shared dependencies.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPISpec writes the embedded openapi.json.
//
// Cache-Control is set to "no-cache" so clients do not reuse old docs.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	return HandleBlob[NoRequest](
		h.Handler,
		DecodeNothing,
		func(echo.Context, NoRequest) ([]byte, error) { return openAPIDocument, nil },
		http.StatusOK,
		echo.MIMEApplicationJSON,
	)(c)
}
