package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/middleware"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/server"
)

// Handler is the base handler type that holds shared application dependencies.
//
// Concrete handlers embed it to reach config and loggers via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// logger returns the request-scoped logger, or the application logger when
// the request never passed through the context middleware.
func (h Handler) logger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(middleware.LoggerKey).(*zerolog.Logger); ok && l != nil {
		return l
	}
	if h.server != nil && h.server.Logger != nil {
		return h.server.Logger
	}
	return middleware.GetLogger(c)
}

// --- Generic typed handler plumbing -----------------------------------------

// Decoder extracts the typed request payload from the HTTP request.
// Decoders for this API never fail on malformed input; they return what
// they could read and leave judgement to the service.
type Decoder[Req any] func(c echo.Context) (Req, error)

// HandlerFunc is a typed endpoint function: it receives the decoded request
// and returns a response or an error.
type HandlerFunc[Req any, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful result is written and which
// tracing attributes describe it.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	// AddAttributes attaches New Relic attributes based on the result.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// NoContentResponseHandler writes responses with no body (typically 204).
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

func (h NoContentResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by tracing middleware
}

// BlobResponseHandler writes raw bytes with a fixed content type.
//
// The handler result must be a []byte.
type BlobResponseHandler struct {
	status      int
	contentType string
}

func (h BlobResponseHandler) Handle(c echo.Context, result interface{}) error {
	data, _ := result.([]byte)
	return c.Blob(h.status, h.contentType, data)
}

func (h BlobResponseHandler) GetOperation() string {
	return "handler_blob"
}

func (h BlobResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn == nil {
		return
	}
	txn.AddAttribute("blob.content_type", h.contentType)
	if data, ok := result.([]byte); ok {
		txn.AddAttribute("blob.size_bytes", len(data))
	}
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes decoding, structured logging with timings, New Relic
// attributes and response writing. Errors are returned untouched so the
// global error handler formats them.
func handleRequest[Req any](
	h Handler,
	c echo.Context,
	decode Decoder[Req],
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := h.logger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Decode phase -------------------------------------------
	decodeStart := time.Now()

	req, err := decode(c)
	decodeDuration := time.Since(decodeStart)
	if err != nil {
		logger.Error().
			Err(err).
			Dur("decode_duration", decodeDuration).
			Msg("request decoding failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("decode.status", "failed")
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("decode.status", "success")
		txn.AddAttribute("decode.duration_ms", decodeDuration.Milliseconds())
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())

		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("decode_duration", decodeDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler into an echo.HandlerFunc that answers with
// JSON and the given status.
//
//	router.POST("/x", handler.Handle(h, decodeX, myHandlerFn, http.StatusOK))
func Handle[Req any, Res any](
	h Handler,
	decode Decoder[Req],
	handler HandlerFunc[Req, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, decode, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleBlob wraps a handler that returns raw bytes.
func HandleBlob[Req any](
	h Handler,
	decode Decoder[Req],
	handler HandlerFunc[Req, []byte],
	status int,
	contentType string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, decode, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, BlobResponseHandler{status: status, contentType: contentType})
	}
}

// HandleNoContent wraps a handler for endpoints that answer without a body.
func HandleNoContent[Req any](
	h Handler,
	decode Decoder[Req],
	handler func(c echo.Context, req Req) error,
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, decode, func(c echo.Context, req Req) (interface{}, error) {
			return nil, handler(c, req)
		}, NoContentResponseHandler{status: status})
	}
}

// NoRequest is the payload of endpoints that read nothing from the request.
type NoRequest struct{}

// DecodeNothing is the Decoder for endpoints without input.
func DecodeNothing(echo.Context) (NoRequest, error) {
	return NoRequest{}, nil
}
