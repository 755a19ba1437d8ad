package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/errs"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/model"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/server"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/service"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/validation"
)

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	Handler
	contactService *service.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(s *server.Server, contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:        NewHandler(s),
		contactService: contactService,
	}
}

// decodeFields reads the body in whatever format the client sent.
func decodeFields(c echo.Context) (map[string]string, error) {
	return validation.ParseBody(c.Request()), nil
}

// Preflight answers CORS preflight requests with 204 and no body.
// The CORS headers themselves are set by middleware.
func (h *ContactHandler) Preflight(c echo.Context) error {
	return HandleNoContent[NoRequest](
		h.Handler,
		DecodeNothing,
		func(c echo.Context, _ NoRequest) error { return nil },
		http.StatusNoContent,
	)(c)
}

// Submit accepts a contact form submission and forwards it by email.
func (h *ContactHandler) Submit(c echo.Context) error {
	return Handle[map[string]string, model.Response](
		h.Handler,
		decodeFields,
		h.submit,
		http.StatusOK,
	)(c)
}

func (h *ContactHandler) submit(c echo.Context, fields map[string]string) (model.Response, error) {
	txn := newrelic.FromContext(c.Request().Context())

	_, err := h.contactService.Submit(c.Request().Context(), fields)
	if err != nil {
		if txn != nil {
			txn.AddAttribute("contact.outcome", outcomeOf(err))
		}
		return model.Response{}, err
	}

	if txn != nil {
		txn.AddAttribute("contact.outcome", "sent")
	}

	return model.OKResponse, nil
}

// outcomeOf names the failure class of a submission error for tracing.
func outcomeOf(err error) string {
	status := http.StatusInternalServerError
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Status
	}

	switch status {
	case http.StatusBadRequest:
		return "rejected"
	case http.StatusBadGateway:
		return "provider_error"
	default:
		return "failed"
	}
}
