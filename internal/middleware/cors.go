package middleware

import (
	"github.com/labstack/echo/v4"
)

// CORS header values sent by the contact endpoint.
const (
	CORSAllowMethods = "POST, OPTIONS"
	CORSAllowHeaders = "Content-Type, Authorization"
)

// CORSHeaders returns a middleware that sets the same CORS headers on every
// response, whatever the request's Origin and whatever the outcome.
//
// echo's CORS middleware only answers when an Origin header is present and
// reflects allowed methods per route, so it cannot give the fixed header set
// form posts from any page and from server-side callers rely on.
func CORSHeaders(allowOrigin string) echo.MiddlewareFunc {
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, allowOrigin)
			h.Set(echo.HeaderAccessControlAllowMethods, CORSAllowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, CORSAllowHeaders)
			if allowOrigin != "*" {
				h.Add(echo.HeaderVary, echo.HeaderOrigin)
			}
			return next(c)
		}
	}
}
