// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as CORS headers, request IDs, request logging, tracing,
// body limits and panic recovery.
package middleware
