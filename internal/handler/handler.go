// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It reads requests, calls the appropriate service, and writes
// the response. It acts as the interface between the HTTP
// request and the core business logic.
package handler
