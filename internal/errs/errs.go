// Package errs define custom error types and utilities.
//
// Its purpose is to give every failure of the intake endpoint one
// consistent JSON shape, so the client always receives
//
//	{ "ok": false, "error": "<message>", "detail": "<optional>" }
//
// Handlers and services return *HTTPError values; the global error
// handler turns them into responses. Anything that is not an *HTTPError
// is reported as a generic "Server error".
package errs
