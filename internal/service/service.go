// Package service contains the business logic.
//
// It sits between the handler and the email integration.
// It receives the parsed request fields from the handler,
// sanitizes and validates them, and forwards the submission
// through the email provider.
package service
