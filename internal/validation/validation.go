// Package validation contains the logic for reading and validating
// contact form data.
//
// It turns a raw request body into a flat field map (parse.go),
// clamps and cleans every field (sanitize.go), and enforces the
// submission rules with the `validator` library (utils.go), mapping
// the first failing rule to the message the client sees.
package validation
