package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/model"
)

// Field caps, in characters.
const (
	MaxNameLength    = 120
	MaxCompanyLength = 120
	MaxEmailLength   = 160
	MaxPhoneLength   = 40
	MaxMessageLength = 5000
)

// DefaultMessage replaces an empty message.
const DefaultMessage = "No message provided."

var (
	// emailRegex is deliberately loose: something@something.something with
	// no whitespace and a single @ on each side. Whitespace includes Unicode
	// separators and the byte order mark, not just ASCII.
	emailRegex = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

	phoneStripRegex = regexp.MustCompile(`[^\d+(). -]`)
)

// isTrimmable reports whether r is stripped from the ends of a field:
// Unicode whitespace plus the byte order mark.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Trim strips leading and trailing whitespace, byte order marks included.
func Trim(value string) string {
	return strings.TrimFunc(value, isTrimmable)
}

// Clamp truncates value to at most maxLen characters, then trims surrounding
// whitespace. A trimmed result may be shorter than maxLen.
func Clamp(value string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}

	runes := []rune(value)
	if len(runes) > maxLen {
		value = string(runes[:maxLen])
	}

	return Trim(value)
}

// CleanPhone drops every character except digits, '+', '(', ')', '.', '-'
// and space, then trims.
func CleanPhone(value string) string {
	return Trim(phoneStripRegex.ReplaceAllString(value, ""))
}

// IsEmail reports whether value passes the loose address check.
func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// Sanitize extracts the known fields from a parsed body and applies the caps.
// Unknown keys are ignored.
func Sanitize(fields map[string]string) model.Submission {
	message := fields[model.FieldMessage]
	if message == "" {
		message = DefaultMessage
	}

	return model.Submission{
		Name:    Clamp(fields[model.FieldName], MaxNameLength),
		Company: Clamp(fields[model.FieldCompany], MaxCompanyLength),
		Email:   Clamp(fields[model.FieldEmail], MaxEmailLength),
		Phone:   Clamp(CleanPhone(fields[model.FieldPhone]), MaxPhoneLength),
		Message: Clamp(message, MaxMessageLength),
	}
}
