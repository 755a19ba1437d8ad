// Package model holds the data carried through a single contact request.
package model

// Field names as they appear in submitted bodies.
const (
	FieldName    = "name"
	FieldCompany = "company"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// Submission is one sanitized contact form entry.
//
// It lives for a single request and is never shared. Only Name is required;
// Email, when present, must look like an address.
type Submission struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company"`
	Email   string `json:"email" validate:"omitempty,loose_email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// HasEmail reports whether the submitter left an address to reply to.
func (s Submission) HasEmail() bool {
	return s.Email != ""
}
