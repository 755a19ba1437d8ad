package email

import (
	"strings"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/config"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/model"
)

// ContactSubject is the subject line of every forwarded submission.
const ContactSubject = "New Quote Request — Akron Crossdock Warehouse"

// Message is a fully rendered outbound email. It is not modified after
// BuildContactMessage returns it.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string

	// ReplyTo is empty when the submitter left no address.
	ReplyTo string
}

// BuildContactMessage renders the plain text and HTML bodies for a submission
// and addresses them according to cfg.
func BuildContactMessage(cfg config.ContactConfig, sub model.Submission) (*Message, error) {
	html, err := render(TemplateContact, sub)
	if err != nil {
		return nil, err
	}

	return &Message{
		From:    cfg.FromEmail,
		To:      cfg.ToEmail,
		Subject: ContactSubject,
		Text:    contactText(sub),
		HTML:    html,
		ReplyTo: sub.Email,
	}, nil
}

func contactText(sub model.Submission) string {
	return strings.Join([]string{
		"Name: " + sub.Name,
		"Company: " + sub.Company,
		"Email: " + sub.Email,
		"Phone: " + sub.Phone,
		"",
		"Message:",
		sub.Message,
	}, "\n")
}
