package service

import (
	"fmt"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/config"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/lib/email"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/server"
)

// Services groups every service the handlers depend on.
type Services struct {
	Contact *ContactService
}

// NewServices wires the production services: contact settings come from the
// environment on every request and mail goes out through Resend.
func NewServices(s *server.Server) (*Services, error) {
	emailClient, err := email.NewClient(s.Config.Resend, s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create email client: %w", err)
	}

	return &Services{
		Contact: NewContactService(config.LoadContactConfig, emailClient, s.Logger),
	}, nil
}
