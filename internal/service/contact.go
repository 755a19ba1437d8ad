package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/config"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/errs"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/lib/email"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/model"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/validation"
)

// ContactService turns a parsed contact form into a delivered email.
//
// It holds no per-request state and is safe for concurrent use.
type ContactService struct {
	contact config.ContactResolver
	sender  email.Sender
	logger  *zerolog.Logger
}

// SubmitResult describes an accepted submission.
type SubmitResult struct {
	Submission model.Submission
	EmailID    string
}

// NewContactService creates a ContactService.
func NewContactService(contact config.ContactResolver, sender email.Sender, logger *zerolog.Logger) *ContactService {
	if contact == nil {
		contact = config.LoadContactConfig
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &ContactService{
		contact: contact,
		sender:  sender,
		logger:  logger,
	}
}

// Submit sanitizes, validates and forwards one submission.
//
// Errors are *errs.HTTPError values: 400 for bad input, 500 when the API key
// is missing or something unexpected fails, 502 when the provider rejects
// the message. No outbound call is made unless validation passes and a key
// is configured.
func (s *ContactService) Submit(ctx context.Context, fields map[string]string) (*SubmitResult, error) {
	log := s.loggerFrom(ctx)

	sub := validation.Sanitize(fields)

	if err := validation.ValidateSubmission(sub); err != nil {
		log.Debug().Err(err).Msg("submission rejected")
		return nil, err
	}

	cfg := s.contact()
	if !cfg.HasAPIKey() {
		log.Error().Msg("RESEND_API_KEY is not configured")
		return nil, errs.NewConfigError(errs.MessageMissingAPIKey)
	}

	msg, err := email.BuildContactMessage(cfg, sub)
	if err != nil {
		return nil, errs.NewServerError(err)
	}

	id, err := s.sender.Send(ctx, cfg.ResendAPIKey, msg)
	if err != nil {
		var providerErr *email.ProviderError
		if errors.As(err, &providerErr) {
			return nil, errs.NewBadGatewayError(providerErr.Body).WithCause(err)
		}
		return nil, errs.NewServerError(err)
	}

	log.Info().
		Str("email_id", id).
		Bool("has_reply_to", sub.HasEmail()).
		Msg("contact submission forwarded")

	return &SubmitResult{Submission: sub, EmailID: id}, nil
}

// loggerFrom prefers the request-scoped logger carried by ctx.
func (s *ContactService) loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
