// Package email provides the email sending client.
//
// It uses Resend (resend-go) as the email provider and renders
// message bodies from embedded HTML templates.
package email

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/config"
)

// Sender delivers a rendered message with the given provider key and
// returns the provider's message ID.
type Sender interface {
	Send(ctx context.Context, apiKey string, msg *Message) (string, error)
}

// ProviderError is returned when the provider answered with a non-2xx status.
// Body is the response body exactly as received.
type ProviderError struct {
	Status int
	Body   string
	cause  error
}

func (e *ProviderError) Error() string {
	return "resend responded with status " + http.StatusText(e.Status) + ": " + e.Body
}

func (e *ProviderError) Unwrap() error {
	return e.cause
}

// Client wraps the Resend client construction and a logger.
//
// A Resend client is built per send, because the API key is resolved per
// request and may change between requests.
type Client struct {
	baseURL   *url.URL
	timeout   time.Duration
	transport http.RoundTripper
	logger    *zerolog.Logger
}

// NewClient creates an email Client from the provider settings.
func NewClient(cfg config.ResendConfig, logger *zerolog.Logger) (*Client, error) {
	raw := cfg.BaseURL
	if !strings.HasSuffix(raw, "/") {
		// Resend resolves "emails" relative to the base URL.
		raw += "/"
	}

	baseURL, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid resend base url %q", cfg.BaseURL)
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Client{
		baseURL:   baseURL,
		timeout:   cfg.Timeout,
		transport: http.DefaultTransport,
		logger:    logger,
	}, nil
}

// WithTransport returns a copy of the client using rt for outbound calls.
func (c *Client) WithTransport(rt http.RoundTripper) *Client {
	clone := *c
	clone.transport = rt
	return &clone
}

// Send delivers msg through Resend.
//
// A non-2xx answer is returned as *ProviderError carrying the raw body.
// Every other failure (timeout, DNS, connection reset) is wrapped as-is.
func (c *Client) Send(ctx context.Context, apiKey string, msg *Message) (string, error) {
	if msg == nil {
		return "", errors.New("email: nil message")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	capture := &capturingTransport{base: c.transport}
	httpClient := &http.Client{
		Timeout:   c.timeout,
		Transport: capture,
	}

	rc := resend.NewCustomClient(httpClient, apiKey)
	rc.BaseURL = c.baseURL

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
		Tags: []resend.Tag{
			{Name: "source", Value: "contact_form"},
		},
	}

	start := time.Now()
	sent, err := rc.Emails.SendWithContext(ctx, params)
	if err != nil {
		if status, body, ok := capture.failure(); ok {
			c.logger.Warn().
				Int("provider_status", status).
				Dur("duration", time.Since(start)).
				Msg("email provider rejected message")
			return "", &ProviderError{Status: status, Body: body, cause: err}
		}
		return "", errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().
		Str("email_id", sent.Id).
		Dur("duration", time.Since(start)).
		Msg("email sent")

	return sent.Id, nil
}

// capturingTransport keeps the body of a non-2xx response while still
// handing an intact body to the caller.
type capturingTransport struct {
	base http.RoundTripper

	mu     sync.Mutex
	status int
	body   string
}

func (t *capturingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		t.mu.Lock()
		t.status, t.body = 0, ""
		t.mu.Unlock()
		return resp, nil
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	t.mu.Lock()
	t.status = resp.StatusCode
	t.body = string(raw)
	t.mu.Unlock()

	resp.Body = io.NopCloser(bytes.NewReader(raw))
	return resp, nil
}

func (t *capturingTransport) failure() (int, string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status, t.body, t.status != 0
}
