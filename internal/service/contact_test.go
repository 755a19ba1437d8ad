package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/config"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/errs"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/lib/email"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/service"
)

// MockSender is a mock implementation of email.Sender for testing
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, apiKey string, msg *email.Message) (string, error) {
	args := m.Called(ctx, apiKey, msg)
	return args.String(0), args.Error(1)
}

var withKey = config.ContactConfig{
	ResendAPIKey: "re_test",
	ToEmail:      config.DefaultToEmail,
	FromEmail:    config.DefaultFromEmail,
}

func requireHTTPError(t *testing.T, err error, status int, message string) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
	return httpErr
}

func TestContactService_Submit(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, "re_test", mock.MatchedBy(func(msg *email.Message) bool {
		return msg.To == config.DefaultToEmail &&
			msg.From == config.DefaultFromEmail &&
			msg.ReplyTo == "ada@example.com" &&
			strings.Contains(msg.Text, "Name: Ada")
	})).Return("email_123", nil).Once()

	svc := service.NewContactService(config.StaticContact(withKey), sender, nil)

	result, err := svc.Submit(context.Background(), map[string]string{
		"name":  "  Ada ",
		"email": "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "email_123", result.EmailID)
	assert.Equal(t, "Ada", result.Submission.Name)
	assert.Equal(t, "No message provided.", result.Submission.Message)
	sender.AssertExpectations(t)
}

func TestContactService_SubmitRejectsWithoutSending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.ContactConfig
		fields  map[string]string
		status  int
		message string
	}{
		{
			name:    "missing name",
			cfg:     withKey,
			fields:  map[string]string{"email": "ada@example.com"},
			status:  http.StatusBadRequest,
			message: "Missing name",
		},
		{
			name:    "whitespace name",
			cfg:     withKey,
			fields:  map[string]string{"name": "   "},
			status:  http.StatusBadRequest,
			message: "Missing name",
		},
		{
			name:    "invalid email",
			cfg:     withKey,
			fields:  map[string]string{"name": "Ada", "email": "not-an-email"},
			status:  http.StatusBadRequest,
			message: "Invalid email format",
		},
		{
			name:    "missing api key",
			cfg:     config.ContactConfig{ToEmail: config.DefaultToEmail, FromEmail: config.DefaultFromEmail},
			fields:  map[string]string{"name": "Ada"},
			status:  http.StatusInternalServerError,
			message: "Missing RESEND_API_KEY",
		},
		{
			name:    "validation runs before key check",
			cfg:     config.ContactConfig{},
			fields:  map[string]string{},
			status:  http.StatusBadRequest,
			message: "Missing name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &MockSender{}
			svc := service.NewContactService(config.StaticContact(tt.cfg), sender, nil)

			_, err := svc.Submit(context.Background(), tt.fields)

			httpErr := requireHTTPError(t, err, tt.status, tt.message)
			assert.Empty(t, httpErr.Detail)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestContactService_SubmitProviderError(t *testing.T) {
	t.Parallel()

	providerBody := `{"statusCode":403,"message":"domain not verified"}`
	sender := &MockSender{}
	sender.On("Send", mock.Anything, "re_test", mock.Anything).
		Return("", &email.ProviderError{Status: http.StatusForbidden, Body: providerBody}).Once()

	svc := service.NewContactService(config.StaticContact(withKey), sender, nil)

	_, err := svc.Submit(context.Background(), map[string]string{"name": "Ada"})

	httpErr := requireHTTPError(t, err, http.StatusBadGateway, "Resend error")
	assert.Equal(t, providerBody, httpErr.Detail)
	sender.AssertExpectations(t)
}

func TestContactService_SubmitUnexpectedError(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, "re_test", mock.Anything).
		Return("", errors.New("dial tcp: connection refused")).Once()

	svc := service.NewContactService(config.StaticContact(withKey), sender, nil)

	_, err := svc.Submit(context.Background(), map[string]string{"name": "Ada"})

	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, "Server error")
	assert.Equal(t, "dial tcp: connection refused", httpErr.Detail)
	sender.AssertExpectations(t)
}

func TestContactService_ResolvesConfigPerCall(t *testing.T) {
	t.Parallel()

	calls := 0
	resolver := func() config.ContactConfig {
		calls++
		return withKey
	}

	sender := &MockSender{}
	sender.On("Send", mock.Anything, "re_test", mock.Anything).Return("id", nil).Twice()

	svc := service.NewContactService(resolver, sender, nil)

	for range 2 {
		_, err := svc.Submit(context.Background(), map[string]string{"name": "Ada"})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, calls)
	sender.AssertExpectations(t)
}
