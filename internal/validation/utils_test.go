package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/errs"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/model"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/validation"
)

func TestValidateSubmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sub     model.Submission
		wantMsg string
	}{
		{name: "valid with email", sub: model.Submission{Name: "Ada", Email: "ada@example.com"}},
		{name: "valid without email", sub: model.Submission{Name: "Ada"}},
		{name: "loose email accepted", sub: model.Submission{Name: "Ada", Email: "a..b@c.d"}},
		{name: "missing name", sub: model.Submission{Email: "ada@example.com"}, wantMsg: errs.MessageMissingName},
		{name: "bad email", sub: model.Submission{Name: "Ada", Email: "nope"}, wantMsg: errs.MessageInvalidEmail},
		{name: "name checked first", sub: model.Submission{Email: "nope"}, wantMsg: errs.MessageMissingName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validation.ValidateSubmission(tt.sub)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
			assert.Empty(t, httpErr.Detail)
		})
	}
}
